package service

import (
	"context"
	"errors"
	"fmt"

	"croche-storefront/internal/client"
	"croche-storefront/internal/model"
	"croche-storefront/internal/repository"
	"croche-storefront/internal/session"

	"github.com/rs/zerolog"
)

type AuthService interface {
	LoginURL(state string) string
	CompleteLogin(ctx context.Context, code string) (*session.User, error)
}

type authServiceImpl struct {
	google     client.GoogleClient
	userRepo   repository.UserRepository
	adminEmail string
	callback   string
	logger     zerolog.Logger
}

func NewAuthService(
	google client.GoogleClient,
	userRepo repository.UserRepository,
	baseURL string,
	adminEmail string,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		google:     google,
		userRepo:   userRepo,
		adminEmail: adminEmail,
		callback:   baseURL + "/auth",
		logger:     logger,
	}
}

func (s *authServiceImpl) LoginURL(state string) string {
	return s.google.AuthCodeURL(state, s.callback)
}

// CompleteLogin exchanges the provider's callback code, fetches the user-info
// document and resolves the local user for that email, creating it on first
// login. Re-logins reuse the stored row untouched.
func (s *authServiceImpl) CompleteLogin(ctx context.Context, code string) (*session.User, error) {
	accessToken, err := s.google.ExchangeCode(ctx, code, s.callback)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	info, err := s.google.FetchUserInfo(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, info.Email)
	if errors.Is(err, model.ErrUserNotFound) {
		role := model.RoleCustomer
		if info.Email == s.adminEmail {
			role = model.RoleAdmin
		}

		user, err = s.userRepo.CreateIfAbsent(ctx, &model.User{
			GoogleID: info.ID,
			Name:     info.Name,
			Email:    info.Email,
			Role:     role,
		})
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("user created")
	} else if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &session.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
