package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"croche-storefront/internal/config"
	"croche-storefront/internal/model"
)

// GoogleClient talks to the external OAuth2/OpenID provider: it builds the
// authorization redirect, exchanges the callback code for an access token and
// fetches the user-info document.
type GoogleClient interface {
	AuthCodeURL(state, redirectURI string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (string, error)
	FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type googleClientImpl struct {
	httpClient   *http.Client
	authURL      string
	tokenURL     string
	userInfoURL  string
	clientID     string
	clientSecret string
}

func NewGoogleClient(googleCfg *config.Google) GoogleClient {
	return &googleClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		authURL:      googleCfg.AuthURL,
		tokenURL:     googleCfg.TokenURL,
		userInfoURL:  googleCfg.UserInfoURL,
		clientID:     googleCfg.ClientID,
		clientSecret: googleCfg.ClientSecret,
	}
}

func (c *googleClientImpl) AuthCodeURL(state, redirectURI string) string {
	v := url.Values{}
	v.Set("client_id", c.clientID)
	v.Set("redirect_uri", redirectURI)
	v.Set("response_type", "code")
	v.Set("scope", "openid profile email")
	v.Set("prompt", "select_account")
	v.Set("state", state)

	return c.authURL + "?" + v.Encode()
}

func (c *googleClientImpl) ExchangeCode(ctx context.Context, code, redirectURI string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", model.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token endpoint %d: %s", model.ErrProvider, resp.StatusCode, string(b))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", model.ErrProvider, err)
	}

	return res.AccessToken, nil
}

func (c *googleClientImpl) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: userinfo request: %v", model.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: userinfo endpoint %d: %s", model.ErrProvider, resp.StatusCode, string(b))
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: decode userinfo response: %v", model.ErrProvider, err)
	}

	return &info, nil
}
