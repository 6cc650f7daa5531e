package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL      string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"croche.db"`

	// AdminEmail seeds the admin role on the matching user at first login.
	AdminEmail string `env:"ADMIN_EMAIL"`

	Session Session `envPrefix:"SESSION_"`
	Google  Google  `envPrefix:"GOOGLE_"`
}

type Google struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	AuthURL      string `env:"AUTH_URL" envDefault:"https://accounts.google.com/o/oauth2/auth"`
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	UserInfoURL  string `env:"USERINFO_URL" envDefault:"https://www.googleapis.com/oauth2/v1/userinfo"`
}

type Session struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"24h"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
