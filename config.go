package client

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds client settings read from the environment.
// Environment variables are parsed from the READLATER_ prefix,
// e.g. READLATER_CONSUMER_KEY, READLATER_HTTP_TIMEOUT.
type Config struct {
	ConsumerKey  string        `envconfig:"CONSUMER_KEY" required:"true"`
	AccessToken  string        `envconfig:"ACCESS_TOKEN"`
	BaseURL      string        `envconfig:"BASE_URL" default:"https://getpocket.com"`
	AuthorizeURL string        `envconfig:"AUTHORIZE_URL" default:"https://getpocket.com/auth/authorize"`
	RedirectURI  string        `envconfig:"REDIRECT_URI" default:"readlater:finishauth"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads envFiles (dotenv format) into the process environment,
// then parses and validates the READLATER_ variables. Variables already set
// in the environment win over the files.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("READLATER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("redirect_uri", cfg.RedirectURI).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("access_token_present", cfg.AccessToken != "").
		Bool("debug", cfg.Debug).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks the settings New relies on.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ConsumerKey, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.AuthorizeURL, validation.Required, is.RequestURL),
		validation.Field(&c.RedirectURI, validation.Required),
		validation.Field(&c.HTTPTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.LogLevel, validation.By(func(v interface{}) error {
			_, err := zerolog.ParseLevel(v.(string))
			return err
		})),
	)
}

// Level returns the configured log level, or info when it does not parse.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewFromConfig builds a Client from cfg. Options given here are applied
// after the ones derived from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithAuthorizeURL(cfg.AuthorizeURL),
		WithRedirectURI(cfg.RedirectURI),
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithDebugLogging(cfg.Debug),
		WithLogger(log.Logger.Level(cfg.Level())),
	}
	if cfg.AccessToken != "" {
		base = append(base, WithAccessToken(cfg.AccessToken))
	}
	return New(cfg.ConsumerKey, append(base, opts...)...)
}
