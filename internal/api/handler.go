package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/cyclenote/internal/i18n"
	"github.com/terraincognita07/cyclenote/internal/services"
	"go.uber.org/zap"
)

const (
	authCookieName     = "cyclenote_auth"
	loginAttemptsLimit = 8
	loginAttemptWindow = 15 * time.Minute
	defaultAuthTTL     = 7 * 24 * time.Hour
)

type Options struct {
	Tracker           *services.Tracker
	I18n              *i18n.Manager
	SecretKey         string
	OwnerPasswordHash string
	TokenTTL          time.Duration
	CookieSecure      bool
	Logger            *zap.Logger
}

type Handler struct {
	tracker           *services.Tracker
	i18n              *i18n.Manager
	secretKey         []byte
	ownerPasswordHash string
	tokenTTL          time.Duration
	cookieSecure      bool
	logger            *zap.Logger
	loginThrottle     *loginThrottle
	now               func() time.Time
}

func NewHandler(options Options) (*Handler, error) {
	if options.Tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if options.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if len(options.SecretKey) < 16 {
		return nil, errors.New("secret key must be at least 16 characters")
	}
	if options.TokenTTL <= 0 {
		options.TokenTTL = defaultAuthTTL
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	return &Handler{
		tracker:           options.Tracker,
		i18n:              options.I18n,
		secretKey:         []byte(options.SecretKey),
		ownerPasswordHash: options.OwnerPasswordHash,
		tokenTTL:          options.TokenTTL,
		cookieSecure:      options.CookieSecure,
		logger:            options.Logger,
		loginThrottle:     newLoginThrottle(loginAttemptsLimit, loginAttemptWindow),
		now:               time.Now,
	}, nil
}
