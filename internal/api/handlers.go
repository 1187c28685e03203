package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/fertilis/internal/db"
	"github.com/terraincognita07/fertilis/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	now          func() time.Time
	logger       zerolog.Logger
	loginLimiter *loginLimiter

	repositories      *db.Repositories
	authService       *services.AuthService
	dayService        *services.DayService
	predictionService *services.PredictionService
	summaryService    *services.SummaryService
	settingsService   *services.SettingsService
}

// NewHandler wires repositories and services over database. loginPerMinute
// caps login attempts per client IP; zero or less disables the cap.
func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, loginPerMinute int) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		now:          time.Now,
		logger:       log.With().Str("component", "api").Logger(),
		loginLimiter: newLoginLimiter(loginPerMinute),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.dayService = services.NewDayService(handler.repositories.FertilityLogs)
	handler.predictionService = services.NewPredictionService(handler.repositories.FertilityLogs, handler.repositories.Users, nil)
	handler.summaryService = services.NewSummaryService(handler.repositories.FertilityLogs, handler.repositories.Users)
	handler.settingsService = services.NewSettingsService(handler.repositories.Users)
	return handler
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}
