package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arjunrv/mentorhub/internal/app/controllers"
	appMigrations "github.com/arjunrv/mentorhub/internal/app/migrations"
	appRepos "github.com/arjunrv/mentorhub/internal/app/repositories"
	appRoutes "github.com/arjunrv/mentorhub/internal/app/routes"
	appServices "github.com/arjunrv/mentorhub/internal/app/services"
	"github.com/arjunrv/mentorhub/internal/config"
	"github.com/arjunrv/mentorhub/internal/db"
	appMiddleware "github.com/arjunrv/mentorhub/internal/middleware"
	pkgAuth "github.com/arjunrv/mentorhub/internal/pkg/auth"
	"github.com/arjunrv/mentorhub/internal/pkg/helpers"
	"github.com/arjunrv/mentorhub/internal/pkg/logger"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
	"github.com/arjunrv/mentorhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	AuthController       *appControllers.AuthController
	ProfileController    *appControllers.ProfileController
	MentorshipController *appControllers.MentorshipController
	HistoryController    *appControllers.HistoryController
	MessageController    *appControllers.MessageController
	ResourceController   *appControllers.ResourceController
	RealtimeHandler      *realtime.Handler
	Hub                  *realtime.Hub
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, the realtime hub, services,
// controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// The hub persists inbound websocket messages through the message
	// repository and feeds presence-based delivery for the services.
	registry := realtime.NewRegistry()
	deps.Hub = realtime.NewHub(registry, deps.Repos.Message, lgr)
	deps.RealtimeHandler = realtime.NewHandler(deps.Hub, lgr)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.Hub, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.Profile, lgr)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.Services.Mentorship, lgr)
	deps.HistoryController = appControllers.NewHistoryController(deps.Services.History, lgr)
	deps.MessageController = appControllers.NewMessageController(deps.Services.Message, lgr)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.Resource, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Logging.Level) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.ProfileController,
		deps.MentorshipController,
		deps.HistoryController,
		deps.MessageController,
		deps.ResourceController,
		deps.RealtimeHandler,
		deps.AuthMiddleware,
	)

	return router
}
