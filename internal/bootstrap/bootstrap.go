package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/uniregistry/internal/app/controllers"
	appMigrations "github.com/yigit/uniregistry/internal/app/migrations"
	appRepos "github.com/yigit/uniregistry/internal/app/repositories"
	appRoutes "github.com/yigit/uniregistry/internal/app/routes"
	appServices "github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/config"
	"github.com/yigit/uniregistry/internal/db"
	appMiddleware "github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/helpers"
	"github.com/yigit/uniregistry/internal/pkg/logger"
	"github.com/yigit/uniregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	UniversityService    appServices.UniversityService
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	UniversityController *appControllers.UniversityController
	HealthController     *appControllers.HealthController
	Repos                *appRepos.Repositories
	Services             *appServices.Services
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to the configured document store and, for the postgres
// backend, applies the schema migrations. A store that cannot be reached is fatal.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Gateway, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing document store connection...")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second))
	defer cancel()

	gateway, err := db.Connect(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to document store")
		return nil, err
	}
	lgr.Info().Str("driver", gateway.Driver()).Msg("Document store connection successfully established.")

	if pg, ok := gateway.Store().(*db.PostgresDB); ok {
		if err := runMigrations(ctx, pg, cfg.Database.MigrationsDir, lgr); err != nil {
			_ = gateway.Close(context.Background())
			return nil, err
		}
	}

	return gateway, nil
}

func runMigrations(ctx context.Context, pg *db.PostgresDB, migrationsDir string, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(pg.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, gateway *db.Gateway, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(gateway)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.StudentService = deps.Services.StudentService
	deps.CourseService = deps.Services.CourseService
	deps.UniversityService = deps.Services.UniversityService

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.HealthController = appControllers.NewHealthController(gateway)

	// Create demo data (after the store is ready)
	if cfg.Seed.Enabled {
		if err := seed.CreateDemoData(context.Background(), deps.Services, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.UniversityController,
		deps.HealthController,
	)

	return router
}
