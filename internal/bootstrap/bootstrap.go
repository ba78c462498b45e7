package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mcharewicz/oskplanner/internal/app/controllers"
	appRepos "github.com/mcharewicz/oskplanner/internal/app/repositories"
	appRoutes "github.com/mcharewicz/oskplanner/internal/app/routes"
	appServices "github.com/mcharewicz/oskplanner/internal/app/services"
	"github.com/mcharewicz/oskplanner/internal/config"
	appMiddleware "github.com/mcharewicz/oskplanner/internal/middleware"
	pkgAuth "github.com/mcharewicz/oskplanner/internal/pkg/auth"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
	"github.com/mcharewicz/oskplanner/internal/pkg/logger"
	"github.com/mcharewicz/oskplanner/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	CalendarService    *appServices.CalendarService
	LessonService      *appServices.LessonService
	ScheduleService    *appServices.ScheduleService
	UserService        *appServices.UserService
	GroupService       *appServices.GroupService
	SchoolService      *appServices.SchoolService
	ErrorLogService    *appServices.ErrorLogService
	AuthController     *appControllers.AuthController
	CalendarController *appControllers.CalendarController
	LessonController   *appControllers.LessonController
	ScheduleController *appControllers.ScheduleController
	UserController     *appControllers.UserController
	GroupController    *appControllers.GroupController
	SchoolController   *appControllers.SchoolController
	ErrorLogController *appControllers.ErrorLogController
	ConsoleController  *appControllers.ConsoleController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

// SetupStore creates the in-memory store and seeds demo data when enabled.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) *appRepos.Repositories {
	lgr.Info().Msg("Initializing in-memory store...")
	repos := appRepos.NewRepositories()

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(context.Background(), repos, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return repos
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		repos.UserRepository,
		repos.GroupRepository,
		repos.SchoolRepository,
		deps.JWTService,
		lgr,
	)
	deps.CalendarService = appServices.NewCalendarService(
		repos.LessonRepository,
		repos.TimeBlockRepository,
		repos.DayOffRepository,
		repos.UserRepository,
	)
	deps.LessonService = appServices.NewLessonService(
		repos.LessonRepository,
		repos.UserRepository,
		repos.DayOffRepository,
		lgr,
	)
	deps.ScheduleService = appServices.NewScheduleService(repos.TimeBlockRepository, repos.DayOffRepository, lgr)
	deps.UserService = appServices.NewUserService(repos.UserRepository, repos.LessonRepository, lgr)
	deps.GroupService = appServices.NewGroupService(repos.GroupRepository, repos.UserRepository, lgr)
	deps.SchoolService = appServices.NewSchoolService(repos.SchoolRepository, lgr)
	deps.ErrorLogService = appServices.NewErrorLogService(repos.ErrorLogRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CalendarController = appControllers.NewCalendarController(deps.CalendarService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService, deps.ErrorLogService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.SchoolController = appControllers.NewSchoolController(deps.SchoolService)
	deps.ErrorLogController = appControllers.NewErrorLogController(deps.ErrorLogService)
	deps.ConsoleController = appControllers.NewConsoleController(repos)

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

	router := gin.Default()

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CalendarController,
		deps.LessonController,
		deps.ScheduleController,
		deps.UserController,
		deps.GroupController,
		deps.SchoolController,
		deps.ErrorLogController,
		deps.ConsoleController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
