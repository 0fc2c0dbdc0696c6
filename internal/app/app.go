package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/config"
	"github.com/skilltrackhq/skilltrack/internal/db"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/service"
	"github.com/skilltrackhq/skilltrack/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	UserRepository   repository.UserRepository
	AuthService      *service.AuthService
	UserService      *service.UserService
	ProfileService   *service.ProfileService
	SkillService     *service.SkillService
	GoalService      *service.GoalService
	ProgressService  *service.ProgressService
	NoteService      *service.NoteService
	DashboardService *service.DashboardService
	FileService      *service.FileService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	skillRepository := repository.NewSkillRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	progressRepository := repository.NewProgressRepository(database)
	noteRepository := repository.NewNoteRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Storage
	fileStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	fileService := service.NewFileService(fileRepository, fileStorage)
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, fileService)
	profileService := service.NewProfileService(profileRepository)
	skillService := service.NewSkillService(skillRepository, goalRepository, progressRepository, noteRepository, fileService)
	goalService := service.NewGoalService(goalRepository, skillRepository, fileService)
	progressService := service.NewProgressService(progressRepository, skillRepository, goalRepository, fileService)
	noteService := service.NewNoteService(noteRepository, skillRepository, fileService)
	dashboardService := service.NewDashboardService(skillRepository, goalRepository, progressRepository, noteService)

	return &App{
		Cfg:              cfg,
		DB:               database,
		UserRepository:   userRepository,
		AuthService:      authService,
		UserService:      userService,
		ProfileService:   profileService,
		SkillService:     skillService,
		GoalService:      goalService,
		ProgressService:  progressService,
		NoteService:      noteService,
		DashboardService: dashboardService,
		FileService:      fileService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
