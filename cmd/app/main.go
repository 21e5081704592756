package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/jadewing/inkstream/internal/blogservice"
	"github.com/jadewing/inkstream/internal/common"
	"github.com/jadewing/inkstream/internal/userservice"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Run the migrations
	err = common.MigrateDB("file://migrations", cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the services
	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, cfg.JWTSecret),
		blogService: blogservice.NewBlogService(db),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
