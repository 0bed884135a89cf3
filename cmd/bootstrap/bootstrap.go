package bootstrap

import (
	"fmt"
	"os"

	"clinic-data-store/config"
	"clinic-data-store/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the schema management tool
type App struct {
	Config *config.Config
	DB     *gorm.DB
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// Migrate applies all pending schema migrations.
func (app *App) Migrate() error {
	return database.MigrateUp(app.DB)
}

// Rollback rolls back the most recent migration.
func (app *App) Rollback() error {
	return database.MigrateDown(app.DB)
}

// Seed installs the five fixed roles and, when configured, the bootstrap
// Admin account.
func (app *App) Seed() error {
	if err := database.SeedRoles(app.DB); err != nil {
		return err
	}
	return database.SeedAdminUser(app.DB, app.Config.Admin)
}

// Status logs the current migration version and dirty flag.
func (app *App) Status() error {
	version, dirty, err := database.MigrationVersion(app.DB)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Schema status")
	return nil
}

// Close closes the database connection
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
