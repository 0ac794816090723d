package app

import (
	"context"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"github.com/andy/gigpost/internal/api"
	"github.com/andy/gigpost/internal/config"
	"github.com/andy/gigpost/internal/crypto"
	"github.com/andy/gigpost/internal/db"
	"github.com/andy/gigpost/internal/domain"
	"github.com/andy/gigpost/internal/repository"
	"github.com/andy/gigpost/internal/service"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config  *config.Config
	DB      *db.DB
	Session domain.Session

	// API client, rebuilt whenever the session changes
	API *api.Client

	// Repositories
	DraftRepo repository.DraftRepository

	// Services
	DraftService  service.DraftService
	SubmitService service.SubmitService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config and the persisted session
// 2. Getting encryption key from keyring
// 3. Opening database
// 4. Running migrations
// 5. Creating repositories
// 6. Creating services
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Get keyring for secure password storage
	keyring := crypto.NewKeyring()

	// Try to get existing encryption key
	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up draft encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		// Store the key in keyring
		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	// Open the database with encryption
	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// A missing or corrupt session file just means anonymous
	sess, err := config.LoadSession(config.DefaultSessionPath())
	if err != nil {
		sess = domain.Session{}
	}

	a := &App{
		Config:  cfg,
		DB:      database,
		Session: sess,
	}
	a.rebuild()

	return a, nil
}

// rebuild wires the API client and everything downstream of it. Called on
// startup and again whenever the session token changes.
func (a *App) rebuild() {
	opts := []api.ClientOption{
		api.WithBaseURL(a.Config.API.BaseURL),
		api.WithHTTPClient(&http.Client{
			Timeout: time.Duration(a.Config.API.TimeoutSeconds) * time.Second,
		}),
	}
	if a.Session.IsAuthenticated() {
		opts = append(opts, api.WithToken(a.Session.Token))
	}
	a.API = api.NewClient(opts...)

	a.DraftRepo = repository.NewDraftRepo(a.DB)
	a.DraftService = service.NewDraftService(a.DraftRepo)
	a.SubmitService = service.NewSubmitService(a.API, a.DraftRepo)
}

// SetSession persists the session and rebuilds the API client around it
func (a *App) SetSession(sess domain.Session) error {
	a.Session = sess
	a.rebuild()
	if !sess.IsAuthenticated() {
		return config.ClearSession(config.DefaultSessionPath())
	}
	return config.SaveSession(config.DefaultSessionPath(), sess)
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your saved project drafts will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for draft encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Draft encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
