package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/latoulicious/meeple/internal/commands"
	"github.com/latoulicious/meeple/internal/config"
	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/database"
	"github.com/latoulicious/meeple/pkg/database/repository"
	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/stats"
	"github.com/latoulicious/meeple/pkg/store"
	"github.com/latoulicious/meeple/pkg/tracker"
	"github.com/latoulicious/meeple/pkg/tracker/service"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("meeple: %v", err)
	}
}

func run() error {
	// Load environment variables from .env file; it might not exist in
	// production, so a failure here is not fatal.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc, cleanup, err := initializeApplication(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	commands.InitializeCommands(svc, cfg.Locale)

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return nil
	}

	name := args[0]
	if name == "serve" {
		return serve(cfg, svc)
	}

	cmd, ok := commands.Lookup(name)
	if !ok {
		printUsage()
		return fmt.Errorf("unknown command: %s", name)
	}
	return cmd.Handler(args[1:])
}

// initializeApplication builds the shared service from configuration.
// The returned cleanup closes the optional cache database connection.
func initializeApplication(cfg *config.Config) (*tracker.Service, func(), error) {
	systemLogger := logging.GetGlobalLoggerFactory().CreateLogger("system")

	st, err := store.Open(cfg.Data.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data store: %w", err)
	}

	cleanup := func() {}
	var gameRepo *repository.GameRepository
	if cfg.Database.URL != "" {
		db, err := database.NewGormDB(cfg.Database.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize cache database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get underlying database: %w", err)
		}
		cleanup = func() { sqlDB.Close() }
		gameRepo = repository.NewGameRepository(db)

		systemLogger.Info("Catalog cache database connected", nil)
	}

	catalog := bgg.NewClient(bgg.ClientConfig{
		BaseURL:     cfg.Catalog.BaseURL,
		Timeout:     cfg.Catalog.Timeout(),
		MaxAttempts: cfg.Catalog.MaxAttempts,
		RetryDelay:  cfg.Catalog.RetryDelay(),
	})

	svc := tracker.NewService(st, gameRepo, catalog, stats.NewEngine())

	systemLogger.Info("Application initialized", map[string]interface{}{
		"data_dir":      cfg.Data.Dir,
		"games_count":   len(st.Games),
		"players_count": len(st.Players),
		"plays_count":   len(st.Plays),
		"cache_enabled": gameRepo != nil,
	})

	return svc, cleanup, nil
}

// serve keeps the process alive and refreshes the catalog on a cron
// schedule until a termination signal arrives. Refresh runs execute
// serially on the scheduler goroutine.
func serve(cfg *config.Config, svc *tracker.Service) error {
	if cfg.RefreshCron == "" {
		return fmt.Errorf("serve requires refresh_cron to be configured")
	}

	systemLogger := logging.GetGlobalLoggerFactory().CreateLogger("system")
	syncService := service.NewSyncService(svc)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.RefreshCron, func() {
		if err := syncService.RefreshAllGames(); err != nil {
			systemLogger.Error("Scheduled refresh failed", err, nil)
		}
	}); err != nil {
		return fmt.Errorf("invalid refresh_cron %q: %w", cfg.RefreshCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	systemLogger.Info("Scheduler running, press CTRL-C to exit", map[string]interface{}{
		"refresh_cron": cfg.RefreshCron,
	})

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	systemLogger.Info("Shutting down", nil)
	return nil
}

func printUsage() {
	fmt.Println("usage: meeple <command> [arguments]")
	fmt.Println()
	fmt.Println("commands:")
	for _, cmd := range commands.All() {
		fmt.Printf("  %-32s %s\n", cmd.Usage, cmd.Description)
	}
	fmt.Println("  serve                            Run the scheduled catalog refresher")
}
