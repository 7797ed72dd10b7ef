package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"dress-diary/app/controller"
	"dress-diary/app/router"
	"dress-diary/bridge"
	"dress-diary/config"
	"dress-diary/db"
	"dress-diary/decoder"
	"dress-diary/repository"
	"dress-diary/service"
	"dress-diary/suggestion"
)

// App holds the wired application
type App struct {
	Handler http.Handler
	Imports *service.ImportService

	janitor *cron.Cron
}

// Open connects to the database and applies pending migrations
func Open(ctx context.Context, cfg *config.Config) error {
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}
	if err := db.InitDB(ctx, dsn); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(db.DB); err != nil {
		db.CloseDB()
		return err
	}
	return nil
}

// Initialize wires repositories, services and controllers over the open
// database. Drive import and PDF lookbooks degrade to 503 when not configured.
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	engine, err := suggestion.NewEngine(cfg.SuggestionConfigPath)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db.DB)
	outfitRepo := repository.NewOutfitRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)

	store := bridge.NewStoreBridge(itemRepo, outfitRepo, engine)
	accounts := bridge.NewAccountStore(userRepo)
	dec := decoder.NewRecordDecoder()

	var drive service.DriveServiceInterface
	if cfg.DriveEnabled() {
		driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentialsPath)
		if err != nil {
			return nil, err
		}
		drive = driveService
	} else {
		log.Warnf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, Drive import disabled")
	}

	images := service.ImageOptions{MaxDimension: cfg.ImageMaxDimension, Quality: cfg.ImageQuality}

	// Initialize services
	closetService := service.NewClosetService(store, dec, drive, images)
	compositionService := service.NewCompositionService(closetService, store, cfg.CanvasPadding, cfg.CompositionIdleTimeout)
	outfitService := service.NewOutfitService(store, dec)
	authService := service.NewAuthService(accounts, store, cfg.AuthTokenTTL)
	importService := service.NewImportService(drive, store, images)
	lookbookService := service.NewLookbookService(outfitService, engine, cfg.ChromePath)

	janitor, err := service.StartJanitor(cfg.JanitorSchedule, compositionService, authService)
	if err != nil {
		return nil, err
	}

	// Create controllers
	controllers := &router.Controllers{
		Auth:        controller.NewAuthController(authService),
		Item:        controller.NewItemController(closetService),
		Composition: controller.NewCompositionController(compositionService),
		Outfit:      controller.NewOutfitController(outfitService),
		Lookbook:    controller.NewLookbookController(lookbookService),
		Import:      controller.NewImportController(importService),
	}

	return &App{
		Handler: router.NewRouter(controllers, authService),
		Imports: importService,
		janitor: janitor,
	}, nil
}

// Close stops the janitor and closes the database connection
func (a *App) Close() {
	<-a.janitor.Stop().Done()
	if err := db.CloseDB(); err != nil {
		log.Errorf("❌ Error closing database: %v", err)
	}
}
