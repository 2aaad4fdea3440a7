package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supply-ledger/core/config"
	"supply-ledger/core/database"
	"supply-ledger/core/ledger"
	"supply-ledger/core/loader"
	"supply-ledger/core/logger"
	"supply-ledger/core/middleware/auth"
	"supply-ledger/core/middleware/rayid"
	"supply-ledger/core/registry"
	"supply-ledger/core/storage"

	"supply-ledger/feature/catalog"
	"supply-ledger/feature/items"
	"supply-ledger/feature/lifecycle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "supply-ledger/docs/swagger"
)

// @title Supply Ledger API
// @version 1.0
// @description API for the inventory and lifecycle ledger of serialized goods.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the supply ledger server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize the ledger with its asset registry
		if !cfg.Server.HasOperator() {
			logg.Fatal("No operator identity configured")
		}
		ldg := ledger.New(registry.NewInMemory(), cfg.Server.Operator)

		// 4. Connect to Database (Optional). Without it the ledger runs
		// in-memory only and loses its state on restart.
		var snapStore *database.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, snapshots disabled", zap.Error(err))
		} else {
			snapStore = database.NewStore(db)
			if err := snapStore.Migrate(); err != nil {
				logg.Fatal("Failed to migrate snapshot schema", zap.Error(err))
			}
			snap, err := snapStore.Load(context.Background())
			if err != nil {
				logg.Fatal("Failed to load snapshot", zap.Error(err))
			}
			if err := ldg.Restore(snap); err != nil {
				logg.Fatal("Failed to restore snapshot", zap.Error(err))
			}
			logg.Info("Ledger restored from snapshot",
				zap.Int("products", len(snap.Products)),
				zap.Int("items", len(snap.Items)),
			)
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		if exists, err := store.BucketExists(context.Background(), cfg.Storage.Bucket); err != nil {
			logg.Warn("Could not verify metadata bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		} else if !exists {
			opts := minio.MakeBucketOptions{Region: cfg.Storage.Region}
			if err := store.MakeBucket(context.Background(), cfg.Storage.Bucket, opts); err != nil {
				logg.Fatal("Failed to create metadata bucket", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
			logg.Info("Metadata bucket created", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(catalog.NewFeature(ldg, logg))
		mgr.Register(items.NewFeature(ldg, store, cfg.Storage.Bucket, logg))
		mgr.Register(lifecycle.NewFeature(ldg, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("operator", cfg.Server.Operator),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		if snapStore != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := snapStore.Save(ctx, ldg.Snapshot()); err != nil {
				logg.Error("Failed to save snapshot on shutdown", zap.Error(err))
			} else {
				logg.Info("Snapshot saved")
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
