package cmd

import (
	"fmt"
	"log"

	"supply-ledger/core/audit"
	"supply-ledger/core/config"
	"supply-ledger/core/database"
	"supply-ledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the persisted ledger snapshot",
	Long: `Loads the latest snapshot from the database and cross-checks the bucket
counters of every product against the states of its live items. The command
exits non-zero when the two views disagree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// Console output reads better for a CLI report.
		cfg.Log.Format = "console"
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}

		store := database.NewStore(db)
		snap, err := store.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		// No registry connection here, so only the conservation checks run.
		report, err := audit.Run(cmd.Context(), snap, nil)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		for _, res := range report.Results {
			if len(res.Mismatch) == 0 {
				continue
			}
			logg.Warn("Bucket mismatch",
				zap.Uint64("product_id", res.ProductID),
				zap.String("name", res.Name),
				zap.Strings("mismatch", res.Mismatch),
			)
		}
		if len(report.Orphaned) > 0 {
			logg.Warn("Orphaned items", zap.Uint64s("item_ids", report.Orphaned))
		}

		logg.Info("Audit finished",
			zap.Int("products", report.Summary.Products),
			zap.Int("items", report.Summary.Items),
			zap.Int("bucket_mismatches", report.Summary.BucketMismatches),
			zap.Int("orphaned_items", report.Summary.OrphanedItems),
		)

		if !report.Clean() {
			return fmt.Errorf("audit found %d bucket mismatches and %d orphaned items",
				report.Summary.BucketMismatches, report.Summary.OrphanedItems)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
}
