package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kidsedu/internal/bootstrap"
	"kidsedu/internal/config"
	"kidsedu/internal/importer"
	"kidsedu/internal/logger"
	"kidsedu/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import_vocabulary",
		Short: "Upload labeled images listed in an .xlsx or .csv file",
		Long: "Each row names an image file and its word. The image is uploaded to the\n" +
			"configured storage and stored as an already labeled vocabulary item.",
		RunE: runImport,
	}

	defaults := importer.DefaultConfig()
	f := cmd.Flags()
	f.StringP("file", "f", "", "Spreadsheet to import (.xlsx or .csv)")
	f.String("sheet", "", "Sheet name, the first sheet when empty")
	f.String("base-dir", "", "Directory relative image paths are resolved against (default: the file's directory)")
	f.String("image-column", defaults.ImageColumn, "Column holding the image path")
	f.String("label-column", defaults.LabelColumn, "Column holding the word")
	f.Int("start-row", defaults.StartRow, "First data row, 1-based")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	importCfg := importer.DefaultConfig()
	importCfg.FilePath, _ = f.GetString("file")
	importCfg.SheetName, _ = f.GetString("sheet")
	importCfg.BaseDir, _ = f.GetString("base-dir")
	importCfg.ImageColumn, _ = f.GetString("image-column")
	importCfg.LabelColumn, _ = f.GetString("label-column")
	importCfg.StartRow, _ = f.GetInt("start-row")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.Get()
	defer logger.Sync()

	if !cfg.VocabularyConfigured() {
		return fmt.Errorf("vocabulary store is not configured: set DATABASE_URL and the STORAGE_* variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenVocabulary(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	vocabularyService := service.NewVocabularyService(store.Repo, store.Storage, service.VocabularyServiceOptions{
		Cache:   store.Cache,
		ItemTTL: cfg.Redis.ItemTTL,
	})

	result, err := importer.Import(ctx, importCfg, vocabularyService)
	if err != nil {
		return err
	}

	for _, rowErr := range result.Errors {
		log.Warn("Row not imported", zap.String("error", rowErr))
	}
	log.Info("Import finished",
		zap.String("file", importCfg.FilePath),
		zap.Int("processed", result.TotalProcessed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d rows: %d created, %d skipped\n",
		result.TotalProcessed, result.Created, result.Skipped)
	return nil
}
