package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dineflow/backoffice/internal/export"
	"github.com/dineflow/backoffice/internal/factories"
	"github.com/dineflow/backoffice/internal/models"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the revenue report",
	Long:  `export seeds the entity collections, derives the revenue summary and top-dishes ranking, and writes them as CSV, JSON or Parquet to a local folder or an S3 bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if err := runExport(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runExport(cfg *models.Config) error {
	now := time.Now()
	st := factories.SeedStore(cfg, now)
	report := export.BuildReport(st, now)

	exporter, err := export.NewExporter(cfg)
	if err != nil {
		return fmt.Errorf("error setting up exporter: %w", err)
	}

	bar := progressbar.Default(int64(len(report.TopDishes)), "exporting report")
	paths, err := exporter.Export(report, func() { _ = bar.Add(1) })
	if err != nil {
		return fmt.Errorf("error exporting report: %w", err)
	}
	_ = bar.Finish()

	for _, p := range paths {
		fmt.Println("wrote", p)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("output-format", "csv", "Report format: csv, json or parquet")
	exportCmd.Flags().String("output-path", "output", "Base directory for local exports")
	exportCmd.Flags().String("output-folder", "reports", "Folder (or object prefix) for the report files")
	exportCmd.Flags().String("output-destination", "local", "Export destination: local or s3")
	exportCmd.Flags().String("s3-bucket", "", "S3 bucket for cloud exports")
	exportCmd.Flags().String("s3-region", "us-east-1", "S3 region for cloud exports")

	for flag, key := range map[string]string{
		"output-format":      "output_format",
		"output-path":        "output_path",
		"output-folder":      "output_folder",
		"output-destination": "output_destination",
		"s3-bucket":          "cloud_storage.bucket_name",
		"s3-region":          "cloud_storage.region",
	} {
		if f := exportCmd.Flags().Lookup(flag); f != nil {
			viper.BindPFlag(key, f)
		}
	}
	viper.SetDefault("cloud_storage.provider", "s3")
}
