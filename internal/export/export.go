// Package export materializes the reports view into files: a revenue
// summary and the top-dishes ranking, written as CSV, JSON or Parquet to a
// local folder or an S3 bucket.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dineflow/backoffice/internal/cloudwriter"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

// Report is the full export payload.
type Report struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     models.RevenueSummary `json:"summary"`
	TopDishes   []models.DishSales    `json:"top_dishes"`
}

// BuildReport derives the report from the current collections. The top
// dishes list is unbounded here; callers truncate for display.
func BuildReport(st *store.Store, now time.Time) Report {
	return Report{
		GeneratedAt: now.UTC(),
		Summary:     views.Revenue(st.Orders),
		TopDishes:   views.TopDishes(st.Dishes, 0),
	}
}

type Exporter struct {
	cfg     *models.Config
	factory cloudwriter.CloudWriterFactory
}

func NewExporter(cfg *models.Config) (*Exporter, error) {
	e := &Exporter{cfg: cfg}
	if cfg.OutputDestination != "local" {
		switch cfg.CloudStorage.Provider {
		case "s3":
			factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
			e.factory = factory
		default:
			return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.CloudStorage.Provider)
		}
	}
	return e, nil
}

// Export writes the report in the configured format and returns the paths
// (or object keys) written. onRow, when non-nil, is called once per
// exported dish row so callers can show progress.
func (e *Exporter) Export(report Report, onRow func()) ([]string, error) {
	switch e.cfg.OutputFormat {
	case "csv":
		return e.exportCSV(report, onRow)
	case "json":
		return e.exportJSON(report, onRow)
	case "parquet":
		return e.exportParquet(report, onRow)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", e.cfg.OutputFormat)
	}
}

// openSink returns a writer for the named export file, local or cloud.
func (e *Exporter) openSink(name string) (io.WriteCloser, string, error) {
	objectPath := filepath.Join(e.cfg.OutputFolder, name)
	if e.factory != nil {
		w, err := e.factory.NewWriter(e.cfg.CloudStorage.BucketName, objectPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open cloud object %s: %w", objectPath, err)
		}
		return cloudWriteCloser{w}, objectPath, nil
	}

	dir := filepath.Join(e.cfg.OutputPath, e.cfg.OutputFolder)
	if err := mkdirAll(dir); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	return file, path, nil
}

type cloudWriteCloser struct {
	cloudwriter.CloudWriter
}

func (c cloudWriteCloser) Write(p []byte) (int, error) { return c.CloudWriter.Write(p) }
func (c cloudWriteCloser) Close() error                { return c.CloudWriter.Close() }

func mkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

func (e *Exporter) exportCSV(report Report, onRow func()) ([]string, error) {
	summarySink, summaryPath, err := e.openSink("revenue_summary.csv")
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(summarySink)
	records := [][]string{
		{"total_revenue", "total_orders", "average_order", "completed_orders", "cancelled_orders"},
		{
			strconv.FormatFloat(report.Summary.TotalRevenue, 'f', 2, 64),
			strconv.Itoa(report.Summary.TotalOrders),
			strconv.FormatFloat(report.Summary.AverageOrder, 'f', 2, 64),
			strconv.Itoa(report.Summary.CompletedOrders),
			strconv.Itoa(report.Summary.CancelledOrders),
		},
	}
	if err := w.WriteAll(records); err != nil {
		summarySink.Close()
		return nil, fmt.Errorf("failed to write revenue summary: %w", err)
	}
	if err := summarySink.Close(); err != nil {
		return nil, err
	}

	dishSink, dishPath, err := e.openSink("top_dishes.csv")
	if err != nil {
		return nil, err
	}
	dw := csv.NewWriter(dishSink)
	if err := dw.Write([]string{"name", "orders", "revenue", "percentage"}); err != nil {
		dishSink.Close()
		return nil, fmt.Errorf("failed to write top dishes header: %w", err)
	}
	for _, row := range report.TopDishes {
		record := []string{
			row.Name,
			strconv.Itoa(int(row.Orders)),
			strconv.FormatFloat(row.Revenue, 'f', 2, 64),
			strconv.FormatFloat(row.Percentage, 'f', 1, 64),
		}
		if err := dw.Write(record); err != nil {
			dishSink.Close()
			return nil, fmt.Errorf("failed to write top dishes row: %w", err)
		}
		if onRow != nil {
			onRow()
		}
	}
	dw.Flush()
	if err := dw.Error(); err != nil {
		dishSink.Close()
		return nil, fmt.Errorf("failed to flush top dishes: %w", err)
	}
	if err := dishSink.Close(); err != nil {
		return nil, err
	}

	return []string{summaryPath, dishPath}, nil
}

func (e *Exporter) exportJSON(report Report, onRow func()) ([]string, error) {
	sink, path, err := e.openSink("report.json")
	if err != nil {
		return nil, err
	}
	enc := json.NewEncoder(sink)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		sink.Close()
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	if onRow != nil {
		for range report.TopDishes {
			onRow()
		}
	}
	if err := sink.Close(); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
