package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dineflow/backoffice/internal/factories"
	"github.com/dineflow/backoffice/internal/models"
)

var exportNow = time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)

func TestBuildReport(t *testing.T) {
	st := factories.FixtureStore(exportNow)
	report := BuildReport(st, exportNow)

	if report.Summary.TotalOrders != 5 {
		t.Errorf("total orders = %d, want 5", report.Summary.TotalOrders)
	}
	if len(report.TopDishes) != len(st.Dishes) {
		t.Errorf("top dishes = %d rows, want all %d", len(report.TopDishes), len(st.Dishes))
	}
	if report.TopDishes[0].Name != "Mapo Tofu" {
		t.Errorf("top dish = %s, want Mapo Tofu", report.TopDishes[0].Name)
	}
}

func testExporter(t *testing.T, format string) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &models.Config{
		OutputFormat:      format,
		OutputPath:        dir,
		OutputFolder:      "reports",
		OutputDestination: "local",
	}
	e, err := NewExporter(cfg)
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	return e, dir
}

func TestExportCSV(t *testing.T) {
	e, dir := testExporter(t, "csv")
	report := BuildReport(factories.FixtureStore(exportNow), exportNow)

	rows := 0
	paths, err := e.Export(report, func() { rows++ })
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want two files", paths)
	}
	if rows != len(report.TopDishes) {
		t.Errorf("progress callback fired %d times, want %d", rows, len(report.TopDishes))
	}

	f, err := os.Open(filepath.Join(dir, "reports", "top_dishes.csv"))
	if err != nil {
		t.Fatalf("opening top dishes file: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != len(report.TopDishes)+1 {
		t.Fatalf("csv has %d rows, want header plus %d", len(records), len(report.TopDishes))
	}
	if records[0][0] != "name" || records[1][0] != "Mapo Tofu" {
		t.Errorf("rows = %v, %v", records[0], records[1])
	}

	if _, err := os.Stat(filepath.Join(dir, "reports", "revenue_summary.csv")); err != nil {
		t.Errorf("revenue summary file: %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	e, dir := testExporter(t, "json")
	report := BuildReport(factories.FixtureStore(exportNow), exportNow)

	paths, err := e.Export(report, nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("paths = %v, want one file", paths)
	}

	data, err := os.ReadFile(filepath.Join(dir, "reports", "report.json"))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if !decoded.GeneratedAt.Equal(report.GeneratedAt) {
		t.Errorf("generated at = %v, want %v", decoded.GeneratedAt, report.GeneratedAt)
	}
	if decoded.Summary != report.Summary {
		t.Errorf("summary = %+v, want %+v", decoded.Summary, report.Summary)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	e, _ := testExporter(t, "xml")
	if _, err := e.Export(Report{}, nil); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestNewExporterRejectsUnknownProvider(t *testing.T) {
	cfg := &models.Config{
		OutputDestination: "cloud",
		CloudStorage:      models.CloudStorageConfig{Provider: "gopherdrive"},
	}
	if _, err := NewExporter(cfg); err == nil {
		t.Error("expected an error for an unknown cloud provider")
	}
}
