package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dineflow/backoffice/internal/cloudwriter"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// The parquet writer only writes forward, so reads and seeks are inert.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error)   { return c, nil }
func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *cloudParquetFile) Read(p []byte) (int, error) { return 0, io.EOF }

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) { return c.offset, nil }

func (c *cloudParquetFile) Close() error { return c.cloudWriter.Close() }

func (e *Exporter) exportParquet(report Report, onRow func()) ([]string, error) {
	name := "top_dishes.parquet"

	var (
		file source.ParquetFile
		path string
		err  error
	)
	if e.factory != nil {
		path = filepath.Join(e.cfg.OutputFolder, name)
		cw, ferr := e.factory.NewWriter(e.cfg.CloudStorage.BucketName, path)
		if ferr != nil {
			return nil, fmt.Errorf("failed to open cloud object %s: %w", path, ferr)
		}
		file = &cloudParquetFile{cloudWriter: cw}
	} else {
		dir := filepath.Join(e.cfg.OutputPath, e.cfg.OutputFolder)
		if err := mkdirAll(dir); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, name)
		file, err = local.NewLocalFileWriter(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
	}

	pw, err := writer.NewParquetWriter(file, new(models.DishSales), 4)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range report.TopDishes {
		if err := pw.Write(row); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write parquet row: %w", err)
		}
		if onRow != nil {
			onRow()
		}
	}
	if err := pw.WriteStop(); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return []string{path}, nil
}
