package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// CSVWriter is a concurrency-safe, buffered CSV writer shared by the
// samples index and the raster dumps.
//
// Design decisions:
//   - Underlying bufio.Writer absorbs write syscall overhead; a 2000²
//     raster is four million cells and must not flush per row.
//   - Mutex is held only for a single row encode.
//   - Flush() is the caller's job, so the hot path never blocks on I/O.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter opens (or creates) a file and writes the CSV header row.
func NewCSVWriter(path string, bufSizeBytes int, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 256 * 1024 // 256 KB default
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row. Thread-safe.
func (w *CSVWriter) WriteRow(row []string) {
	w.mu.Lock()
	_ = w.csv.Write(row) // error is buffered; checked on Flush
	w.rows++
	w.mu.Unlock()
}

// Flush pushes the buffered data to the OS.
func (w *CSVWriter) Flush() {
	w.mu.Lock()
	w.csv.Flush()
	_ = w.buf.Flush()
	w.mu.Unlock()
}

// Close flushes remaining data and closes the file.
func (w *CSVWriter) Close() error {
	w.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("csv flush: %w", err)
	}
	return w.file.Close()
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}

// ExportRaster writes one flat x-major array as a headerless CSV
// raster: row i holds the ny values of x-index i. NaN cells are
// written as the literal "NaN" and must be tolerated by downstream
// consumers as missing data.
func ExportRaster(path string, data []float64, nx, ny int) error {
	w, err := NewCSVWriter(path, 0, nil)
	if err != nil {
		return err
	}

	row := make([]string, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			row[j] = strconv.FormatFloat(data[i*ny+j], 'g', -1, 64)
		}
		w.WriteRow(row)
	}
	return w.Close()
}
