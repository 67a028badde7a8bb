package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"windcrop/models"
	"windcrop/utils"
)

// SliceReader ingests one exported slice table: rows of scattered
// (x, y, ux[, uy]) samples produced by the solver's slice export.
// The export tool names columns "Points:0", "Points:1", "U:0", "U:1";
// plain "x"/"y"/"ux"/"uy" headers are accepted too so hand-made
// fixtures and re-exports both load. A missing uy column is not an
// error: that component is treated as uniformly zero.
type SliceReader struct {
	path    string
	parsed  uint64
	skipped uint64
}

func NewSliceReader(path string) *SliceReader {
	return &SliceReader{path: path}
}

// column aliases, matched case-insensitively
var (
	xAliases  = []string{"points:0", "x"}
	yAliases  = []string{"points:1", "y"}
	uxAliases = []string{"u:0", "ux"}
	uyAliases = []string{"u:1", "uy"}
)

func findColumn(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}

// Read parses the whole table into memory. Rows with unparseable
// numbers are skipped and counted, not fatal: solver exports
// occasionally contain stray diagnostic lines.
func (r *SliceReader) Read() ([]models.PointSample, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open slice table %s: %w", r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // tolerate ragged diagnostic rows, counted below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read slice header: %w", err)
	}

	xi := findColumn(header, xAliases)
	yi := findColumn(header, yAliases)
	uxi := findColumn(header, uxAliases)
	uyi := findColumn(header, uyAliases)

	if xi < 0 || yi < 0 || uxi < 0 {
		return nil, fmt.Errorf("slice table %s: missing required columns (x=%d y=%d ux=%d)",
			r.path, xi, yi, uxi)
	}
	if uyi < 0 {
		utils.L().Warn("slice table %s has no uy column — zero-filling that component", r.path)
	}

	var samples []models.PointSample
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read slice row: %w", err)
		}

		s, ok := r.parseRow(rec, xi, yi, uxi, uyi)
		if !ok {
			r.skipped++
			continue
		}
		samples = append(samples, s)
		r.parsed++
	}

	utils.L().Debug("slice table %s: %d samples parsed, %d rows skipped",
		r.path, r.parsed, r.skipped)
	return samples, nil
}

func (r *SliceReader) parseRow(rec []string, xi, yi, uxi, uyi int) (models.PointSample, bool) {
	need := max(xi, max(yi, uxi))
	if uyi > need {
		need = uyi
	}
	if len(rec) <= need {
		return models.PointSample{}, false
	}

	x, err1 := strconv.ParseFloat(strings.TrimSpace(rec[xi]), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(rec[yi]), 64)
	ux, err3 := strconv.ParseFloat(strings.TrimSpace(rec[uxi]), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return models.PointSample{}, false
	}

	uy := 0.0
	if uyi >= 0 {
		var err error
		uy, err = strconv.ParseFloat(strings.TrimSpace(rec[uyi]), 64)
		if err != nil {
			return models.PointSample{}, false
		}
	}

	return models.PointSample{X: x, Y: y, Ux: ux, Uy: uy}, true
}

// Skipped returns how many rows failed to parse.
func (r *SliceReader) Skipped() uint64 { return r.skipped }
