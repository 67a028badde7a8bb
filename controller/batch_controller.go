package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"windcrop/models"
	"windcrop/services/solver"
	"windcrop/utils"
	"windcrop/views"
)

// BatchController fans the configured angles out over a bounded worker
// pool. Configurations are independent (each works on its own case
// dir and immutable inputs), so the only shared state is the samples
// index writer, which is already concurrency-safe, and the stopwatch.
//
// Failure policy per configuration: structural errors (bad parameters,
// insufficient scattered support, solver stage failure) skip that
// angle and the batch continues; there is no global failure state.
type BatchController struct {
	cfg    *utils.PipelineConfig
	watch  *utils.Stopwatch
	runner *solver.CaseRunner
	data   *DatasetController

	produced uint64
	skipped  uint64
}

func NewBatchController(cfg *utils.PipelineConfig) *BatchController {
	watch := utils.NewStopwatch()
	return &BatchController{
		cfg:    cfg,
		watch:  watch,
		runner: solver.NewCaseRunner(cfg.Solver, cfg.Case, watch),
		data:   NewDatasetController(cfg.Dataset),
	}
}

// Run processes every configured angle and writes the batch artifacts
// (samples.csv, timings.json) into the output dir. Returns an error
// only for batch-level setup failures; per-angle failures are counted.
func (bc *BatchController) Run(ctx context.Context) error {
	outDir := bc.cfg.Case.OutputDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	index, err := views.NewCSVWriter(
		filepath.Join(outDir, views.SamplesIndexFile), 0,
		models.SampleMeta{}.CSVHeader(),
	)
	if err != nil {
		return fmt.Errorf("open samples index: %w", err)
	}

	workers := bc.cfg.Dataset.Workers
	jobs := make(chan float64)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for angle := range jobs {
				bc.processAngle(ctx, angle, index)
			}
		}()
	}

feed:
	for _, angle := range bc.cfg.Case.Angles {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- angle:
		}
	}
	close(jobs)
	wg.Wait()

	if err := index.Close(); err != nil {
		return fmt.Errorf("close samples index: %w", err)
	}
	if err := bc.watch.WriteJSON(filepath.Join(outDir, views.TimingsFile)); err != nil {
		return err
	}

	utils.L().Info("batch done: %d samples, %d skipped", bc.Produced(), bc.Skipped())
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

func (bc *BatchController) processAngle(ctx context.Context, angle float64, index *views.CSVWriter) {
	utils.L().Info("angle %g: starting", angle)

	slicePath := bc.runner.SliceCSV(angle)
	if !bc.cfg.Case.SkipSolver {
		var err error
		slicePath, err = bc.runner.Run(ctx, angle)
		if err != nil {
			utils.L().Error("angle %g: solver chain failed, skipping: %v", angle, err)
			atomic.AddUint64(&bc.skipped, 1)
			return
		}
	}

	sampleDir := filepath.Join(bc.cfg.Case.OutputDir, fmt.Sprintf("sample_%g", angle))
	err := bc.watch.Time(fmt.Sprintf("postprocess_angle_%g", angle), func() error {
		meta, err := bc.data.ProcessSlice(slicePath, angle, sampleDir)
		if err != nil {
			return err
		}
		index.WriteRow(meta.CSVRow())
		return nil
	})
	if err != nil {
		utils.L().Error("skipping configuration: %v", err)
		atomic.AddUint64(&bc.skipped, 1)
		return
	}

	atomic.AddUint64(&bc.produced, 1)
	utils.L().Info("angle %g: sample written to %s", angle, sampleDir)
}

// Produced returns how many samples completed.
func (bc *BatchController) Produced() uint64 { return atomic.LoadUint64(&bc.produced) }

// Skipped returns how many configurations were skipped on error.
func (bc *BatchController) Skipped() uint64 { return atomic.LoadUint64(&bc.skipped) }

// OutputDir returns where batch artifacts land.
func (bc *BatchController) OutputDir() string { return bc.cfg.Case.OutputDir }
