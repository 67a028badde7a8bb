package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"windcrop/controller"
	"windcrop/utils"
)

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "config/pipeline.yaml", "path to pipeline.yaml")
	logFile := flag.String("log", "", "optional log file path (stdout is always included)")
	skipSolver := flag.Bool("skip-solver", false, "post-process existing slice CSVs without running external tools")
	workers := flag.Int("workers", 0, "override worker count (0 = use config)")
	flag.Parse()

	// ── Load config ──────────────────────────────────────────────────
	cfg, err := utils.LoadPipelineConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *skipSolver {
		cfg.Case.SkipSolver = true
	}
	if *workers > 0 {
		cfg.Dataset.Workers = *workers
	}

	// ── Logger ───────────────────────────────────────────────────────
	logPath := *logFile
	if logPath == "" {
		logPath = cfg.Logging.File
	}
	logger := utils.InitLogger(utils.ParseLevel(cfg.Logging.Level), logPath)
	defer logger.Close()

	utils.L().Info("═══════════════════════════════════════════════════")
	utils.L().Info("  windcrop  ·  Wind-Field Dataset Post-Processor")
	utils.L().Info("  GOMAXPROCS=%d  ·  PID=%d", runtime.GOMAXPROCS(0), os.Getpid())
	utils.L().Info("═══════════════════════════════════════════════════")

	// Resolve relative output dir to absolute.
	if !filepath.IsAbs(cfg.Case.OutputDir) {
		abs, _ := filepath.Abs(cfg.Case.OutputDir)
		cfg.Case.OutputDir = abs
	}

	utils.L().Info("angles: %v  ·  workers: %d  ·  skip_solver: %v",
		cfg.Case.Angles, cfg.Dataset.Workers, cfg.Case.SkipSolver)
	utils.L().Info("grid %dx%d → crop %gx%g @ (%g, %g) → %dx%d px",
		cfg.Dataset.Grid.Nx, cfg.Dataset.Grid.Ny,
		cfg.Dataset.Crop.Width, cfg.Dataset.Crop.Height,
		cfg.Dataset.Crop.CenterX, cfg.Dataset.Crop.CenterY,
		cfg.Dataset.Crop.Nx, cfg.Dataset.Crop.Ny)

	// ── Context with OS signal cancellation ──────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		utils.L().Warn("received signal: %v — cancelling batch…", sig)
		cancel()
	}()

	// ── Run batch ────────────────────────────────────────────────────
	batch := controller.NewBatchController(cfg)
	if err := batch.Run(ctx); err != nil {
		utils.L().Fatal("batch failed: %v", err)
	}

	fmt.Println("\n✓ windcrop finished. Dataset at:", batch.OutputDir())
}
