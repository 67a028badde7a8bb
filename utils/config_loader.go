package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Solver-side configs ────────────────────────────────────────────────

// SolverConfig describes the external binaries that produce the slice
// CSV an angle's sample is built from. Every command is configuration,
// not code: the pipeline never interprets solver output beyond the
// exported slice table.
type SolverConfig struct {
	// RotateCmd rotates the base geometry into the case. Placeholders:
	// {in}, {out}, {angle}.
	RotateCmd []string `yaml:"rotate_cmd"`
	// EnvScript is sourced before the case command chain (e.g. the
	// OpenFOAM bashrc). Empty means no environment setup.
	EnvScript string `yaml:"env_script"`
	// CaseCmds run inside the case directory, in order.
	CaseCmds []string `yaml:"case_cmds"`
	// ExportCmd extracts the planar slice to CSV. Placeholders:
	// {case}, {csv}, {height}.
	ExportCmd []string `yaml:"export_cmd"`
	// SliceHeight is the z of the export plane. The upstream cases were
	// all sliced at z=20; kept explicit because it is an empirical
	// convention of the case setup, not a law.
	SliceHeight float64 `yaml:"slice_height"`
}

// CaseConfig locates the base simulation case and the per-angle output tree.
type CaseConfig struct {
	BaseCase     string    `yaml:"base_case"`
	BaseGeometry string    `yaml:"base_geometry"`
	GeometryRel  string    `yaml:"geometry_rel"` // geometry path inside a case dir
	OutputDir    string    `yaml:"output_dir"`
	Overwrite    bool      `yaml:"overwrite"`
	Angles       []float64 `yaml:"angles"`
	// SkipSolver post-processes pre-existing slice CSVs without
	// invoking any external binary (useful when re-cropping).
	SkipSolver bool `yaml:"skip_solver"`
}

// ─── Dataset-side configs ───────────────────────────────────────────────

type GridConfig struct {
	Nx int `yaml:"nx"`
	Ny int `yaml:"ny"`
}

type CropConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	// CenterZ is accepted for compatibility with 3-D case configs and
	// ignored: only a planar slice is ever resampled.
	CenterZ float64 `yaml:"center_z"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Nx      int     `yaml:"nx"`
	Ny      int     `yaml:"ny"`
}

type DatasetConfig struct {
	Grid        GridConfig `yaml:"grid"`
	Crop        CropConfig `yaml:"crop"`
	InflowSpeed float64    `yaml:"inflow_speed"`
	Workers     int        `yaml:"workers"`
	Heatmaps    bool       `yaml:"heatmaps"`
}

// PipelineConfig is the top-level structure for pipeline.yaml.
type PipelineConfig struct {
	Case    CaseConfig    `yaml:"case"`
	Solver  SolverConfig  `yaml:"solver"`
	Dataset DatasetConfig `yaml:"dataset"`
	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// LoadPipelineConfig reads and parses pipeline.yaml, applying defaults
// for fields a config may legitimately omit.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline config: %w", err)
	}
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse pipeline config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *PipelineConfig) applyDefaults() {
	if c.Solver.SliceHeight == 0 {
		c.Solver.SliceHeight = 20.0
	}
	if c.Case.GeometryRel == "" {
		c.Case.GeometryRel = "constant/triSurface/buildings.stl"
	}
	if c.Dataset.Grid.Nx == 0 {
		c.Dataset.Grid.Nx = 2000
	}
	if c.Dataset.Grid.Ny == 0 {
		c.Dataset.Grid.Ny = 2000
	}
	if c.Dataset.Crop.Nx == 0 {
		c.Dataset.Crop.Nx = 2000
	}
	if c.Dataset.Crop.Ny == 0 {
		c.Dataset.Crop.Ny = 2000
	}
	if c.Dataset.Workers <= 0 {
		c.Dataset.Workers = 1
	}
}
