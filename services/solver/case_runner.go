package solver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"windcrop/utils"
)

// CaseRunner drives the external tool chain that produces one angle's
// slice CSV: copy the base case, rotate the base geometry into it,
// run the mesh/solve command chain, export the planar slice. The
// binaries themselves (mesher, solver, exporter) are opaque
// collaborators named in config; this stage only sequences them and
// times each step. A failed stage aborts that angle only.
type CaseRunner struct {
	cfg   utils.SolverConfig
	cases utils.CaseConfig
	watch *utils.Stopwatch
}

func NewCaseRunner(cfg utils.SolverConfig, cases utils.CaseConfig, watch *utils.Stopwatch) *CaseRunner {
	return &CaseRunner{cfg: cfg, cases: cases, watch: watch}
}

// CaseDir returns the per-angle case directory path.
func (cr *CaseRunner) CaseDir(angle float64) string {
	return filepath.Join(cr.cases.OutputDir, fmt.Sprintf("case_%g", angle))
}

// SliceCSV returns where an angle's exported slice table lands.
func (cr *CaseRunner) SliceCSV(angle float64) string {
	return filepath.Join(cr.CaseDir(angle), "slice.csv")
}

// Run executes the full chain for one angle and returns the slice CSV path.
func (cr *CaseRunner) Run(ctx context.Context, angle float64) (string, error) {
	caseDir := cr.CaseDir(angle)
	tag := fmt.Sprintf("angle_%g", angle)

	if err := cr.watch.Time("case_copy_"+tag, func() error {
		return cr.prepareCase(caseDir)
	}); err != nil {
		return "", fmt.Errorf("prepare case %s: %w", caseDir, err)
	}

	if len(cr.cfg.RotateCmd) > 0 {
		if err := cr.watch.Time("geometry_rotation_"+tag, func() error {
			return cr.rotateGeometry(ctx, caseDir, angle)
		}); err != nil {
			return "", fmt.Errorf("rotate geometry for %s: %w", caseDir, err)
		}
	}

	if len(cr.cfg.CaseCmds) > 0 {
		if err := cr.watch.Time("solver_simulation_"+tag, func() error {
			return cr.runCaseChain(ctx, caseDir)
		}); err != nil {
			return "", fmt.Errorf("solve case %s: %w", caseDir, err)
		}
	}

	csvPath := cr.SliceCSV(angle)
	if len(cr.cfg.ExportCmd) > 0 {
		if err := cr.watch.Time("slice_export_"+tag, func() error {
			return cr.exportSlice(ctx, caseDir, csvPath)
		}); err != nil {
			return "", fmt.Errorf("export slice for %s: %w", caseDir, err)
		}
	}

	return csvPath, nil
}

// prepareCase replaces any previous run's case dir with a fresh copy
// of the base case.
func (cr *CaseRunner) prepareCase(caseDir string) error {
	if _, err := os.Stat(caseDir); err == nil {
		if !cr.cases.Overwrite {
			return fmt.Errorf("case dir %s already exists (overwrite=false)", caseDir)
		}
		if err := os.RemoveAll(caseDir); err != nil {
			return fmt.Errorf("remove stale case dir: %w", err)
		}
	}
	return copyTree(cr.cases.BaseCase, caseDir)
}

func (cr *CaseRunner) rotateGeometry(ctx context.Context, caseDir string, angle float64) error {
	dst := filepath.Join(caseDir, cr.cases.GeometryRel)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create geometry dir: %w", err)
	}
	argv := expand(cr.cfg.RotateCmd, map[string]string{
		"{in}":    cr.cases.BaseGeometry,
		"{out}":   dst,
		"{angle}": strconv.FormatFloat(angle, 'g', -1, 64),
	})
	return cr.exec(ctx, argv, "")
}

// runCaseChain sources the solver environment (if configured) and runs
// the configured commands inside the case dir as one shell invocation,
// the way the solver distributions expect to be driven.
func (cr *CaseRunner) runCaseChain(ctx context.Context, caseDir string) error {
	var b strings.Builder
	b.WriteString("set -e\n")
	if cr.cfg.EnvScript != "" {
		fmt.Fprintf(&b, "source %s\n", cr.cfg.EnvScript)
	}
	fmt.Fprintf(&b, "cd %s\n", caseDir)
	for _, c := range cr.cfg.CaseCmds {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return cr.exec(ctx, []string{"bash", "-c", b.String()}, "")
}

func (cr *CaseRunner) exportSlice(ctx context.Context, caseDir, csvPath string) error {
	argv := expand(cr.cfg.ExportCmd, map[string]string{
		"{case}":   filepath.Join(caseDir, "case.foam"),
		"{csv}":    csvPath,
		"{height}": strconv.FormatFloat(cr.cfg.SliceHeight, 'g', -1, 64),
	})
	return cr.exec(ctx, argv, "")
}

func (cr *CaseRunner) exec(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return nil
	}
	utils.L().Debug("exec: %s", strings.Join(argv, " "))
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		// Surface the tail of the tool output; solver logs can be huge.
		return fmt.Errorf("%s: %w (%s)", argv[0], err, tail(string(out), 400))
	}
	return nil
}

func expand(argv []string, subs map[string]string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		for k, v := range subs {
			a = strings.ReplaceAll(a, k, v)
		}
		out[i] = a
	}
	return out
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "…" + s[len(s)-n:]
}

// copyTree recursively copies a directory, preserving file modes.
// Symlinks are followed; base cases are plain file trees.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	})
}
