package solver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"windcrop/utils"
)

func TestExpandPlaceholders(t *testing.T) {
	argv := expand(
		[]string{"rotate", "{in}", "{out}", "--angle={angle}"},
		map[string]string{"{in}": "a.stl", "{out}": "b.stl", "{angle}": "90"},
	)
	want := []string{"rotate", "a.stl", "b.stl", "--angle=90"}
	for i := range want {
		if argv[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}

func TestTail(t *testing.T) {
	if got := tail("short", 10); got != "short" {
		t.Errorf("tail short = %q", got)
	}
	long := strings.Repeat("x", 50) + "END"
	got := tail(long, 10)
	if !strings.HasSuffix(got, "END") || len(got) > 12 {
		t.Errorf("tail long = %q", got)
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	if err := os.MkdirAll(filepath.Join(src, "0.orig", "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "0.orig", "sub", "U"), []byte("field"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "top.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "copy")
	if err := copyTree(src, dst); err != nil {
		t.Fatalf("copyTree: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "0.orig", "sub", "U"))
	if err != nil || string(data) != "field" {
		t.Errorf("nested file = %q, %v", data, err)
	}
	info, err := os.Stat(filepath.Join(dst, "top.txt"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestPrepareCaseOverwritePolicy(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "system"), []byte("cfg"), 0644); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()

	cases := utils.CaseConfig{BaseCase: base, OutputDir: out, Overwrite: false}
	cr := NewCaseRunner(utils.SolverConfig{}, cases, utils.NewStopwatch())

	caseDir := cr.CaseDir(90)
	if err := cr.prepareCase(caseDir); err != nil {
		t.Fatalf("first prepare: %v", err)
	}
	if err := cr.prepareCase(caseDir); err == nil {
		t.Fatal("second prepare succeeded with overwrite=false, want error")
	}

	cr.cases.Overwrite = true
	if err := cr.prepareCase(caseDir); err != nil {
		t.Fatalf("prepare with overwrite: %v", err)
	}
}

func TestRunWithNoCommandsOnlyCopies(t *testing.T) {
	// All command lists empty: Run degrades to a case copy and returns
	// the expected slice path without invoking anything external.
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "case.foam"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()

	watch := utils.NewStopwatch()
	cr := NewCaseRunner(utils.SolverConfig{}, utils.CaseConfig{
		BaseCase: base, OutputDir: out, Overwrite: true,
	}, watch)

	csvPath, err := cr.Run(context.Background(), 180)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if csvPath != cr.SliceCSV(180) {
		t.Errorf("csvPath = %q, want %q", csvPath, cr.SliceCSV(180))
	}
	if _, err := os.Stat(filepath.Join(cr.CaseDir(180), "case.foam")); err != nil {
		t.Errorf("case not copied: %v", err)
	}
	names := watch.StageNames()
	if len(names) != 1 || names[0] != "case_copy_angle_180" {
		t.Errorf("timed stages = %v, want [case_copy_angle_180]", names)
	}
}
