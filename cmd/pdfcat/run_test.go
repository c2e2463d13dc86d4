package main

// Notes:
// - runMain is driven end to end with the fpdf renderer, so no browser is needed
// - Output goes to buffers through Environment; exit codes and messages are
//   what a shell user observes
// - Tests that read PDFCAT_* variables use t.Setenv and cannot run in parallel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alnah/go-pdfcat"
	"github.com/alnah/go-pdfcat/internal/config"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv() *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdout: stdout,
			Stderr: stderr,
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// writePDF writes a PDF with the given number of pages into dir.
func writePDF(t *testing.T, dir, name string, pages int) {
	t.Helper()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, fmt.Sprintf("%s page %d", name, i))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func pageCount(t *testing.T, path string) int {
	t.Helper()

	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("counting pages of %s: %v", path, err)
	}
	return n
}

// ---------------------------------------------------------------------------
// TestRunMain - Outcomes
// ---------------------------------------------------------------------------

func TestRunMain_Success(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 2)
	writePDF(t, in, "b.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	code := runMain(context.Background(), []string{in, out}, env.Environment)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, env.stderr)
	}
	want := fmt.Sprintf("Successfully combined PDFs into '%s'\n", out)
	if env.stdout.String() != want {
		t.Errorf("stdout = %q, want %q", env.stdout, want)
	}
	if n := pageCount(t, out); n != 8 {
		t.Errorf("output has %d pages, want 8", n)
	}
}

func TestRunMain_Quiet(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	code := runMain(context.Background(), []string{"-q", in, out}, env.Environment)

	if code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, env.stderr)
	}
	if env.stdout.Len() != 0 || env.stderr.Len() != 0 {
		t.Errorf("quiet run printed stdout=%q stderr=%q", env.stdout, env.stderr)
	}
}

func TestRunMain_Verbose(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	if code := runMain(context.Background(), []string{"-v", in, out}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, env.stderr)
	}

	logs := env.stderr.String()
	for _, want := range []string{"document added", "title=a", "header_page=2"} {
		if !strings.Contains(logs, want) {
			t.Errorf("verbose log missing %q:\n%s", want, logs)
		}
	}
}

func TestRunMain_Bookmarks(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	if code := runMain(context.Background(), []string{"--bookmarks", in, out}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, env.stderr)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, nil)
	if err != nil {
		t.Fatalf("reading bookmarks: %v", err)
	}
	if len(bms) != 1 || bms[0].Title != "a" || bms[0].PageFrom != 2 {
		t.Errorf("bookmarks = %+v, want a->2", bms)
	}
}

func TestRunMain_NoInput(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	code := runMain(context.Background(), []string{in, out}, env.Environment)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if got := env.stdout.String(); got != "No PDF files found in the input directory.\n" {
		t.Errorf("stdout = %q", got)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("no output file should be created")
	}
}

func TestRunMain_TOCOverflow(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	for i := range pdfcat.MaxTOCEntries + 1 {
		writePDF(t, in, fmt.Sprintf("doc%02d.pdf", i), 1)
	}
	out := filepath.Join(t.TempDir(), "combined.pdf")

	env := newTestEnv()
	code := runMain(context.Background(), []string{in, out}, env.Environment)

	if code != ExitOverflow {
		t.Errorf("exit code = %d, want %d", code, ExitOverflow)
	}
	if !strings.HasPrefix(env.stderr.String(), "error, toc is bigger than one page") {
		t.Errorf("stderr = %q", env.stderr)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("no output file should be created")
	}
}

func TestRunMain_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       func(t *testing.T) []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "no arguments",
			args:       func(t *testing.T) []string { return nil },
			wantCode:   ExitUsage,
			wantStderr: "Usage: pdfcat",
		},
		{
			name:       "one argument",
			args:       func(t *testing.T) []string { return []string{t.TempDir()} },
			wantCode:   ExitUsage,
			wantStderr: "got 1 argument",
		},
		{
			name: "three arguments",
			args: func(t *testing.T) []string {
				return []string{t.TempDir(), "a.pdf", "b.pdf"}
			},
			wantCode:   ExitUsage,
			wantStderr: "got 3 argument",
		},
		{
			name:       "unknown flag",
			args:       func(t *testing.T) []string { return []string{"--colour", "in", "out"} },
			wantCode:   ExitUsage,
			wantStderr: "unknown flag",
		},
		{
			name: "unknown renderer",
			args: func(t *testing.T) []string {
				return []string{"-r", "latex", t.TempDir(), "out.pdf"}
			},
			wantCode:   ExitUsage,
			wantStderr: "hint: available: fpdf, chrome",
		},
		{
			name: "invalid timeout",
			args: func(t *testing.T) []string {
				return []string{"-t", "soon", t.TempDir(), "out.pdf"}
			},
			wantCode:   ExitUsage,
			wantStderr: "invalid timeout",
		},
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{"-c", filepath.Join(t.TempDir(), "none.yaml"), t.TempDir(), "out.pdf"}
			},
			wantCode:   ExitUsage,
			wantStderr: "config file not found",
		},
		{
			name: "missing input directory",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "missing"), "out.pdf"}
			},
			wantCode:   ExitIO,
			wantStderr: "failed to read input document",
		},
		{
			name: "corrupt input",
			args: func(t *testing.T) []string {
				in := t.TempDir()
				if err := os.WriteFile(filepath.Join(in, "bad.pdf"), []byte("junk"), 0o644); err != nil {
					t.Fatal(err)
				}
				return []string{in, filepath.Join(t.TempDir(), "out.pdf")}
			},
			wantCode:   ExitIO,
			wantStderr: "bad.pdf",
		},
		{
			name: "missing output directory",
			args: func(t *testing.T) []string {
				in := t.TempDir()
				writePDF(t, in, "a.pdf", 1)
				return []string{in, filepath.Join(t.TempDir(), "missing", "out.pdf")}
			},
			wantCode:   ExitIO,
			wantStderr: "hint: check parent directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			code := runMain(context.Background(), tt.args(t), env.Environment)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, env.stderr)
			}
			if !strings.Contains(env.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", env.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_VersionAndHelp(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	if code := runMain(context.Background(), []string{"--version"}, env.Environment); code != ExitSuccess {
		t.Errorf("--version exit code = %d", code)
	}
	if got := env.stdout.String(); got != "pdfcat "+Version+"\n" {
		t.Errorf("--version printed %q", got)
	}

	for _, arg := range []string{"-h", "--help"} {
		env := newTestEnv()
		if code := runMain(context.Background(), []string{arg}, env.Environment); code != ExitSuccess {
			t.Errorf("%s exit code = %d", arg, code)
		}
		if !strings.Contains(env.stdout.String(), "Usage: pdfcat") {
			t.Errorf("%s should print usage to stdout", arg)
		}
	}
}

func TestRunMain_CanceledContext(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := newTestEnv()
	if code := runMain(ctx, []string{in, out}, env.Environment); code != ExitGeneral {
		t.Errorf("exit code = %d, want %d", code, ExitGeneral)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("no output file should be created")
	}
}

// ---------------------------------------------------------------------------
// TestConfigLayering - flags > env > config file > defaults
// ---------------------------------------------------------------------------

func TestRunMain_ConfigFile(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	writePDF(t, in, "a.pdf", 1)
	out := filepath.Join(t.TempDir(), "combined.pdf")

	cfgPath := filepath.Join(t.TempDir(), "pdfcat.yaml")
	if err := os.WriteFile(cfgPath, []byte("renderer: fpdf\nbookmarks: true\ntoc:\n  title: Contents\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := newTestEnv()
	if code := runMain(context.Background(), []string{"-c", cfgPath, in, out}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, env.stderr)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bms) != 1 {
		t.Errorf("config bookmarks: true should add an outline, got %d entries", len(bms))
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	c := &config.Config{Renderer: "chrome", Timeout: "10s", TOC: config.TOCConfig{Title: "From file"}}

	mergeFlags(&cliFlags{assemble: assembleFlags{renderer: "fpdf", bookmarks: true}}, c)

	if c.Renderer != "fpdf" {
		t.Errorf("Renderer = %q, flag should win", c.Renderer)
	}
	if c.Timeout != "10s" {
		t.Errorf("Timeout = %q, unset flag should keep the file value", c.Timeout)
	}
	if !c.Bookmarks {
		t.Error("Bookmarks should be enabled by the flag")
	}
	if c.TOC.Title != "From file" {
		t.Errorf("TOC.Title = %q, unset flag should keep the file value", c.TOC.Title)
	}
}

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{"", pdfcat.DefaultTimeout, false},
		{"45s", 45 * time.Second, false},
		{"2m", 2 * time.Minute, false},
		{"0s", 0, true},
		{"-1s", 0, true},
		{"later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(&config.Config{Timeout: tt.timeout})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Errorf("error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
