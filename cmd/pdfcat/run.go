package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfcat"
	"github.com/alnah/go-pdfcat/internal/config"
	"github.com/alnah/go-pdfcat/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// User-facing messages.
const (
	msgNoInput  = "No PDF files found in the input directory."
	msgOverflow = "error, toc is bigger than one page"
	msgSuccess  = "Successfully combined PDFs into '%s'\n"
)

// runMain parses args, runs the command and reports the outcome.
// It returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		return report(fmt.Errorf("%w: %v", ErrUsage, err), env)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "pdfcat %s\n", Version)
		return ExitSuccess
	}

	return report(run(ctx, positional, flags, env), env)
}

// run combines the input directory into the output file.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) != 2 {
		return fmt.Errorf("%w: expected <input_directory> <output_file>, got %d argument(s)", ErrUsage, len(positional))
	}
	inputDir, outputPath := positional[0], positional[1]

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeout(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(env, flags.common)

	opts := []pdfcat.Option{
		pdfcat.WithRenderer(cfg.Renderer),
		pdfcat.WithBookmarks(cfg.Bookmarks),
		pdfcat.WithTimeout(timeout),
		pdfcat.WithLogger(logger),
	}
	if cfg.TOC.Title != "" {
		opts = append(opts, pdfcat.WithTOCTitle(cfg.TOC.Title))
	}

	assembler, err := pdfcat.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = assembler.Close() }()

	start := env.Now()
	result, err := assembler.AssembleFile(ctx, inputDir, outputPath)
	if err != nil {
		return err
	}

	logger.Debug("done",
		"documents", len(result.Entries),
		"pages", result.Pages,
		"elapsed", env.Now().Sub(start).Round(time.Millisecond))

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, msgSuccess, outputPath)
	}
	return nil
}

// loadConfig loads the config named by --config, or by PDFCAT_CONFIG when
// the flag is unset. No name means no file.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.assemble.renderer != "" {
		cfg.Renderer = flags.assemble.renderer
	}
	if flags.assemble.timeout != "" {
		cfg.Timeout = flags.assemble.timeout
	}
	if flags.assemble.bookmarks {
		cfg.Bookmarks = true
	}
	if flags.assemble.tocTitle != "" {
		cfg.TOC.Title = flags.assemble.tocTitle
	}
}

// resolveTimeout returns the configured render timeout, or the default.
func resolveTimeout(cfg *config.Config) (time.Duration, error) {
	d, err := cfg.TimeoutDuration()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}
	if d == 0 {
		return pdfcat.DefaultTimeout, nil
	}
	return d, nil
}

// newLogger writes progress to stderr: Debug with --verbose, Error with --quiet.
func newLogger(env *Environment, flags commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case flags.quiet:
		level = slog.LevelError
	case flags.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}

// report prints the outcome of a run and returns its exit code.
func report(err error, env *Environment) int {
	switch {
	case err == nil:
	case errors.Is(err, pdfcat.ErrNoInput):
		fmt.Fprintln(env.Stdout, msgNoInput)
	case errors.Is(err, pdfcat.ErrTOCOverflow):
		fmt.Fprintf(env.Stderr, "%s%s\n", msgOverflow, hints.ForTOCOverflow(pdfcat.MaxTOCEntries))
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
	default:
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns the hint for errors that do not carry one already.
func hintFor(err error) string {
	switch {
	case errors.Is(err, pdfcat.ErrUnknownRenderer):
		return hints.ForRenderer(pdfcat.RendererNames())
	case errors.Is(err, pdfcat.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
