package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-pdfcat/internal/config"
)

// envPrefix marks the environment variables read by pdfcat.
const envPrefix = "PDFCAT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // PDFCAT_CONFIG: config file name or path
	Renderer   string        // PDFCAT_RENDERER: fpdf or chrome
	Timeout    time.Duration // PDFCAT_TIMEOUT: chrome render timeout
}

// knownEnvVars lists valid PDFCAT_* environment variables.
var knownEnvVars = map[string]bool{
	"PDFCAT_CONFIG":   true,
	"PDFCAT_RENDERER": true,
	"PDFCAT_TIMEOUT":  true,
}

// loadEnvConfig reads configuration from environment variables.
// A malformed or non-positive PDFCAT_TIMEOUT is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PDFCAT_CONFIG"),
		Renderer:   os.Getenv("PDFCAT_RENDERER"),
	}

	if timeout := os.Getenv("PDFCAT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for every unrecognized PDFCAT_* variable.
// Helps catch typos like PDFCAT_RENDER instead of PDFCAT_RENDERER.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig copies environment values over the config file values.
// Flags are merged afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Renderer != "" {
		cfg.Renderer = env.Renderer
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout.String()
	}
}
