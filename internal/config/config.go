package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pennaedit/penna/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envDir        = "PENNA_DIR"
	envShowFooter = "PENNA_FOOTER"
	envVerbose    = "PENNA_VERBOSE"
	envTrace      = "PENNA_TRACE"
	envLogFile    = "PENNA_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The first
// positional argument, when present, is the file to open at startup.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("penna", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dir := fs.String("dir", envOrDefault(env, envDir, ""), "directory the open dialog starts browsing in (defaults to the working directory)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show messages for successful opens and saves")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("at most one file may be given (got %d)", len(positional))
	}
	file := ""
	if len(positional) == 1 {
		file = positional[0]
	}

	cfg := Config{
		App: app.Config{
			File:       file,
			Dir:        *dir,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"file":    file,
			"dir":     *dir,
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Dir != "" {
		info, err := os.Stat(cfg.App.Dir)
		if err != nil {
			return fmt.Errorf("dir %q: %w", cfg.App.Dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("dir %q is not a directory", cfg.App.Dir)
		}
	}
	return nil
}
