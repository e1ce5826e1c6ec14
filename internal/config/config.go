// Package config loads the handful of environment-driven settings that
// govern the external-tool boundaries of the pipeline (the Alloy analyzer
// subprocess, a LaTeX engine, and an optional library-registry HTTP lookup).
// Nothing in the core analysis passes reads the environment directly; it is
// all funneled through this package so callers can override a single .env
// file in tests.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the verification and LaTeX drivers need.
type Config struct {
	AlloyPath       string
	AlloyTimeout    time.Duration
	LatexEngine     string
	LatexTimeout    time.Duration
	RegistryURL     string
	RegistryTimeout time.Duration
}

// Load reads a .env file in the working directory if present (ignoring a
// missing file, since the environment may already be fully populated by the
// caller's process) and then builds a Config from environment variables,
// falling back to the defaults mandated by the resource model.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AlloyPath:       getenv("YUHO_ALLOY_PATH", "alloy"),
		AlloyTimeout:    getenvSeconds("YUHO_ALLOY_TIMEOUT_SECONDS", 30),
		LatexEngine:     getenv("YUHO_LATEX_ENGINE", "pdflatex"),
		LatexTimeout:    getenvSeconds("YUHO_LATEX_TIMEOUT_SECONDS", 60),
		RegistryURL:     getenv("YUHO_REGISTRY_URL", ""),
		RegistryTimeout: getenvSeconds("YUHO_REGISTRY_TIMEOUT_SECONDS", 30),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvSeconds(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
