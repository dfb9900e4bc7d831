package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	InstanceURL string // e.g. "https://voyager.lemmy.ml"
	Sort        string // Post listing sort type (Hot, New, Active, ...)
	PageLimit   uint64 // Posts requested per listing page
	StatePath   string // UI state JSON file
	CachePath   string // Image cache directory
	LogPath     string // Structured log file; empty leaves logging off
	DumpDir     string // API response dump directory; empty leaves dumps off
	Opener      string // External opener command; empty means platform default
}

// Load reads configuration from environment variables, after loading a
// local .env file when one exists.
//
//	TEMI_INSTANCE   — Lemmy instance URL (default: https://voyager.lemmy.ml)
//	TEMI_SORT       — post listing sort (default: "Hot")
//	TEMI_PAGE_LIMIT — posts per listing page (default: 20)
//	TEMI_STATE      — UI state file (default: ~/.config/temi/state.json)
//	TEMI_CACHE      — image cache dir (default: ~/.cache/temi)
//	TEMI_LOG        — log file; unset disables logging
//	TEMI_DUMP_DIR   — API response dump dir; unset disables dumps
//	TEMI_OPENER     — external opener command (default: xdg-open / open)
func Load() (Config, error) {
	_ = godotenv.Load()

	instance := os.Getenv("TEMI_INSTANCE")
	if instance == "" {
		instance = "https://voyager.lemmy.ml"
	}
	parsed, err := url.Parse(instance)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid TEMI_INSTANCE: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid TEMI_INSTANCE: only https is allowed")
	}
	instance = strings.TrimRight(parsed.String(), "/")

	sortType := os.Getenv("TEMI_SORT")
	if sortType == "" {
		sortType = "Hot"
	}

	limit := uint64(20)
	if raw := os.Getenv("TEMI_PAGE_LIMIT"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return Config{}, fmt.Errorf("invalid TEMI_PAGE_LIMIT: must be a positive integer")
		}
	}

	statePath := os.Getenv("TEMI_STATE")
	cachePath := os.Getenv("TEMI_CACHE")
	if statePath == "" || cachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if statePath == "" {
			statePath = filepath.Join(home, ".config", "temi", "state.json")
		}
		if cachePath == "" {
			cachePath = filepath.Join(home, ".cache", "temi")
		}
	}

	return Config{
		InstanceURL: instance,
		Sort:        sortType,
		PageLimit:   limit,
		StatePath:   statePath,
		CachePath:   cachePath,
		LogPath:     os.Getenv("TEMI_LOG"),
		DumpDir:     os.Getenv("TEMI_DUMP_DIR"),
		Opener:      os.Getenv("TEMI_OPENER"),
	}, nil
}
