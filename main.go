package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/threadiverse/temi/app"
	"github.com/threadiverse/temi/infra/config"
	"github.com/threadiverse/temi/infra/lemmy"
	"github.com/threadiverse/temi/infra/media"
	"github.com/threadiverse/temi/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliReplay
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	case "--replay":
		if len(args) < 2 || args[1] == "" {
			return cliInvalid, "--replay needs a dump directory"
		}
		return cliReplay, args[1]
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return strings.Join([]string{
		"Usage: temi [--version|-version|-v] [--help|-h] [--replay DIR]",
		"",
		"Browse a Lemmy instance from the terminal, read-only.",
		"Configured through the environment (or a local .env file):",
		"  TEMI_INSTANCE, TEMI_SORT, TEMI_PAGE_LIMIT, TEMI_STATE,",
		"  TEMI_CACHE, TEMI_LOG, TEMI_DUMP_DIR, TEMI_OPENER",
	}, "\n")
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, nil)), f, nil
}

func main() {
	mode, arg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("temi %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", arg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Persisted UI state wins over the configured defaults.
	uiState, _ := config.LoadUIState(cfg.StatePath)
	sortLabel := cfg.Sort
	if uiState.Sort != "" {
		sortLabel = uiState.Sort
	}

	logger, logCloser, err := newLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	// 2. Build services (concrete types satisfy app.* interfaces).
	var (
		posts    app.PostService
		comments app.CommentService
	)
	if mode == cliReplay {
		src := lemmy.NewFileSource(arg)
		posts, comments = src, src
	} else {
		client := lemmy.NewClient(cfg.InstanceURL, logger, cfg.DumpDir)
		posts = lemmy.NewPostService(client, sortLabel, cfg.PageLimit)
		comments = lemmy.NewCommentService(client)
	}
	downloader := media.NewDownloader(cfg.CachePath, logger)
	opener := media.NewEnvOpener(cfg.Opener)

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:      posts,
		Comments:   comments,
		Downloader: downloader,
		Opener:     opener,
		Instance:   cfg.InstanceURL,
		SortLabel:  sortLabel,
		StartPage:  uiState.Page,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "temi: %v\n", err)
		os.Exit(1)
	}

	// 5. Persist where we ended up for the next run.
	if a, ok := final.(tui.App); ok {
		st := config.UIState{Sort: sortLabel, Page: a.Page()}
		if err := config.SaveUIState(cfg.StatePath, st); err != nil {
			logger.Warn("saving ui state", "error", err)
		}
	}
}
