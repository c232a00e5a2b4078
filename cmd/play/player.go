package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bondify-be/internal/bootstrap"
	"bondify-be/internal/catalog"
	"bondify-be/internal/deck"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/progress"
	"bondify-be/internal/repository/contract"
	"bondify-be/internal/repository/implementation"
	"bondify-be/internal/repository/memory"
	"bondify-be/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const redisPrefix = "bondify:progress:"

func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".bondify")
	return dir, os.MkdirAll(dir, 0o755)
}

func openCatalog() (tui.Catalog, error) {
	if apiURL != "" {
		return catalog.NewAPISource(apiURL), nil
	}
	b, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return catalog.NewBundleSource(b), nil
}

func openLogger() (*logger.ZapLogger, error) {
	path := logFile
	if path == "" {
		dir, err := dataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "play.log")
	}
	return logger.NewIsolatedLogger(path), nil
}

// openStore returns the progress store and a function releasing it.
func openStore(log logger.ILogger) (deck.ProgressStore, io.Closer, error) {
	var repo contract.ProgressRepository
	var closer io.Closer = nopCloser{}

	switch storeKind {
	case "memory":
		repo = memory.NewProgressRepository()
	case "redis":
		rdb := bootstrap.NewRedisClient(os.Getenv("REDIS_URL"), log)
		if rdb == nil {
			return nil, nil, fmt.Errorf("redis store needs a reachable REDIS_URL")
		}
		repo = implementation.NewProgressRedisRepository(rdb, redisPrefix)
		closer = rdb
	case "local", "":
		path := dbPath
		if path == "" {
			dir, err := dataDir()
			if err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, "progress.db")
		}
		local, err := implementation.OpenProgressSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		repo = local
		closer = local
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want local, memory or redis)", storeKind)
	}

	return progress.NewStore(repo), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func runPlayer(_ context.Context, category string) error {
	log, err := openLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := openCatalog()
	if err != nil {
		return err
	}

	store, closer, err := openStore(log)
	if err != nil {
		return err
	}
	defer closer.Close()

	restore := deck.RestoreProgress
	if fresh {
		restore = deck.ResetOnOpen
	}

	return tui.Run(tui.Options{
		Catalog:  cat,
		Store:    store,
		Restore:  restore,
		Logger:   log,
		Category: category,
	})
}

func listDecks(cmd *cobra.Command, _ []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	categories, err := cat.Categories(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range categories {
		name := lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(deck.ThemeFor(c.ID).Style().Accent)).
			Render(fmt.Sprintf("%-12s", c.ID))
		line := fmt.Sprintf("%s %s: %s", name, c.Name, c.Subtitle)
		if c.IsPremium {
			line += " [premium]"
		}
		fmt.Fprintln(out, strings.TrimSpace(line))
	}
	return nil
}
