// Command campusd runs the interactive campus-life simulation in the
// terminal. It takes no arguments; configuration comes from the
// environment.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/JimenezCarmona8063/MYXITECH/internal/config"
	"github.com/JimenezCarmona8063/MYXITECH/internal/engine"
	"github.com/JimenezCarmona8063/MYXITECH/internal/logger"
	"github.com/JimenezCarmona8063/MYXITECH/internal/storage"
)

func main() {
	cfg := config.Load()

	// The TUI owns stdout, so logs go to a file.
	logW, err := os.OpenFile("campusd.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logW.Close()
	log := logger.Setup(cfg, logW)

	sim, err := engine.New(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid campus configuration: %v\n", err)
		os.Exit(1)
	}

	var store storage.Storage
	if cfg.RedisURL != "" {
		rs, err := storage.NewRedisStore(cfg.RedisURL, cfg.SessionTTL, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid REDIS_URL: %v\n", err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := rs.WaitForConnection(ctx); err != nil {
			cancel()
			fmt.Fprintf(os.Stderr, "Could not reach Redis: %v\n", err)
			os.Exit(1)
		}
		cancel()
		defer rs.Close()
		store = rs
	}

	sessionID := uuid.New()
	resumed := false
	if cfg.SessionID != "" {
		id, err := uuid.Parse(cfg.SessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid SESSION_ID: %v\n", err)
			os.Exit(1)
		}
		sessionID = id
		if store != nil {
			snap, err := store.LoadSession(context.Background(), id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load session: %v\n", err)
				os.Exit(1)
			}
			if snap != nil {
				if err := sim.RestoreSnapshot(snap); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
					os.Exit(1)
				}
				resumed = true
			}
		}
	}
	log = logger.WithSession(log, sessionID.String())
	log.Info("session starting", "resumed", resumed)

	p := tea.NewProgram(NewUI(cfg, sim, log, resumed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	if store != nil && sim.Player() != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.SaveSession(ctx, sessionID, sim.Snapshot(sessionID)); err != nil {
			log.Error("failed to save session", "error", err)
		} else {
			fmt.Printf("Session saved. Resume with SESSION_ID=%s\n", sessionID)
		}
	}
	log.Info("session ended")
}
