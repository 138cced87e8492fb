package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ayanmanna123/sessionwatch/internal/client"
	"github.com/ayanmanna123/sessionwatch/internal/config"
	"github.com/ayanmanna123/sessionwatch/internal/schedule"
	"github.com/ayanmanna123/sessionwatch/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "0.3.0"

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	model := ui.InitialModel(cfg.Location)
	model.SetVersion(appVersion)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	// The list-level refresh timer: re-fetch the session list on the
	// configured cadence and hand each result to the running program.
	source := client.New(cfg.Source)
	refresh := &schedule.Monitor{}
	err = refresh.Start(cfg.Refresh, func(now time.Time) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sessions, err := source.Load(ctx)
		if err != nil {
			log.Printf("refresh: load failed: %v", err)
			p.Send(ui.LoadFailed(err))
			return
		}
		p.Send(ui.SessionsLoaded(sessions, now))
	})
	if err != nil {
		log.Fatal(err)
	}

	teardown := schedule.NewTeardown(5 * time.Second)
	teardown.RegisterMonitor("session-refresh", refresh)

	// Handle signals in a separate goroutine
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		teardown.Execute()
		p.Kill()
	}()

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		teardown.Execute()
		os.Exit(1)
	}
	teardown.Execute()
}
