package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"server_event_timer/internal/app"
	"server_event_timer/internal/domain/cycle"
	"server_event_timer/internal/domain/region"
	"server_event_timer/internal/infra/cache"
	"server_event_timer/internal/infra/config"
	"server_event_timer/internal/infra/logger"
	"server_event_timer/internal/infra/regions"
	"server_event_timer/internal/infra/scheduler"
	"server_event_timer/internal/infra/selection"
	"server_event_timer/internal/infra/terminal"

	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	for _, warning := range cfg.Warnings {
		mainLogger.Warn(warning)
	}
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Template: %s", cfg.LogLevel, cfg.Environment, cfg.Template)

	table, err := regions.Load(cfg.RegionsFile)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load region table: %v", err)
	}
	mainLogger.WithField("regions", table.IDs()).Info("Region table loaded.")

	scheduleService := app.NewScheduleService(
		table,
		cycle.SystemClock{},
		cache.NewDisplayCache(0, 0),
		app.Options{
			Timing:           cycle.DefaultTiming,
			Template:         cfg.Template,
			LocalOffsetHours: cfg.LocalOffsetHours,
			UpcomingCount:    cfg.UpcomingCount,
		},
		logger.Component("schedule"),
	)

	if cfg.Once {
		renderer := terminal.NewRenderer(os.Stdout, false, cfg.NoColor)
		if cfg.AllRegions {
			err = renderer.RenderAll(scheduleService.SnapshotAll())
		} else {
			err = renderOnce(scheduleService, renderer, table.Resolve(cfg.DefaultRegion))
		}
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not render schedule: %v", err)
		}
		return
	}

	selector := selection.NewSelector(table, cfg.DefaultRegion, logger.Component("selection"))
	renderer := terminal.NewRenderer(os.Stdout, true, cfg.NoColor)
	tickLogger := logger.Component("tick")

	tickScheduler := scheduler.NewTickScheduler(cfg.TickSpec, func() {
		if err := renderOnce(scheduleService, renderer, selector.Current()); err != nil {
			tickLogger.WithError(err).Error("Failed to render schedule")
		}
	}, logger.Component("scheduler"))
	selector.OnChange(func(region.ID) { tickScheduler.Trigger() })

	tickScheduler.Trigger()
	if err := tickScheduler.Start(); err != nil {
		mainLogger.Fatalf("FATAL: Could not start tick scheduler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := selector.Watch(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			mainLogger.WithError(err).Warn("Stopped reading region selections")
		}
	}()

	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down...")
	tickScheduler.Stop()
	mainLogger.Info("Shut down gracefully.")
}

func renderOnce(svc *app.ScheduleService, renderer *terminal.Renderer, id region.ID) error {
	view, err := svc.Snapshot(id)
	if err != nil {
		return err
	}
	logger.Component("tick").Debug(view.Headline())
	return renderer.Render(view)
}
