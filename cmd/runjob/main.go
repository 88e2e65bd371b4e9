// Command runjob runs one background job to completion and exits. It lets an
// external scheduler (cron, a Kubernetes CronJob) drive a job whose
// in-process schedule is disabled.
//
// Exit codes: 0 = success, 1 = setup error or job failure, 2 = usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/app"
	"github.com/heartmarshall/zakat-tracker/internal/config"
	"github.com/heartmarshall/zakat-tracker/internal/jobs"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.PathEnv), "path to the YAML config file")
	job := flag.String("job", app.JobCleanup, "job to run: "+fmt.Sprint(app.JobNames()))
	timeout := flag.Duration("timeout", 30*time.Minute, "abort the run after this long")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("runjob: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	stats, err := a.Jobs.RunOnce(ctx, *job)
	switch {
	case errors.Is(err, jobs.ErrUnknownJob):
		fmt.Fprintf(os.Stderr, "runjob: unknown job %q, want one of %v\n", *job, app.JobNames())
		a.Close()
		os.Exit(2)
	case err != nil:
		a.Close()
		os.Exit(1)
	}

	logger.Info("runjob completed",
		slog.String("job", *job),
		slog.Int("processed", stats.Processed),
		slog.Int("failed", stats.Failed),
		slog.Int("skipped", stats.Skipped),
	)
}
