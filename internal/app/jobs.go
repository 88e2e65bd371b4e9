package app

import (
	"context"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/config"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/internal/jobs"
)

// Job names exposed on the ops endpoints.
const (
	JobHawl      = "hawl-recalculation"
	JobReminders = "reminder-generation"
	JobSummaries = "summary-regeneration"
	JobCleanup   = "metric-cleanup"
)

type batchHandler = func(ctx context.Context) (domain.BatchStats, error)

// JobHandlers are the entry points the orchestrator schedules.
type JobHandlers struct {
	Hawl      batchHandler
	Reminders batchHandler
	Summaries batchHandler
	Cleanup   batchHandler
}

// BuildJobs returns the job table. Offsets stagger the first runs so the
// batches do not contend for the pool at startup.
func BuildJobs(cfg config.JobsConfig, h JobHandlers) []jobs.Job {
	return []jobs.Job{
		{Name: JobHawl, Schedule: cfg.HawlSchedule, Enabled: cfg.HawlEnabled, Handler: h.Hawl},
		{Name: JobReminders, Schedule: cfg.ReminderSchedule, Offset: 2 * time.Minute, Enabled: cfg.ReminderEnabled, Handler: h.Reminders},
		{Name: JobSummaries, Schedule: cfg.SummarySchedule, Offset: 4 * time.Minute, Enabled: cfg.SummaryEnabled, Handler: h.Summaries},
		{Name: JobCleanup, Schedule: cfg.CleanupSchedule, Offset: 6 * time.Minute, Enabled: cfg.CleanupEnabled, Handler: h.Cleanup},
	}
}

// JobNames lists the job names in schedule order.
func JobNames() []string {
	return []string{JobHawl, JobReminders, JobSummaries, JobCleanup}
}
