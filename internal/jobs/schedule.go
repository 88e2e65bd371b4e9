package jobs

import (
	"fmt"
	"strings"
	"time"
)

// ParseSchedule converts a schedule expression into a run interval.
// Accepted forms: "@hourly", "@daily", "@every <duration>" and a bare Go
// duration such as "15m".
func ParseSchedule(expr string) (time.Duration, error) {
	expr = strings.TrimSpace(expr)

	var (
		d   time.Duration
		err error
	)
	switch {
	case expr == "@hourly":
		d = time.Hour
	case expr == "@daily":
		d = 24 * time.Hour
	case strings.HasPrefix(expr, "@every "):
		d, err = time.ParseDuration(strings.TrimSpace(strings.TrimPrefix(expr, "@every ")))
	case strings.HasPrefix(expr, "@"):
		return 0, fmt.Errorf("schedule %q: unknown descriptor", expr)
	default:
		d, err = time.ParseDuration(expr)
	}
	if err != nil {
		return 0, fmt.Errorf("schedule %q: %w", expr, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("schedule %q: interval must be positive", expr)
	}
	return d, nil
}
