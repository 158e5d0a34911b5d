// Package probe runs startup checks before the server accepts traffic.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// checkTimeout bounds a single check.
const checkTimeout = 5 * time.Second

// CheckFunc performs one health check, returning nil on success.
type CheckFunc func(ctx context.Context) error

// Probe is a single startup check. A failing critical probe prevents
// application startup; non-critical failures are logged and tolerated.
type Probe struct {
	Name     string
	Check    CheckFunc
	Critical bool
}

// Result holds the outcome of a single probe.
type Result struct {
	Probe    Probe
	Error    error
	Duration time.Duration
}

// Run executes the probes in order. Each check gets its own bounded
// timeout so a hung check cannot stall startup indefinitely.
func Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, len(probes))

	for i, p := range probes {
		start := time.Now()

		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := p.Check(checkCtx)
		cancel()

		results[i] = Result{
			Probe:    p,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	return results
}

// AnalyzeResults logs every result and returns a combined error if any
// critical probe failed.
func AnalyzeResults(results []Result) error {
	var criticalErrors []error

	slog.Info("Startup Checks Summary")

	for _, r := range results {
		status := "PASS"
		if r.Error != nil {
			status = "FAIL"
		}

		msg := fmt.Sprintf("[%s] %-20s (%v)", status, r.Probe.Name, r.Duration.Round(time.Millisecond))

		if r.Error != nil {
			slog.Error(msg, "error", r.Error)
			if r.Probe.Critical {
				criticalErrors = append(criticalErrors, fmt.Errorf("%s: %w", r.Probe.Name, r.Error))
			}
		} else {
			slog.Info(msg)
		}
	}

	if len(criticalErrors) > 0 {
		return errors.Join(criticalErrors...)
	}

	return nil
}
