package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrIdle is returned when the input stays silent longer than IdleTimeout
var ErrIdle = errors.New("no data from board")

// defaultPollInterval is the pause after an empty read
const defaultPollInterval = 10 * time.Millisecond

// Options control a probe run
type Options struct {
	// Samples is the number of reports to collect
	Samples int
	// StopOnEOF ends the run at io.EOF. Serial ports with a read timeout
	// report EOF on every idle timeout, so the CLI leaves this off.
	StopOnEOF bool
	// IdleTimeout ends the run with ErrIdle once no bytes have arrived for
	// this long. Zero waits forever. Only used without StopOnEOF.
	IdleTimeout time.Duration
	// PollInterval is the pause after a read that returned nothing.
	// Defaults to 10ms.
	PollInterval time.Duration
	// Now returns the host time a line was received. Defaults to time.Now.
	Now func() time.Time
}

// Run reads report lines from r until opts.Samples reports have been
// collected, ctx is done, or (with StopOnEOF) the input ends. Whatever was
// collected is returned as an estimate.
func Run(ctx context.Context, r io.Reader, opts Options) (Estimate, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	var est Estimator
	reader := bufio.NewReader(r)
	var pending strings.Builder
	var idleSince time.Time

	for est.Samples() < opts.Samples {
		if err := ctx.Err(); err != nil {
			return interrupted(&est, err)
		}

		chunk, err := reader.ReadString('\n')
		pending.WriteString(chunk)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				e, _ := est.Estimate()
				return e, fmt.Errorf("reading reports: %w", err)
			}
			if opts.StopOnEOF {
				handleLine(&est, strings.TrimSpace(pending.String()), now())
				return est.Estimate()
			}

			at := now()
			if chunk != "" || idleSince.IsZero() {
				idleSince = at
			} else if opts.IdleTimeout > 0 && at.Sub(idleSince) > opts.IdleTimeout {
				e, _ := est.Estimate()
				return e, fmt.Errorf("%w for %v", ErrIdle, at.Sub(idleSince))
			}
			if err := sleepCtx(ctx, poll); err != nil {
				return interrupted(&est, err)
			}
			continue
		}

		idleSince = time.Time{}
		line := strings.TrimSpace(pending.String())
		pending.Reset()
		handleLine(&est, line, now())
	}

	return est.Estimate()
}

func handleLine(est *Estimator, line string, at time.Time) {
	if line == "" {
		return
	}
	report, err := ParseReport(line)
	if errors.Is(err, ErrNotReport) {
		log.Debugf("board: %s", line)
		return
	}
	if err != nil {
		log.Warningf("skipping bad report %q: %v", line, err)
		return
	}
	if err := est.Add(report, at); err != nil {
		log.Warning(err)
		return
	}
	log.Debugf("report seq=%d cycles=%d", report.Seq, report.Cycles)
}

// sleepCtx pauses for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// interrupted returns the estimate collected before ctx ended, or the
// context error if there is not enough to estimate from
func interrupted(est *Estimator, cause error) (Estimate, error) {
	e, err := est.Estimate()
	if err != nil {
		return e, cause
	}
	return e, nil
}
