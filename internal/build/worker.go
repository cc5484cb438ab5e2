// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"staticcms/internal/models"
)

// Runner performs a site build.
type Runner interface {
	Run(ctx context.Context, job Job) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, job Job) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, job Job) error { return f(ctx, job) }

// CommandRunner runs an external generator command. The job id and reason
// are passed in the BUILD_JOB_ID and BUILD_REASON environment variables.
type CommandRunner struct {
	Command string
	Args    []string
	Dir     string
}

// NewCommandRunner splits a command line on whitespace.
func NewCommandRunner(cmdline, dir string) (*CommandRunner, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil, errors.New("build command is empty")
	}
	return &CommandRunner{Command: fields[0], Args: fields[1:], Dir: dir}, nil
}

// Run executes the command and returns its combined output on failure.
func (r *CommandRunner) Run(ctx context.Context, job Job) error {
	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	cmd.Dir = r.Dir
	cmd.Env = append(cmd.Environ(), "BUILD_JOB_ID="+job.ID, "BUILD_REASON="+job.Reason)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w: %s", r.Command, err, strings.TrimSpace(out.String()))
	}
	return nil
}

// LogRunner only logs the request. Used when no generator is configured.
var LogRunner = RunnerFunc(func(_ context.Context, job Job) error {
	slog.Info("site build requested, no build command configured", "job", job.ID, "reason", job.Reason)
	return nil
})

// Worker consumes the queue and runs builds one at a time.
type Worker struct {
	queue  *Queue
	runner Runner
	poll   time.Duration
}

// NewWorker returns a worker that blocks up to poll waiting for jobs.
func NewWorker(q *Queue, r Runner, poll time.Duration) *Worker {
	if poll <= 0 {
		poll = 5 * time.Second
	}
	return &Worker{queue: q, runner: r, poll: poll}
}

// Run processes jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	slog.Info("build worker started")
	for {
		if ctx.Err() != nil {
			slog.Info("build worker stopped")
			return
		}
		if _, err := w.Step(ctx); err != nil && ctx.Err() == nil {
			slog.Error("build worker step failed", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(w.poll):
			}
		}
	}
}

// Step waits for one job, coalesces any others queued behind it and runs a
// single build. It reports whether a build ran.
func (w *Worker) Step(ctx context.Context) (bool, error) {
	job, ok, err := w.queue.Dequeue(ctx, w.poll)
	if err != nil || !ok {
		return false, err
	}
	extra, err := w.queue.Drain(ctx)
	if err != nil {
		return false, err
	}

	st := Status{JobID: job.ID, Coalesced: extra, StartedAt: time.Now().UTC()}
	runErr := w.runner.Run(ctx, job)
	st.FinishedAt = time.Now().UTC()
	if runErr != nil {
		st.Status = models.BuildError
		st.Message = runErr.Error()
		slog.Error("site build failed", "job", job.ID, "error", runErr)
	} else {
		st.Status = models.BuildSuccess
		st.Message = "Site generated successfully"
		slog.Info("site build finished", "job", job.ID, "coalesced", extra,
			"duration", st.FinishedAt.Sub(st.StartedAt))
	}

	if err := w.queue.SetLast(ctx, st); err != nil {
		return true, err
	}
	return true, nil
}
