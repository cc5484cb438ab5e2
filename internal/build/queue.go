// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package build queues static-site builds. Saving content pushes a job onto
// a Valkey list; a worker pops jobs and hands them to a Runner. Jobs that
// pile up while a build runs are coalesced into a single run.
package build

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// QueueKey is the Valkey list holding pending jobs.
	QueueKey = "build:queue"
	// LastKey holds the JSON status of the most recent run.
	LastKey = "build:last"
)

// Job is one build request.
type Job struct {
	ID          string    `json:"id"`
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// Status records the outcome of a run.
type Status struct {
	JobID      string    `json:"job_id"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	Coalesced  int       `json:"coalesced"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Queue is a FIFO of build jobs stored in a Valkey list.
type Queue struct {
	client *redis.Client
}

// NewQueue returns a queue backed by client.
func NewQueue(client *redis.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue pushes a new job and returns it.
func (q *Queue) Enqueue(ctx context.Context, reason string) (Job, error) {
	job := Job{
		ID:          uuid.NewString(),
		Reason:      reason,
		RequestedAt: time.Now().UTC(),
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return Job{}, fmt.Errorf("marshal build job: %w", err)
	}
	if err := q.client.LPush(ctx, QueueKey, raw).Err(); err != nil {
		return Job{}, fmt.Errorf("enqueue build job: %w", err)
	}
	return job, nil
}

// Pending returns the number of queued jobs.
func (q *Queue) Pending(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, QueueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count build jobs: %w", err)
	}
	return n, nil
}

// Dequeue waits up to timeout for the oldest job. ok is false when the
// timeout elapsed with nothing queued.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (job Job, ok bool, err error) {
	res, err := q.client.BRPop(ctx, timeout, QueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return Job{}, false, nil
	}
	if err != nil {
		return Job{}, false, fmt.Errorf("dequeue build job: %w", err)
	}
	// BRPOP answers [key, value].
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return Job{}, false, fmt.Errorf("decode build job: %w", err)
	}
	return job, true, nil
}

// Drain removes every queued job and returns how many there were.
func (q *Queue) Drain(ctx context.Context) (int, error) {
	var n int
	for {
		_, err := q.client.RPop(ctx, QueueKey).Result()
		if errors.Is(err, redis.Nil) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("drain build queue: %w", err)
		}
		n++
	}
}

// SetLast stores the status of the latest run.
func (q *Queue) SetLast(ctx context.Context, st Status) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal build status: %w", err)
	}
	if err := q.client.Set(ctx, LastKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("store build status: %w", err)
	}
	return nil
}

// Last returns the status of the latest run. ok is false before the first run.
func (q *Queue) Last(ctx context.Context) (st Status, ok bool, err error) {
	raw, err := q.client.Get(ctx, LastKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return Status{}, false, nil
	}
	if err != nil {
		return Status{}, false, fmt.Errorf("load build status: %w", err)
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return Status{}, false, fmt.Errorf("decode build status: %w", err)
	}
	return st, true, nil
}
