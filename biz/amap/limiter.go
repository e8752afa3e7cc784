/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package amap

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	defaultBurst       = 3
	defaultConcurrency = 3
	defaultWindow      = time.Second
)

// Limiter gates every request to the amap open platform: at most `burst`
// request starts per sliding window and at most `concurrency` in-flight
// requests. It never rejects, it only delays; HTTP-level failures of the
// gated call propagate to the caller untouched.
//
// The rate gate deliberately sleeps a full window when it finds the window
// occupied instead of computing the exact remaining wait. The achieved
// throughput stays at or below burst/window either way, and the coarse sleep
// keeps the admission logic trivial to reason about.
type Limiter struct {
	window      time.Duration
	burst       int
	concurrency int

	mu     sync.Mutex
	stamps []time.Time

	sem   *semaphore.Weighted
	sleep func(time.Duration)
}

// NewLimiter returns a limiter with the amap free-tier budget:
// 3 requests per second, 3 concurrent requests.
func NewLimiter() *Limiter {
	return newLimiter(defaultWindow, defaultBurst, defaultConcurrency)
}

func newLimiter(window time.Duration, burst, concurrency int) *Limiter {
	return &Limiter{
		window:      window,
		burst:       burst,
		concurrency: concurrency,
		sem:         semaphore.NewWeighted(int64(concurrency)),
		sleep:       time.Sleep,
	}
}

// prune drops timestamps that left the sliding window. Caller holds mu.
func (l *Limiter) prune(now time.Time) {
	kept := l.stamps[:0]
	for _, ts := range l.stamps {
		if now.Sub(ts) < l.window {
			kept = append(kept, ts)
		}
	}
	l.stamps = kept
}

// waitTurn is the rate gate: it blocks until the current request may start
// and records its start timestamp. The lock is held across the sleep so
// admissions stay serialized while the window drains.
func (l *Limiter) waitTurn() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(time.Now())
	if len(l.stamps) >= l.burst {
		l.sleep(l.window)
		l.prune(time.Now())
	}
	l.stamps = append(l.stamps, time.Now())
}

// Execute runs fn under both gates. The concurrency permit is released on
// every exit path. A canceled context aborts the wait for a permit; the rate
// gate itself is not cancelable, matching its bounded one-window delay.
func (l *Limiter) Execute(ctx context.Context, fn func() error) error {
	l.waitTurn()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)

	return fn()
}
