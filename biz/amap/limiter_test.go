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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBurstNeedsNoSleep(t *testing.T) {
	l := newLimiter(time.Second, 3, 3)
	var slept []time.Duration
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 3; i++ {
		err := l.Execute(context.Background(), func() error { return nil })
		require.NoError(t, err)
	}
	assert.Empty(t, slept)
}

func TestLimiterSleepsOneWindowWhenFull(t *testing.T) {
	l := newLimiter(time.Second, 3, 3)
	var slept []time.Duration
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 5; i++ {
		err := l.Execute(context.Background(), func() error { return nil })
		require.NoError(t, err)
	}
	// calls 4 and 5 each find the window occupied
	assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
}

func TestLimiterWindowDrains(t *testing.T) {
	l := newLimiter(10*time.Millisecond, 1, 1)
	var slept []time.Duration
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	require.NoError(t, l.Execute(context.Background(), func() error { return nil }))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, l.Execute(context.Background(), func() error { return nil }))
	assert.Empty(t, slept)
}

func TestLimiterConcurrencyCap(t *testing.T) {
	// burst large enough that only the semaphore gates
	l := newLimiter(time.Second, 100, 3)

	var inFlight, maxSeen int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Execute(context.Background(), func() error {
				cur := atomic.AddInt64(&inFlight, 1)
				for {
					seen := atomic.LoadInt64(&maxSeen)
					if cur <= seen || atomic.CompareAndSwapInt64(&maxSeen, seen, cur) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt64(&inFlight, -1)
				return nil
			})
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt64(&maxSeen), int64(3))
}

func TestLimiterCanceledContext(t *testing.T) {
	l := newLimiter(time.Second, 100, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = l.Execute(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Execute(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(release)
}

func TestLimiterPropagatesCallError(t *testing.T) {
	l := NewLimiter()
	l.sleep = func(time.Duration) {}
	wantErr := assert.AnError
	err := l.Execute(context.Background(), func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}
