// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

// samples a shared operation counter until shutdown, recording the
// value seen on exit
type watcher struct {
	total    *counter.Counter
	samples  counter.Counter
	final    uint64
	finished bool
}

func (w *watcher) Run(args interface{}, shutdown <-chan struct{}) {

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			w.samples.Increment()
		}
	}

	w.final = w.total.Uint64()
	w.finished = true
}

func TestStartStop(t *testing.T) {
	total := counter.Counter(0)

	w1 := &watcher{total: &total}
	w2 := &watcher{total: &total}

	p := background.Start(background.Processes{w1, w2}, nil)

	for i := 0; i < 1000; i += 1 {
		total.Increment()
	}

	// both processes must be running before they are stopped
	deadline := time.Now().Add(5 * time.Second)
	for w1.samples.IsZero() || w2.samples.IsZero() {
		if time.Now().After(deadline) {
			t.Fatal("processes did not start")
		}
		time.Sleep(time.Millisecond)
	}

	p.Stop()

	for i, w := range []*watcher{w1, w2} {
		assert.True(t, w.finished, "process: %d did not exit", i)
		assert.Equal(t, uint64(1000), w.final, "process: %d final count", i)
	}

	// a stopped process takes no more samples
	s1 := w1.samples.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, s1, w1.samples.Uint64(), "sampled after stop")
}

func TestStopEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Stop()
}
