// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
)

// periodically log the operations completed by all workers
type progressReporter struct {
	log      *logger.L
	total    *counter.Counter
	expected uint64
	interval time.Duration
}

func (p *progressReporter) Run(args interface{}, shutdown <-chan struct{}) {

	p.log.Info("starting…")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	previous := uint64(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := p.total.Uint64()
			p.log.Infof("operations: %d of %d  rate: %.0f/s", n, p.expected, float64(n-previous)/p.interval.Seconds())
			previous = n
		}
	}

	p.log.Infof("stopped at: %d operations", p.total.Uint64())
}
