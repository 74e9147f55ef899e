// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/workload"
)

const (
	workerLoggerPrefix   = "worker"
	progressLoggerPrefix = "progress"
)

// run all workers, each with its own tree and reference
//
// the first error cancels the remaining workers
func stress(ctx context.Context, config *Configuration, log *logger.L) ([]workload.Result, error) {
	results := make([]workload.Result, config.Workers)

	progress := counter.Counter(0)
	if config.ReportInterval > 0 {
		reporter := &progressReporter{
			log:      logger.New(progressLoggerPrefix),
			total:    &progress,
			expected: uint64(config.Workers) * uint64(config.Operations),
			interval: time.Duration(config.ReportInterval) * time.Second,
		}
		processes := background.Start(background.Processes{reporter}, nil)
		defer processes.Stop()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < config.Workers; i += 1 {
		i := i
		g.Go(func() error {
			result, err := runWorker(ctx, i, config, &progress)
			results[i] = result
			if nil != err {
				log.Errorf("worker: %d  error: %s", i, err)
			}
			return err
		})
	}
	err := g.Wait()
	return results, err
}

func runWorker(ctx context.Context, n int, config *Configuration, progress *counter.Counter) (workload.Result, error) {
	log := logger.New(fmt.Sprintf("%s-%d", workerLoggerPrefix, n))
	defer log.Flush()

	var allocator avl.Allocator = avl.HeapAllocator{}
	if config.NodeLimit > 0 {
		allocator = avl.NewLimitedAllocator(config.NodeLimit)
	}
	tree, err := avl.NewWithAllocator(config.ElementSize, config.BufferLimit, allocator)
	if nil != err {
		return workload.Result{}, err
	}
	tree.SetLog(log)
	defer tree.Free()

	reference, err := openReference(n, config)
	if nil != err {
		return workload.Result{}, err
	}
	defer reference.Close()

	runner, err := workload.New(workload.Configuration{
		ElementSize:   config.ElementSize,
		Operations:    config.Operations,
		KeyRange:      config.KeyRange,
		Seed:          config.Seed + int64(n),
		CheckInterval: config.CheckInterval,
		Rate:          config.Rate,
		Progress:      progress,
	}, tree, reference, log)
	if nil != err {
		return workload.Result{}, err
	}
	return runner.Run(ctx)
}

// a database reference always starts from an empty directory
func openReference(n int, config *Configuration) (workload.Reference, error) {
	if workload.DatabaseReference != config.Reference {
		return workload.NewMemoryReference(), nil
	}
	directory := filepath.Join(config.DataDirectory, fmt.Sprintf("reference-%d.leveldb", n))
	if err := os.RemoveAll(directory); nil != err {
		return nil, err
	}
	return workload.NewDatabaseReference(directory)
}
