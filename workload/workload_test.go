// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

const (
	testingDirName = "testing"
	logCategory    = "workload-test"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func newTree(t *testing.T, elementSize int, bufferLimit int) *avl.Tree {
	tree, err := avl.New(elementSize, bufferLimit)
	if nil != err {
		t.Fatalf("new tree error: %s", err)
	}
	return tree
}

func TestGeneratorIsDeterministic(t *testing.T) {
	g1 := workload.NewGenerator(42, 100)
	g2 := workload.NewGenerator(42, 100)
	g3 := workload.NewGenerator(43, 100)

	kinds := map[workload.Kind]int{}
	differ := false
	for i := 0; i < 1000; i += 1 {
		op := g1.Next()
		assert.Equal(t, op, g2.Next(), "streams differ at: %d", i)
		if op != g3.Next() {
			differ = true
		}
		assert.True(t, op.Key < 100, "key out of range: %d", op.Key)
		kinds[op.Kind] += 1
	}
	assert.True(t, differ, "seed ignored")
	assert.Equal(t, 3, len(kinds), "missing operation kinds: %v", kinds)
	assert.Equal(t, "delete", workload.Delete.String(), "kind name")
}

func TestNewValidation(t *testing.T) {
	log := logger.New(logCategory)
	tree := newTree(t, 12, 4)
	reference := workload.NewMemoryReference()
	defer reference.Close()

	good := workload.Configuration{
		ElementSize: 12,
		Operations:  10,
		KeyRange:    10,
	}

	_, err := workload.New(good, tree, reference, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil log")

	bad := good
	bad.ElementSize = 16
	_, err = workload.New(bad, tree, reference, log)
	assert.Equal(t, fault.ErrInvalidElementSize, err, "size mismatch")

	bad = good
	bad.Operations = 0
	_, err = workload.New(bad, tree, reference, log)
	assert.Equal(t, fault.ErrInvalidOperationCount, err, "operations")

	bad = good
	bad.KeyRange = 0
	_, err = workload.New(bad, tree, reference, log)
	assert.Equal(t, fault.ErrInvalidKeyRange, err, "key range")

	bad = good
	bad.Rate = -1
	_, err = workload.New(bad, tree, reference, log)
	assert.Equal(t, fault.ErrInvalidRate, err, "rate")

	_, err = workload.New(good, tree, reference, log)
	assert.Nil(t, err, "valid configuration")
}

func TestRunMemory(t *testing.T) {
	tree := newTree(t, 16, 32)
	reference := workload.NewMemoryReference()
	defer reference.Close()

	config := workload.Configuration{
		ElementSize:   16,
		Operations:    20000,
		KeyRange:      2000,
		Seed:          7,
		CheckInterval: 2500,
	}
	r, err := workload.New(config, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	result, err := r.Run(context.Background())
	assert.Nil(t, err, "run error")
	assert.Equal(t, config.Operations, result.Operations, "operations")
	assert.Equal(t, config.Operations, result.Inserts+result.Overwrites+result.Deletes+result.Missing+result.Lookups, "counters")
	assert.Equal(t, 9, result.Checks, "checks")
	assert.Equal(t, reference.Len(), result.Length, "length")
	assert.Equal(t, tree.Height(), result.Height, "height")
	assert.True(t, result.Statistics.Reused > 0, "buffer never used")
	assert.Equal(t, result.Inserts-result.Deletes, result.Length, "inserts less deletes")
}

func TestRunDatabase(t *testing.T) {
	directory, err := ioutil.TempDir("", "workload")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(directory)

	path := filepath.Join(directory, "reference")
	reference, err := workload.NewDatabaseReference(path)
	assert.Nil(t, err, "open error")

	tree := newTree(t, 8, avl.UnlimitedBuffer)
	config := workload.Configuration{
		ElementSize: 8,
		Operations:  3000,
		KeyRange:    300,
		Seed:        11,
	}
	r, err := workload.New(config, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	result, err := r.Run(context.Background())
	assert.Nil(t, err, "run error")
	assert.Equal(t, 1, result.Checks, "checks")
	assert.Equal(t, reference.Len(), tree.Len(), "length")
	assert.Nil(t, reference.Close(), "close error")

	_, err = workload.NewDatabaseReference(path)
	assert.NotNil(t, err, "existing database reused")
}

func TestRunCancelled(t *testing.T) {
	tree := newTree(t, 8, 0)
	reference := workload.NewMemoryReference()
	defer reference.Close()

	r, err := workload.New(workload.Configuration{
		ElementSize: 8,
		Operations:  100,
		KeyRange:    10,
	}, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := r.Run(ctx)
	assert.Equal(t, context.Canceled, err, "not cancelled")
	assert.Equal(t, 0, result.Operations, "operations")
}

func TestRunRateLimited(t *testing.T) {
	tree := newTree(t, 8, 0)
	reference := workload.NewMemoryReference()
	defer reference.Close()

	progress := counter.Counter(0)
	r, err := workload.New(workload.Configuration{
		ElementSize: 8,
		Operations:  20,
		KeyRange:    10,
		Rate:        10000,
		Progress:    &progress,
	}, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	result, err := r.Run(context.Background())
	assert.Nil(t, err, "run error")
	assert.Equal(t, 20, result.Operations, "operations")
	assert.Equal(t, uint64(20), progress.Uint64(), "progress")
}

func TestRunAllocationFailure(t *testing.T) {
	tree, err := avl.NewWithAllocator(8, 0, avl.NewLimitedAllocator(20))
	assert.Nil(t, err, "new tree error")
	reference := workload.NewMemoryReference()
	defer reference.Close()

	r, err := workload.New(workload.Configuration{
		ElementSize:   8,
		Operations:    5000,
		KeyRange:      100,
		Seed:          5,
		CheckInterval: 100,
	}, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	result, err := r.Run(context.Background())
	assert.Nil(t, err, "run error")
	assert.True(t, result.Failed > 0, "allocator limit never reached")
	assert.True(t, result.Length <= 20, "length: %d exceeds allocator limit", result.Length)
	assert.Equal(t, reference.Len(), result.Length, "length")
}

// drops every write so the tree and reference diverge
type forgetfulReference struct {
	workload.Reference
}

func (forgetfulReference) Put(key []byte, value []byte) error {
	return nil
}

func TestRunDetectsMismatch(t *testing.T) {
	tree := newTree(t, 8, 0)
	reference := forgetfulReference{workload.NewMemoryReference()}
	defer reference.Close()

	r, err := workload.New(workload.Configuration{
		ElementSize: 8,
		Operations:  1000,
		KeyRange:    10,
		Seed:        3,
	}, tree, reference, logger.New(logCategory))
	assert.Nil(t, err, "new error")

	_, err = r.Run(context.Background())
	assert.True(t, fault.ErrMismatchedLookup == err || fault.ErrMismatchedContent == err, "mismatch not detected: %v", err)
}
