// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"bytes"
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
)

// Configuration - parameters of one run
type Configuration struct {
	ElementSize   int     // tree element size, at least element.Uint64Size
	Operations    int     // number of operations to perform
	KeyRange      uint64  // keys are drawn from [0, KeyRange)
	Seed          int64   // generator seed
	CheckInterval int     // full comparison every n operations, zero: only at the end
	Rate          float64 // maximum operations per second, zero: unlimited

	// optional, incremented after each operation; may be shared
	// between runners
	Progress *counter.Counter
}

// Result - counters from a run
type Result struct {
	Operations int
	Inserts    int
	Overwrites int
	Deletes    int
	Missing    int // deletes of absent keys
	Lookups    int
	Found      int
	Failed     int // inserts rejected by the allocator
	Checks     int
	Length     int
	Height     int
	Statistics avl.Statistics
}

// Runner - applies a workload to a tree and a reference
type Runner struct {
	log       *logger.L
	config    Configuration
	tree      *avl.Tree
	reference Reference
	layout    *element.Layout
	generator *Generator
	limiter   *rate.Limiter
}

// New - create a runner, the tree's element size must match the
// configuration
func New(config Configuration, tree *avl.Tree, reference Reference, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if config.ElementSize < element.Uint64Size || tree.ElementSize() != config.ElementSize {
		return nil, fault.ErrInvalidElementSize
	}
	if config.Operations <= 0 {
		return nil, fault.ErrInvalidOperationCount
	}
	if 0 == config.KeyRange {
		return nil, fault.ErrInvalidKeyRange
	}
	if config.CheckInterval < 0 {
		config.CheckInterval = 0
	}
	if config.Rate < 0 {
		return nil, fault.ErrInvalidRate
	}

	layout, err := element.NewLayout(element.Uint64Size, config.ElementSize-element.Uint64Size)
	if nil != err {
		return nil, err
	}

	r := &Runner{
		log:       log,
		config:    config,
		tree:      tree,
		reference: reference,
		layout:    layout,
		generator: NewGenerator(config.Seed, config.KeyRange),
	}
	if config.Rate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(config.Rate), 1)
	}
	return r, nil
}

// Run - perform all operations, stopping at the first difference from
// the reference or when the context is cancelled
func (r *Runner) Run(ctx context.Context) (Result, error) {
	result := Result{}

	r.log.Infof("run: operations: %d  key range: %d  seed: %d", r.config.Operations, r.config.KeyRange, r.config.Seed)

	for i := 0; i < r.config.Operations; i += 1 {
		if nil != r.limiter {
			if err := r.limiter.Wait(ctx); nil != err {
				return r.finish(result), err
			}
		} else {
			select {
			case <-ctx.Done():
				return r.finish(result), ctx.Err()
			default:
			}
		}

		op := r.generator.Next()
		if err := r.apply(i, op, &result); nil != err {
			r.log.Errorf("operation: %d  %s key: %d  error: %s", i, op.Kind, op.Key, err)
			return r.finish(result), err
		}
		result.Operations += 1
		if nil != r.config.Progress {
			r.config.Progress.Increment()
		}

		if r.config.CheckInterval > 0 && 0 == result.Operations%r.config.CheckInterval {
			if err := r.verify(&result); nil != err {
				return r.finish(result), err
			}
		}
	}

	if err := r.verify(&result); nil != err {
		return r.finish(result), err
	}
	result = r.finish(result)
	r.log.Infof("run: finished: %+v", result)
	return result, nil
}

func (r *Runner) apply(i int, op Operation, result *Result) error {
	key := element.Uint64(op.Key)

	switch op.Kind {
	case Insert:
		record, err := r.layout.Pack(key, r.value(i))
		if nil != err {
			return err
		}
		overwritten, err := r.tree.Set(record, r.layout.Compare)
		if fault.ErrAllocationFailed == err {
			// tree is unchanged so the reference must be too
			result.Failed += 1
			return nil
		}
		if nil != err {
			return err
		}
		if overwritten {
			result.Overwrites += 1
		} else {
			result.Inserts += 1
		}
		return r.reference.Put(key, r.layout.Value(record))

	case Delete:
		deleted := r.tree.Delete(key, r.layout.Compare)
		present, err := r.reference.Delete(key)
		if nil != err {
			return err
		}
		if deleted != present {
			return fault.ErrMismatchedLookup
		}
		if deleted {
			result.Deletes += 1
		} else {
			result.Missing += 1
		}

	case Lookup:
		data, found := r.tree.Get(key, r.layout.Compare)
		expected, present, err := r.reference.Get(key)
		if nil != err {
			return err
		}
		if found != present || (found && !bytes.Equal(r.layout.Value(data), expected)) {
			return fault.ErrMismatchedLookup
		}
		result.Lookups += 1
		if found {
			result.Found += 1
		}

	default:
		fault.Panicf("operation: %d  unknown kind: %d", i, op.Kind)
	}
	return nil
}

// value stored by operation i: its index, truncated or zero padded to
// the value size
func (r *Runner) value(i int) []byte {
	v := make([]byte, r.layout.ValueSize())
	copy(v, element.Uint64(uint64(i)))
	return v
}

// check the tree structure and compare the whole content in order
func (r *Runner) verify(result *Result) error {
	result.Checks += 1

	if err := r.tree.Check(r.layout.Compare); nil != err {
		return err
	}
	if r.tree.Len() != r.reference.Len() {
		r.log.Errorf("verify: tree length: %d  reference length: %d", r.tree.Len(), r.reference.Len())
		return fault.ErrMismatchedContent
	}

	iter := r.reference.NewIterator()
	defer iter.Release()

	p := r.tree.First()
	for iter.Next() {
		if nil == p {
			r.log.Errorf("verify: tree ends before key: %x", iter.Key())
			return fault.ErrMismatchedContent
		}
		if !bytes.Equal(r.layout.Key(p.Data()), iter.Key()) || !bytes.Equal(r.layout.Value(p.Data()), iter.Value()) {
			r.log.Errorf("verify: tree: %x  reference: %x/%x", p.Data(), iter.Key(), iter.Value())
			return fault.ErrMismatchedContent
		}
		p = p.Next()
	}
	if err := iter.Error(); nil != err {
		return err
	}
	if nil != p {
		r.log.Errorf("verify: tree has extra element: %x", p.Data())
		return fault.ErrMismatchedContent
	}

	r.log.Debugf("verify: operations: %d  length: %d  height: %d", result.Operations, r.tree.Len(), r.tree.Height())
	return nil
}

func (r *Runner) finish(result Result) Result {
	result.Length = r.tree.Len()
	result.Height = r.tree.Height()
	result.Statistics = r.tree.Statistics()
	return result
}
