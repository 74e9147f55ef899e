// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
)

// Kind - the type of a generated operation
type Kind int

// operation types
const (
	Insert Kind = iota
	Delete
	Lookup
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Lookup:
		return "lookup"
	default:
		return "*unknown*"
	}
}

// Operation - one step of a workload
type Operation struct {
	Kind Kind
	Key  uint64
}

// Generator - deterministic stream of operations, the same seed and
// key range always produce the same stream
type Generator struct {
	rnd      *rand.Rand
	keyRange uint64
}

// NewGenerator - keys are drawn from [0, keyRange), keyRange must be
// positive
func NewGenerator(seed int64, keyRange uint64) *Generator {
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		keyRange: keyRange,
	}
}

// Next - 50% inserts, 30% deletes, 20% lookups
func (g *Generator) Next() Operation {
	op := Operation{
		Key: g.rnd.Uint64() % g.keyRange,
	}
	switch n := g.rnd.Intn(10); {
	case n < 5:
		op.Kind = Insert
	case n < 8:
		op.Kind = Delete
	default:
		op.Kind = Lookup
	}
	return op
}
