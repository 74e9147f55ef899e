// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package element

import (
	"bytes"

	"github.com/bitmark-inc/avltree/fault"
)

// Layout - a fixed size record of a key followed by a value, ordered
// by the key alone so that a tree of records behaves as a map
type Layout struct {
	keySize   int
	valueSize int
}

// NewLayout - describe records of keySize + valueSize bytes
func NewLayout(keySize int, valueSize int) (*Layout, error) {
	if keySize <= 0 {
		return nil, fault.ErrInvalidKeySize
	}
	if valueSize < 0 {
		return nil, fault.ErrInvalidValueSize
	}
	return &Layout{
		keySize:   keySize,
		valueSize: valueSize,
	}, nil
}

// Size - total record size, use as the tree element size
func (l *Layout) Size() int {
	return l.keySize + l.valueSize
}

// KeySize - number of key bytes
func (l *Layout) KeySize() int {
	return l.keySize
}

// ValueSize - number of value bytes
func (l *Layout) ValueSize() int {
	return l.valueSize
}

// Pack - build a record; key must be exactly KeySize bytes and a
// short value is padded with zeros
func (l *Layout) Pack(key []byte, value []byte) ([]byte, error) {
	if len(key) != l.keySize || len(value) > l.valueSize {
		return nil, fault.ErrInvalidElementLength
	}
	record := make([]byte, l.Size())
	copy(record, key)
	copy(record[l.keySize:], value)
	return record, nil
}

// Key - the key part of a record
func (l *Layout) Key(record []byte) []byte {
	return record[:l.keySize]
}

// Value - the value part of a record
func (l *Layout) Value(record []byte) []byte {
	return record[l.keySize:]
}

// Compare - order by key; a may be either a complete record or just
// a key, so it can be used directly for lookups
func (l *Layout) Compare(a []byte, b []byte) int {
	return bytes.Compare(a[:l.keySize], b[:l.keySize])
}
