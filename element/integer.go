// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package element

import (
	"bytes"
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/comparer"
)

// sizes of the integer encodings
const (
	Uint64Size = 8
	Int64Size  = 8
)

const signBit = uint64(1) << 63

// Bytewise - lexicographic byte order, identical to LevelDB's default
// comparer
func Bytewise(a []byte, b []byte) int {
	return comparer.DefaultComparer.Compare(a, b)
}

// Uint64 - encode an unsigned integer
func Uint64(value uint64) []byte {
	buffer := make([]byte, Uint64Size)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}

// ToUint64 - decode the first eight bytes as an unsigned integer
func ToUint64(buffer []byte) uint64 {
	return binary.BigEndian.Uint64(buffer)
}

// Int64 - encode a signed integer so that byte order is numeric order
func Int64(value int64) []byte {
	buffer := make([]byte, Int64Size)
	binary.BigEndian.PutUint64(buffer, uint64(value)^signBit)
	return buffer
}

// ToInt64 - decode the first eight bytes as a signed integer
func ToInt64(buffer []byte) int64 {
	return int64(binary.BigEndian.Uint64(buffer) ^ signBit)
}

// CompareInteger - compare the leading eight bytes of two elements
// encoded by Uint64 or Int64
func CompareInteger(a []byte, b []byte) int {
	return bytes.Compare(a[:Uint64Size], b[:Uint64Size])
}
