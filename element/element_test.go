// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package element_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
)

func TestIntegerOrder(t *testing.T) {
	values := []int64{math.MinInt64, -1000, -1, 0, 1, 7, 1000, math.MaxInt64}

	for i := 1; i < len(values); i += 1 {
		a := element.Int64(values[i-1])
		b := element.Int64(values[i])
		assert.Equal(t, -1, element.Bytewise(a, b), "bytewise: %d < %d", values[i-1], values[i])
		assert.True(t, element.CompareInteger(a, b) < 0, "integer: %d < %d", values[i-1], values[i])
		assert.Equal(t, values[i], element.ToInt64(b), "round trip")
	}

	assert.Equal(t, uint64(0x0102030405060708), element.ToUint64(element.Uint64(0x0102030405060708)))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, element.Uint64(256))
	assert.True(t, element.CompareInteger(element.Uint64(255), element.Uint64(256)) < 0)
}

func TestLayout(t *testing.T) {
	_, err := element.NewLayout(0, 4)
	assert.Equal(t, fault.ErrInvalidKeySize, err, "zero key size")
	_, err = element.NewLayout(4, -1)
	assert.Equal(t, fault.ErrInvalidValueSize, err, "negative value size")

	l, err := element.NewLayout(element.Uint64Size, 4)
	assert.Nil(t, err, "layout error")
	assert.Equal(t, 12, l.Size(), "size")

	record, err := l.Pack(element.Uint64(9), []byte("ab"))
	assert.Nil(t, err, "pack error")
	assert.Equal(t, 12, len(record), "record length")
	assert.Equal(t, uint64(9), element.ToUint64(l.Key(record)), "key")
	assert.Equal(t, []byte{'a', 'b', 0, 0}, l.Value(record), "padded value")

	_, err = l.Pack([]byte{1, 2}, nil)
	assert.Equal(t, fault.ErrInvalidElementLength, err, "short key")
	_, err = l.Pack(element.Uint64(1), []byte("too long"))
	assert.Equal(t, fault.ErrInvalidElementLength, err, "long value")

	other, _ := l.Pack(element.Uint64(9), []byte("zz"))
	assert.Equal(t, 0, l.Compare(record, other), "values are ignored")
	assert.Equal(t, 0, l.Compare(element.Uint64(9), record), "bare key")
	assert.Equal(t, -1, l.Compare(element.Uint64(8), record), "lower key")
	assert.Equal(t, 1, l.Compare(element.Uint64(10), record), "higher key")
}
