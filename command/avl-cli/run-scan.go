// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
)

func runScan(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	directory := c.String("database")
	if "" == directory {
		return fmt.Errorf("database directory is required")
	}

	layout, err := element.NewLayout(c.Int("key-size"), c.Int("value-size"))
	if nil != err {
		return err
	}

	r := &util.Range{}
	if r.Start, err = hex.DecodeString(c.String("start")); nil != err {
		return fmt.Errorf("invalid start: %s", err)
	}
	if r.Limit, err = hex.DecodeString(c.String("limit")); nil != err {
		return fmt.Errorf("invalid limit: %s", err)
	}
	if 0 == len(r.Limit) {
		r.Limit = nil
	}

	if m.verbose {
		fmt.Fprintf(m.e, "database: %q\n", directory)
		fmt.Fprintf(m.e, "key size: %d  value size: %d\n", layout.KeySize(), layout.ValueSize())
		fmt.Fprintf(m.e, "range: %x .. %x\n", r.Start, r.Limit)
	}

	db, err := leveldb.OpenFile(directory, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if nil != err {
		return err
	}
	defer db.Close()

	tree, err := avl.New(layout.Size(), 0)
	if nil != err {
		return err
	}
	tree.SetLog(m.log)

	skipped := 0
	collisions := 0
	iter := db.NewIterator(r, nil)
	for iter.Next() {
		record, err := scanRecord(layout, iter.Key(), iter.Value())
		if nil != err {
			skipped += 1
			continue
		}
		overwritten, err := tree.Set(record, layout.Compare)
		if nil != err {
			iter.Release()
			return err
		}
		if overwritten {
			if m.verbose {
				fmt.Fprintf(m.e, "key: %x  collides after padding\n", iter.Key())
			}
			collisions += 1
		}
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	if err := tree.Check(layout.Compare); nil != err {
		return err
	}

	if c.Bool("print") && !tree.IsEmpty() {
		tree.Print(m.w, false)
	}
	s := summarise(tree, func(data []byte) string {
		return hex.EncodeToString(layout.Key(data))
	})
	fmt.Fprintf(m.w, "elements: %d  skipped: %d  collisions: %d  height: %d  smallest: %s  largest: %s\n",
		s.Elements, skipped, collisions, s.Height, s.Smallest, s.Largest)
	return nil
}

// keys longer than the key size cannot be represented; shorter keys
// are zero padded so distinct keys can collide; a value is truncated
// to fit
func scanRecord(layout *element.Layout, key []byte, value []byte) ([]byte, error) {
	k := make([]byte, layout.KeySize())
	if len(key) > len(k) {
		return nil, fmt.Errorf("key: %x too long", key)
	}
	copy(k, key)
	if len(value) > layout.ValueSize() {
		value = value[:layout.ValueSize()]
	}
	return layout.Pack(k, value)
}
