// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
)

type summary struct {
	Elements   int            `json:"elements"`
	Height     int            `json:"height"`
	Smallest   string         `json:"smallest,omitempty"`
	Largest    string         `json:"largest,omitempty"`
	Buffered   int            `json:"buffered"`
	Statistics avl.Statistics `json:"statistics"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	inserts, err := parseList(c.String("insert"))
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("invalid count: %d", count)
	}
	if 0 == len(inserts) && 0 == count {
		return fmt.Errorf("one of insert or count is required")
	}
	if len(inserts) > 0 && count > 0 {
		return fmt.Errorf("only one of insert or count is allowed")
	}
	for i := 0; i < count; i += 1 {
		inserts = append(inserts, int64(i))
	}

	deletes, err := parseList(c.String("delete"))
	if nil != err {
		return err
	}

	bufferLimit := c.Int("buffer")
	if bufferLimit < 0 {
		bufferLimit = avl.UnlimitedBuffer
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserts: %d\n", len(inserts))
		fmt.Fprintf(m.e, "deletes: %d\n", len(deletes))
		fmt.Fprintf(m.e, "buffer limit: %d\n", bufferLimit)
	}

	tree, err := avl.New(element.Int64Size, bufferLimit)
	if nil != err {
		return err
	}
	tree.SetLog(m.log)

	for _, n := range inserts {
		if err := tree.Insert(element.Int64(n), element.CompareInteger); nil != err {
			return err
		}
	}
	for _, n := range deletes {
		if !tree.Delete(element.Int64(n), element.CompareInteger) {
			fmt.Fprintf(m.e, "delete: %d  not found\n", n)
		}
	}

	if err := tree.Check(element.CompareInteger); nil != err {
		return err
	}

	s := summarise(tree, func(data []byte) string {
		return strconv.FormatInt(element.ToInt64(data), 10)
	})
	if c.Bool("json") {
		encoder := json.NewEncoder(m.w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	}

	if !tree.IsEmpty() {
		tree.Print(m.w, c.Bool("data"))
	}
	fmt.Fprintf(m.w, "elements: %d  height: %d  buffered: %d  allocated: %d  reused: %d  released: %d\n",
		s.Elements, s.Height, s.Buffered, s.Statistics.Allocated, s.Statistics.Reused, s.Statistics.Released)
	return nil
}

func summarise(tree *avl.Tree, format func([]byte) string) *summary {
	s := &summary{
		Elements:   tree.Len(),
		Height:     tree.Height(),
		Buffered:   tree.BufferLen(),
		Statistics: tree.Statistics(),
	}
	if !tree.IsEmpty() {
		s.Smallest = format(tree.Smallest())
		s.Largest = format(tree.Largest())
	}
	return s
}

// comma separated integers, blank is an empty list
func parseList(s string) ([]int64, error) {
	list := []int64{}
	if "" == strings.TrimSpace(s) {
		return list, nil
	}
	for _, item := range strings.Split(s, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(item), 10, 64)
		if nil != err {
			return nil, fmt.Errorf("invalid integer: %q", item)
		}
		list = append(list, n)
	}
	return list, nil
}
