// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
)

const (
	testingDirName = "testing"
	logCategory    = "avl-test"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// integer keyed tree with a logger attached
func newTree(t *testing.T, bufferLimit int) *avl.Tree {
	tree, err := avl.New(element.Uint64Size, bufferLimit)
	if nil != err {
		t.Fatalf("new tree error: %s", err)
	}
	tree.SetLog(logger.New(logCategory))
	return tree
}

func key(n int) []byte {
	return element.Uint64(uint64(n))
}

func value(data []byte) int {
	return int(element.ToUint64(data))
}

func insertKeys(t *testing.T, tree *avl.Tree, keys ...int) {
	for _, n := range keys {
		if err := tree.Insert(key(n), element.CompareInteger); nil != err {
			t.Fatalf("insert: %d  error: %s", n, err)
		}
	}
}

func deleteKeys(t *testing.T, tree *avl.Tree, keys ...int) {
	for _, n := range keys {
		if !tree.Delete(key(n), element.CompareInteger) {
			t.Fatalf("delete: %d  not found", n)
		}
	}
}

// fail with a picture of the tree if its structure is broken
func checkTree(t *testing.T, tree *avl.Tree) {
	if err := tree.Check(element.CompareInteger); nil != err {
		logger.New(logCategory).Errorf("check error: %s", err)
		t.Errorf("check error: %s", err)
		tree.Print(os.Stdout, true)
		t.FailNow()
	}
	if !tree.CheckUp() {
		t.Fatalf("inconsistent parent links")
	}
}

func contents(tree *avl.Tree) []int {
	list := []int{}
	tree.Each(func(data []byte) bool {
		list = append(list, value(data))
		return true
	})
	return list
}
