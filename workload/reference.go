// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// reference types
const (
	MemoryReference   = "memdb"
	DatabaseReference = "leveldb"
)

// Reference - ordered key/value model the tree is checked against
type Reference interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) (bool, error)
	Get(key []byte) ([]byte, bool, error)
	Len() int
	NewIterator() iterator.Iterator
	Close() error
}

// in-memory skip list
type memoryReference struct {
	db *memdb.DB
}

// NewMemoryReference - a reference held in a LevelDB memdb
func NewMemoryReference() Reference {
	return &memoryReference{
		db: memdb.New(comparer.DefaultComparer, 0),
	}
}

func (r *memoryReference) Put(key []byte, value []byte) error {
	return r.db.Put(key, value)
}

func (r *memoryReference) Delete(key []byte) (bool, error) {
	err := r.db.Delete(key)
	if leveldb.ErrNotFound == err {
		return false, nil
	}
	return nil == err, err
}

func (r *memoryReference) Get(key []byte) ([]byte, bool, error) {
	value, err := r.db.Get(key)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	return value, nil == err, err
}

func (r *memoryReference) Len() int {
	return r.db.Len()
}

func (r *memoryReference) NewIterator() iterator.Iterator {
	return r.db.NewIterator(nil)
}

func (r *memoryReference) Close() error {
	r.db.Reset()
	return nil
}

// on-disk database
type databaseReference struct {
	db    *leveldb.DB
	count int
}

// NewDatabaseReference - a reference held in a new LevelDB database,
// the directory must not already contain one
func NewDatabaseReference(directory string) (Reference, error) {
	db, err := leveldb.OpenFile(directory, &opt.Options{
		ErrorIfExist: true,
	})
	if nil != err {
		return nil, err
	}
	return &databaseReference{
		db: db,
	}, nil
}

func (r *databaseReference) Put(key []byte, value []byte) error {
	found, err := r.db.Has(key, nil)
	if nil != err {
		return err
	}
	err = r.db.Put(key, value, nil)
	if nil == err && !found {
		r.count += 1
	}
	return err
}

func (r *databaseReference) Delete(key []byte) (bool, error) {
	found, err := r.db.Has(key, nil)
	if nil != err || !found {
		return false, err
	}
	err = r.db.Delete(key, nil)
	if nil != err {
		return false, err
	}
	r.count -= 1
	return true, nil
}

func (r *databaseReference) Get(key []byte) ([]byte, bool, error) {
	value, err := r.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	return value, nil == err, err
}

func (r *databaseReference) Len() int {
	return r.count
}

func (r *databaseReference) NewIterator() iterator.Iterator {
	return r.db.NewIterator(nil, nil)
}

func (r *databaseReference) Close() error {
	return r.db.Close()
}
