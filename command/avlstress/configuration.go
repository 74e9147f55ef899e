// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultElementSize    = 16
	defaultBufferLimit    = 1024
	defaultWorkers        = 4
	defaultOperations     = 1000000
	defaultKeyRange       = 100000
	defaultCheckInterval  = 100000
	defaultReportInterval = 10 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstress.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	ElementSize    int                  `gluamapper:"element_size" json:"element_size"`
	BufferLimit    int                  `gluamapper:"buffer_limit" json:"buffer_limit"`
	NodeLimit      int                  `gluamapper:"node_limit" json:"node_limit"`
	Workers        int                  `gluamapper:"workers" json:"workers"`
	Operations     int                  `gluamapper:"operations" json:"operations"`
	KeyRange       uint64               `gluamapper:"key_range" json:"key_range"`
	Seed           int64                `gluamapper:"seed" json:"seed"`
	CheckInterval  int                  `gluamapper:"check_interval" json:"check_interval"`
	Rate           float64              `gluamapper:"rate" json:"rate"`
	Reference      string               `gluamapper:"reference" json:"reference"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, arguments []string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	configurationDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		ElementSize:    defaultElementSize,
		BufferLimit:    defaultBufferLimit,
		NodeLimit:      0, // unlimited
		Workers:        defaultWorkers,
		Operations:     defaultOperations,
		KeyRange:       defaultKeyRange,
		Seed:           1,
		CheckInterval:  defaultCheckInterval,
		Rate:           0, // unlimited
		Reference:      workload.MemoryReference,
		ReportInterval: defaultReportInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, arguments...); err != nil {
		return nil, err
	}

	if err := options.validate(configurationDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and resolve all paths
func (options *Configuration) validate(configurationDirectory string) error {

	if options.ElementSize < 8 {
		return fault.ErrInvalidElementSize
	}
	if options.BufferLimit < 0 {
		options.BufferLimit = avl.UnlimitedBuffer
	}
	if options.NodeLimit < 0 {
		options.NodeLimit = 0
	}
	if options.Workers <= 0 {
		return fault.ErrInvalidWorkerCount
	}
	if options.Operations <= 0 {
		return fault.ErrInvalidOperationCount
	}
	if 0 == options.KeyRange {
		return fault.ErrInvalidKeyRange
	}
	if options.Rate < 0 {
		return fault.ErrInvalidRate
	}
	if options.ReportInterval < 0 {
		options.ReportInterval = 0
	}

	options.Reference = strings.ToLower(options.Reference)
	switch options.Reference {
	case workload.MemoryReference, workload.DatabaseReference:
	default:
		return fault.ErrInvalidReference
	}

	// ensure absolute data directory
	dataDirectory, err := configuration.DataDirectory(configurationDirectory, options.DataDirectory)
	if nil != err {
		return err
	}
	options.DataDirectory = dataDirectory

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name placed in the log directory
	if err := configuration.PlainFileName(options.Logging.File); nil != err {
		return err
	}
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	// create the log directory if it does not already exist
	return os.MkdirAll(options.Logging.Directory, 0700)
}
