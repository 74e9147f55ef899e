// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory setting against the
// directory holding the configuration file; "." means that directory
// and the result must be an existing directory
func DataDirectory(configurationDirectory string, dataDirectory string) (string, error) {
	switch dataDirectory {
	case "", "~":
		return "", fault.ErrWrongDataDirectory
	case ".":
		dataDirectory = configurationDirectory
	}
	dataDirectory = EnsureAbsolute(configurationDirectory, dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(dataDirectory); nil != err {
		return "", err
	} else if !fileInfo.IsDir() {
		return "", fault.ErrWrongDataDirectory
	}
	return dataDirectory, nil
}

// PlainFileName - fail if name contains a directory part
func PlainFileName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}
