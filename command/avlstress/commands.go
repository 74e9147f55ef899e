// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/configuration"
)

// setup command handler
//
// commands that do not need the configuration; returns false if
// the stress run should start
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "sample-config", "sample":
		fileName := "avlstress.conf"
		if len(arguments) >= 1 {
			fileName = arguments[0]
		}
		fileName = configuration.EnsureAbsolute(".", fileName)
		if _, err := os.Stat(fileName); nil == err {
			fmt.Printf("error: file: %q already exists\n", fileName)
			exitwithstatus.Exit(1)
		}
		if err := writeSampleConfiguration(fileName); nil != err {
			fmt.Printf("error: cannot create: %q  error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("created sample configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  sample-config [FILE]       (sample) - write a sample configuration to: %q\n", "FILE")
		fmt.Printf("\n")

		fmt.Printf("  start [ARGS...]            (run)    - run the workers, ARGS are passed to the\n")
		fmt.Printf("                                        configuration script as arg[1]...\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}
