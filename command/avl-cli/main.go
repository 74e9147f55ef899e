// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build and inspect avl trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: "",
			Usage: " write a trace log of tree operations to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert and delete integer keys then display the tree",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "insert, i",
					Value: "",
					Usage: "+comma separated integer keys to insert `LIST`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: "+insert keys 0 to `COUNT`-1 in ascending order",
				},
				cli.StringFlag{
					Name:  "delete, d",
					Value: "",
					Usage: " comma separated integer keys to delete `LIST`",
				},
				cli.IntFlag{
					Name:  "buffer, b",
					Value: 16,
					Usage: " deleted nodes kept for reuse `COUNT`",
				},
				cli.BoolFlag{
					Name:  "data",
					Usage: " show parent, balance and height of each node",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " only output summary as JSON",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "scan",
			Usage:     "load records from a LevelDB database into a tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, D",
					Value: "",
					Usage: "*LevelDB database directory `DIR`",
				},
				cli.IntFlag{
					Name:  "key-size, k",
					Value: 8,
					Usage: " key bytes per element, shorter keys are zero padded `BYTES`",
				},
				cli.IntFlag{
					Name:  "value-size, s",
					Value: 8,
					Usage: " value bytes per element, values are truncated or padded `BYTES`",
				},
				cli.StringFlag{
					Name:  "start",
					Value: "",
					Usage: " first key of the range in hex `HEX`",
				},
				cli.StringFlag{
					Name:  "limit",
					Value: "",
					Usage: " key after the end of the range in hex `HEX`",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " display the tree",
				},
			},
			Action: runScan,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		directory := c.GlobalString("log-directory")
		if "" == directory {
			return nil
		}
		if err := os.MkdirAll(directory, 0700); nil != err {
			return err
		}
		logging := logger.Configuration{
			Directory: directory,
			File:      "avl-cli.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "trace",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}
		m.log = logger.New("avl")
		if m.verbose {
			fmt.Fprintf(m.e, "log directory: %q\n", directory)
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok && nil != m.log {
			logger.Finalise()
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
