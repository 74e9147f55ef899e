// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
)

const sampleConfiguration = `-- avlstress.conf  -*- mode: lua -*-

local M = {}

-- "." is a special case - it uses the path from the configuration file
-- as the data directory.
M.data_directory = "."

-- optional pid file if not absolute path then is created relative to
-- the data directory
-- M.pidfile = "avlstress.pid"

-- bytes per element: an eight byte key followed by the value
M.element_size = 16

-- deleted nodes kept for reuse by each tree, negative for unlimited
M.buffer_limit = 1024

-- maximum nodes allocated by each tree, zero for unlimited
M.node_limit = 0

-- one tree per worker
M.workers = 4
M.operations = 1000000
M.key_range = 100000

-- worker n uses seed + n, the first script argument overrides it
M.seed = tonumber(arg[1]) or 1

-- compare against the reference every n operations, zero for only at the end
M.check_interval = 100000

-- operations per second for each worker, zero for unlimited
M.rate = 0

-- seconds between progress log entries, zero to disable
M.report_interval = 10

-- "memdb" or "leveldb" (one database per worker in the data directory)
M.reference = "memdb"

-- logging configuration
M.logging = {
    size = 1048576,
    count = 10,

    -- set to true to log to console
    console = false,

    -- set the logging level for various modules
    -- modules not overridden with get the value from DEFAULT
    -- the default value for DEFAULT is "critical"
    levels = {
        -- DEFAULT = "debug",
        DEFAULT = "info",

        main = "info",
        progress = "info",
        worker = "info",
    }
}

-- return the complete configuration
return M
`

func writeSampleConfiguration(fileName string) error {
	return ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
}
