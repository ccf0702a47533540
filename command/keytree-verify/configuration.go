// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keytree/configuration"
	"github.com/bitmark-inc/keytree/fault"
	"github.com/bitmark-inc/keytree/util"
	"github.com/bitmark-inc/keytree/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "keytree-verify.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultVariant = variantAVL
	defaultCount   = 1023
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Variants      []string             `gluamapper:"variants" json:"variants"`
	Dump          bool                 `gluamapper:"dump" json:"dump"`
	Workloads     []workload.Profile      `gluamapper:"workloads" json:"workloads"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// private copy so parsing cannot alter the defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Variants:      nil,
		Dump:          false,
		Workloads:     nil,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if 0 == len(options.Variants) {
		options.Variants = []string{defaultVariant}
	}
	for i, v := range options.Variants {
		v = strings.ToLower(v)
		if _, ok := variants[v]; !ok {
			return nil, fmt.Errorf("variant: %q  error: %s", v, fault.ErrInvalidVariant)
		}
		options.Variants[i] = v
	}

	if 0 == len(options.Workloads) {
		options.Workloads = []workload.Profile{
			{
				Name:    workload.Ascending,
				Pattern: workload.Ascending,
				Count:   defaultCount,
			},
		}
	}

	// every workload needs a distinct name for reporting
	names := make(map[string]struct{})
	for i := range options.Workloads {
		w := &options.Workloads[i]
		w.Pattern = strings.ToLower(w.Pattern)
		if "" == w.Name {
			w.Name = fmt.Sprintf("%s-%d", w.Pattern, i+1)
		}
		if _, ok := names[w.Name]; ok {
			return nil, fmt.Errorf("workload: %q  error: %s", w.Name, fault.ErrWorkloadExists)
		}
		names[w.Name] = struct{}{}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the log file name must not contain a path seperator
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}
