// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/keytree/version"
	"github.com/bitmark-inc/keytree/workload"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate", "gen":
		if err := generate(os.Stdout, arguments); nil != err {
			fmt.Printf("generate error: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "start", "run":
		return false // defer processing until configuration is loaded

	case "config-test", "cfg", "workloads", "w":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version.Release())
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate PATTERN COUNT [SEED [RANGE [PERCENT]]]\n")
		fmt.Printf("                             (gen)    - print a workload as a script\n")
		fmt.Printf("                                        PATTERN is one of: %s %s %s\n", workload.Ascending, workload.Descending, workload.Random)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  workloads                  (w)      - print every configured workload as a script\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := printJson(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "workloads", "w":
		if err := listWorkloads(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to run
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// print a generated workload in script form
//
// arguments: PATTERN COUNT [SEED [RANGE [PERCENT]]]
func generate(w io.Writer, arguments []string) error {
	if len(arguments) < 2 {
		return fmt.Errorf("missing PATTERN or COUNT")
	}

	numbers := make([]int64, 0, 4)
	for _, a := range arguments[1:] {
		n, err := strconv.ParseInt(a, 10, 64)
		if nil != err {
			return err
		}
		numbers = append(numbers, n)
	}

	profile := workload.Profile{
		Pattern:       arguments[0],
		Count:         int(numbers[0]),
		Range:         2 * int(numbers[0]),
		RemovePercent: 30,
	}
	if len(numbers) > 1 {
		profile.Seed = numbers[1]
	}
	if len(numbers) > 2 {
		profile.Range = int(numbers[2])
	}
	if len(numbers) > 3 {
		profile.RemovePercent = int(numbers[3])
	}

	ops, err := workload.Build(profile)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", workload.Format(ops))
	return err
}

func listWorkloads(w io.Writer, options *Configuration) error {
	for _, profile := range options.Workloads {
		ops, err := workload.Build(profile)
		if nil != err {
			return fmt.Errorf("workload: %q  error: %s", profile.Name, err)
		}
		fmt.Fprintf(w, "-- %s (%s) %d operations\n", profile.Name, profile.Pattern, len(ops))
		fmt.Fprintf(w, "%s\n", workload.Format(ops))
	}
	return nil
}
