// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/keytree/version"
)

type metadata struct {
	variant    string
	tree       keyTree
	duplicates []int
	verbose    bool
	e          io.Writer
	w          io.Writer
}

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
	app.Name = "keytree-cli"
	app.Usage = "build a search tree from keys and inspect it"
	app.Version = version.Release()
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " insert `KEYS` in order, comma or space separated",
		},
		cli.StringFlag{
			Name:  "variant, t",
			Value: "avl",
			Usage: " tree `VARIANT` [avl|bst]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "dump",
			Usage:  "print the tree structure, right sub-tree uppermost",
			Action: runDump,
		},
		{
			Name:  "export",
			Usage: "export the keys in ascending order",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "buffer, b",
					Value: -1,
					Usage: " export buffer size `COUNT` [default tree size]",
				},
			},
			Action: runExport,
		},
		{
			Name:   "stats",
			Usage:  "show size, height and node accounting",
			Action: runStats,
		},
		{
			Name:      "remove",
			Usage:     "remove keys then show the remaining keys",
			ArgsUsage: "KEY...",
			Action:    runRemove,
		},
		{
			Name:      "contains",
			Usage:     "test whether keys are present",
			ArgsUsage: "KEY...",
			Action:    runContains,
		},
		{
			Name:   "check",
			Usage:  "verify order, count and balance of the tree",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Release())
				return nil
			},
		},
	}

	// build the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		variant := strings.ToLower(c.GlobalString("variant"))
		tree, err := newTree(variant)
		if nil != err {
			return fmt.Errorf("variant: %q  error: %s", variant, err)
		}

		keys, err := parseKeys(c.GlobalString("keys"))
		if nil != err {
			return err
		}

		duplicates := []int{}
		for _, k := range keys {
			if !tree.Insert(k) {
				duplicates = append(duplicates, k)
			}
		}

		if verbose {
			fmt.Fprintf(e, "variant: %s\n", variant)
			fmt.Fprintf(e, "inserted: %d  duplicates: %v\n", len(keys)-len(duplicates), duplicates)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				variant:    variant,
				tree:       tree,
				duplicates: duplicates,
				verbose:    verbose,
				e:          e,
				w:          w,
			},
		}

		return nil
	}

	return app
}
