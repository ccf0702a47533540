// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/keytree/verify"
	"github.com/bitmark-inc/keytree/workload"
)

// summary - outcome of one workload against one variant
type summary struct {
	Workload string        `json:"workload"`
	Variant  string        `json:"variant"`
	Pattern  string        `json:"pattern"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Result   verify.Result `json:"result"`
	Dump     []string      `json:"dump,omitempty"`
}

// run every workload against every variant, printing a summary for
// each run; returns false if any run failed
func runAll(log *logger.L, options *Configuration, w io.Writer) bool {

	ok := true
	for _, profile := range options.Workloads {
		ops, err := workload.Build(profile)
		if nil != err {
			log.Errorf("workload: %q  build error: %s", profile.Name, err)
			printJson(w, summary{
				Workload: profile.Name,
				Pattern:  profile.Pattern,
				Error:    err.Error(),
			})
			ok = false
			continue
		}

		for _, name := range options.Variants {
			s := runOne(log, profile, name, ops, options.Dump)
			if !s.Passed {
				ok = false
			}
			printJson(w, s)
		}
	}
	return ok
}

func runOne(log *logger.L, profile workload.Profile, name string, ops []workload.Operation, dump bool) summary {

	s := summary{
		Workload: profile.Name,
		Variant:  name,
		Pattern:  profile.Pattern,
	}

	tree, balanced, err := newTree(name)
	if nil != err {
		s.Error = err.Error()
		return s
	}

	log.Infof("start workload: %q  variant: %s  operations: %d", profile.Name, name, len(ops))

	runner := verify.New(logger.New("verify"), tree, balanced)
	result, err := runner.Run(ops)
	s.Result = result

	if nil != err {
		s.Error = err.Error()
		log.Errorf("workload: %q  variant: %s  error: %s", profile.Name, name, err)
		log.Debugf("structure:\n%s", structure(tree))
	} else {
		s.Passed = true
		log.Infof("finish workload: %q  variant: %s  result: %+v", profile.Name, name, result)
	}

	if dump {
		s.Dump = lines(structure(tree))
	}
	return s
}

// render the tree's structural dump
func structure(tree dumpableTree) string {
	var b bytes.Buffer
	tree.Print(&b)
	return b.String()
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if "" == s {
		return nil
	}
	return strings.Split(s, "\n")
}
