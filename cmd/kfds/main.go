// Copyright 2024 The kfds Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command kfds runs the containers of this module over lists of integers.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	max     bool
	log     *logrus.Logger
	r       io.Reader
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); nil != err {
		reportError(app, err)
		os.Exit(1)
	}
}

// reportError logs the error which terminated app through the app's logger.
func reportError(app *cli.App, err error) {
	m := app.Metadata["config"].(*metadata)
	m.log.WithError(err).Error("terminated with error")
}

func newApp(r io.Reader, w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "kfds"
	app.Usage = "order integers with a heap, a search tree or a unique queue"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	log := logrus.New()
	log.SetOutput(e)
	log.SetLevel(logrus.InfoLevel)

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log each container operation",
		},
		cli.BoolFlag{
			Name:  "max, m",
			Usage: " order largest first where a command supports it",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "heapsort",
			Usage:     "push numbers into a priority queue and pop them in order",
			ArgsUsage: "[NUMBER...]\n   (numbers are read from stdin if none are given)",
			Action:    runHeapsort,
		},
		{
			Name:      "tree",
			Usage:     "insert numbers into a binary search tree and traverse it",
			ArgsUsage: "[NUMBER...]\n   (numbers are read from stdin if none are given)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [in|pre|post]",
				},
				cli.IntSliceFlag{
					Name:  "remove, r",
					Usage: " remove `NUMBER` after inserting, may be repeated",
				},
			},
			Action: runTree,
		},
		{
			Name:      "unique",
			Usage:     "queue numbers dropping those already queued",
			ArgsUsage: "[NUMBER...]\n   (numbers are read from stdin if none are given)",
			Action:    runUnique,
		},
	}

	m := &metadata{
		log: log,
		r:   r,
		w:   w,
	}
	app.Metadata = map[string]interface{}{
		"config": m,
	}

	app.Before = func(c *cli.Context) error {
		m.verbose = c.GlobalBool("verbose")
		m.max = c.GlobalBool("max")
		if m.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	return app
}
