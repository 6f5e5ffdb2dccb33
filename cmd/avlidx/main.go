// Command avlidx exercises AVL trees from the command line.
//
//	avlidx demo                  insert, erase and list a fixed set of keys
//	avlidx tree [--dot] KEYS...  show the tree built from integer keys
//	avlidx words [--top N] FILE  count the words of a text or HTML file
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := cli.NewApp()
	app.Name = "avlidx"
	app.Usage = "play with height-balanced binary trees"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: " trace tree operations",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "insert, erase and list a fixed set of keys",
			Action: runDemo,
		},
		{
			Name:      "tree",
			Usage:     "build a tree from integer keys and print it",
			ArgsUsage: "KEYS...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dot",
					Usage: " output Graphviz DOT instead of text",
				},
			},
			Action: runTree,
		},
		{
			Name:      "words",
			Usage:     "count word frequencies of a text or HTML file",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "top, t",
					Value: 20,
					Usage: " show the `COUNT` most frequent words, 0 for all",
				},
			},
			Action: runWords,
		},
	}
	app.Before = func(c *cli.Context) error {
		gtrace.CoreTracer = gologadapter.New()
		if c.GlobalBool("debug") {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
