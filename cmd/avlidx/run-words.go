package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/avl/wordindex"
	"github.com/urfave/cli"
)

func runWords(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expecting exactly one file name")
	}
	return words(c.App.Writer, c.Args().First(), c.Int("top"))
}

func words(w io.Writer, name string, top int) error {
	counts, err := wordindex.LoadFile(name)
	if nil != err {
		return err
	}
	countColor := color.New(color.FgCyan)
	for _, e := range wordindex.Top(counts, top) {
		countColor.Fprintf(w, "%7d", e.Value)
		fmt.Fprintf(w, " %s\n", e.Key)
	}
	fmt.Fprintf(w, "%d distinct words\n", counts.Len())
	return nil
}
