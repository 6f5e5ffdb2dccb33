package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/avl"
	"github.com/urfave/cli"
)

func runTree(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing keys")
	}
	keys := make([]int, 0, c.NArg())
	for _, arg := range c.Args() {
		k, err := strconv.Atoi(arg)
		if nil != err {
			return fmt.Errorf("key %q: %w", arg, err)
		}
		keys = append(keys, k)
	}
	return showTree(c.App.Writer, keys, c.Bool("dot"))
}

func showTree(w io.Writer, keys []int, dot bool) error {
	tree, err := avl.New(avl.Config[int]{Capacity: len(keys)})
	if err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := insertKey(tree, k); err != nil {
			return err
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}
	if dot {
		return tree.ToDot(w, strconv.Itoa)
	}
	tree.Print(w, strconv.Itoa)
	fmt.Fprintf(w, "%d nodes, height %d, %d rotations\n", tree.Len(), tree.Height(), tree.Rotations())
	return nil
}
