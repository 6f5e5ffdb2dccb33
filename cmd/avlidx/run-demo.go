package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/avl"
	"github.com/urfave/cli"
)

var (
	demoKeys    = []int{50, 20, 70, 10, 30, 60, 80, 25, 35}
	demoDeletes = []int{20, 70, 25}
)

func runDemo(c *cli.Context) error {
	return demo(c.App.Writer)
}

func demo(w io.Writer) error {
	tree := &avl.Tree[int]{}
	for _, k := range demoKeys {
		if _, err := insertKey(tree, k); err != nil {
			return err
		}
	}
	fmt.Fprint(w, "In-order after inserts: ")
	printInorder(w, tree)

	for _, k := range demoDeletes {
		if n := findKey(tree, k); n != avl.Nil {
			if _, _, err := tree.Erase(n); err != nil {
				return err
			}
		}
	}
	fmt.Fprint(w, "In-order after deletes: ")
	printInorder(w, tree)

	for n := tree.First(); n != avl.Nil; {
		var err error
		if _, n, err = tree.Erase(n); err != nil {
			return err
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}
	if !tree.IsEmpty() {
		return fmt.Errorf("tree not empty after erasing all nodes: %d left", tree.Len())
	}
	return nil
}

func printInorder(w io.Writer, tree *avl.Tree[int]) {
	for _, k := range tree.All() {
		fmt.Fprintf(w, "%d ", k)
	}
	fmt.Fprintln(w)
}
