package avl

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

var (
	heightColor  = color.New(color.FgCyan)
	leaningColor = color.New(color.FgYellow)
	levelColor   = color.New(color.Faint)
)

// Print writes an ASCII side view of the tree to w, right subtrees on top.
// Every node shows its label, height and balance factor; nodes leaning to
// one side are highlighted. label may be nil, then handles are printed.
//
// Print returns the depth of the tree. Coloring follows color.NoColor.
func (t *Tree[T]) Print(w io.Writer, label func(T) string) int {
	if t.root == Nil {
		fmt.Fprintln(w, levelColor.Sprint("(empty)"))
		return 0
	}
	return t.printNode(w, t.root, "", rootBranch, label)
}

// internal print - returns the maximum depth of the sub-tree
func (t *Tree[T]) printNode(w io.Writer, h Handle, prefix string, br branch, label func(T) string) int {
	n := &t.nodes[h]
	rd, ld := 0, 0
	if n.right != Nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = t.printNode(w, n.right, prefix+pad, rightBranch, label)
	}
	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	text := fmt.Sprintf("#%d", h)
	if label != nil {
		text = label(n.payload)
	}
	bal := t.balance(h)
	balText := fmt.Sprintf("%+d", bal)
	if bal != 0 {
		balText = leaningColor.Sprint(balText)
	}
	fmt.Fprintf(w, "%s%s%s %s %s\n", levelColor.Sprint(prefix), levelColor.Sprint(edge),
		text, heightColor.Sprintf("h=%d", n.height), balText)
	if n.left != Nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = t.printNode(w, n.left, prefix+pad, leftBranch, label)
	}
	return 1 + max(rd, ld)
}
