package avl

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a payload; if it is nil, nodes are
// labelled with their handles.
//
// Empty child slots are drawn as small circles, so that left and right
// children can be told apart.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	nilid := 0
	emptyChild := func(parent Handle) {
		nilid++
		fmt.Fprintf(&nodelist, "\t\"nil%d\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"nil%d\";\n", parent, nilid)
	}
	for h, payload := range t.All() {
		n := &t.nodes[h]
		text := fmt.Sprintf("#%d", h)
		if label != nil {
			text = label(payload)
		}
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\\nh=%d\"%s];\n", h, escapeDot(text),
			n.height, nodeDotStyles(t.balance(h)))
		if n.left == Nil && n.right == Nil {
			continue
		}
		for _, c := range [2]Handle{n.left, n.right} {
			if c == Nil {
				emptyChild(h)
			} else {
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", h, c)
			}
		}
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("avl DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(balance int) string {
	s := ",style=filled,color=black,shape=circle"
	if balance != 0 {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[1])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[0])
	}
	return s
}

func escapeDot(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

var hexcolors = [...]string{"#a3d7e4", "#FFCCAA"}
