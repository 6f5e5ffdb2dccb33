package avl

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestToDot(t *testing.T) {
	tree := scenarioA(t)
	var out bytes.Buffer
	if err := tree.ToDot(&out, strconv.Itoa); err != nil {
		t.Fatalf("dot output failed: %v", err)
	}
	dot := out.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}
	// every node but the root has an incoming edge
	if edges := strings.Count(dot, "->"); edges < tree.Len()-1 {
		t.Fatalf("expected at least %d edges, have %d", tree.Len()-1, edges)
	}
	if !strings.Contains(dot, `label="50\nh=4"`) {
		t.Fatalf("root label missing:\n%s", dot)
	}
}

func TestToDotEscapesLabels(t *testing.T) {
	tree := &Tree[string]{}
	tree.Insert(Nil, Left, `say "hi"`)
	var out bytes.Buffer
	if err := tree.ToDot(&out, func(s string) string { return s }); err != nil {
		t.Fatalf("dot output failed: %v", err)
	}
	if !strings.Contains(out.String(), `say \"hi\"`) {
		t.Fatalf("label not escaped:\n%s", out.String())
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true
	tree := scenarioA(t)
	var out bytes.Buffer
	depth := tree.Print(&out, strconv.Itoa)
	if depth != tree.Height() {
		t.Fatalf("print depth %d != height %d", depth, tree.Height())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != tree.Len() {
		t.Fatalf("expected one line per node, have %d:\n%s", len(lines), out.String())
	}
	// right subtrees are printed on top
	if !strings.Contains(lines[0], "80") || !strings.Contains(lines[len(lines)-1], "10") {
		t.Fatalf("unexpected line order:\n%s", out.String())
	}
	t.Logf("\n%s", out.String())
}

func TestPrintEmpty(t *testing.T) {
	color.NoColor = true
	var tree Tree[int]
	var out bytes.Buffer
	if depth := tree.Print(&out, nil); depth != 0 {
		t.Fatalf("depth of empty tree = %d", depth)
	}
	if !strings.Contains(out.String(), "empty") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
