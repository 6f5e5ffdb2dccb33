package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	if err := demo(&out); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	want := "In-order after inserts: 10 20 25 30 35 50 60 70 80 \n" +
		"In-order after deletes: 10 30 35 50 60 80 \n"
	if out.String() != want {
		t.Errorf("demo output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestShowTree(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	if err := showTree(&out, []int{1, 2, 3, 4, 5, 6, 7}, false); err != nil {
		t.Fatalf("showTree failed: %v", err)
	}
	if !strings.Contains(out.String(), "7 nodes, height 3") {
		t.Errorf("unexpected summary line in\n%s", out.String())
	}
	out.Reset()
	if err := showTree(&out, []int{3, 1, 2}, true); err != nil {
		t.Fatalf("showTree --dot failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "strict digraph") {
		t.Errorf("expected DOT output, got\n%s", out.String())
	}
}

func TestWords(t *testing.T) {
	color.NoColor = true
	name := filepath.Join(t.TempDir(), "hat.txt")
	if err := os.WriteFile(name, []byte("the cat and the hat"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := words(&out, name, 1); err != nil {
		t.Fatalf("words failed: %v", err)
	}
	want := "      2 the\n4 distinct words\n"
	if out.String() != want {
		t.Errorf("words output = %q, want %q", out.String(), want)
	}
}
