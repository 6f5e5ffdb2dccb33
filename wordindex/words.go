package wordindex

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/npillmayer/avl/index"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/net/html"
)

// Counts maps words to their number of occurrences.
type Counts = index.Index[string, int]

// Count reads UTF-8 text from r and counts its words.
func Count(r io.Reader) (*Counts, error) {
	counts, err := index.NewOrdered[string, int](index.Config{})
	if err != nil {
		return nil, err
	}
	if err := countInto(counts, r); err != nil {
		return nil, err
	}
	tracer().Debugf("wordindex: %d distinct words", counts.Len())
	return counts, nil
}

func countInto(counts *Counts, r io.Reader) error {
	if r == nil {
		return fmt.Errorf("wordindex: no input")
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		for _, field := range strings.Fields(frag) {
			if w := normalize(field); w != "" {
				n, _ := counts.Get(w)
				counts.Put(w, n+1)
			}
		}
	}
	if err := segmenter.Err(); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("wordindex: segmenter returned error: %s", err)
		return err
	}
	return nil
}

// normalize lower-cases a word and trims everything but letters and digits
// from both ends.
func normalize(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(word)
}

// CountHTML counts the words of the text content of an HTML document.
// Content of script and style elements is ignored.
func CountHTML(r io.Reader) (*Counts, error) {
	nodes, err := html.ParseFragment(r, nil)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return Count(strings.NewReader(b.String()))
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	} else if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// LoadFile counts the words of a file, which must be a regular file.
// Files ending in .html or .htm are treated as HTML.
func LoadFile(name string) (*Counts, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordindex: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Debugf("wordindex: loading %s (%d bytes)", name, fi.Size())
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return CountHTML(file)
	}
	return Count(file)
}

// Top returns the n most frequent words, most frequent first. Words with
// equal counts are in alphabetical order. n <= 0 returns all words.
func Top(counts *Counts, n int) []index.Entry[string, int] {
	if counts == nil {
		return nil
	}
	entries := make([]index.Entry[string, int], 0, counts.Len())
	for w, c := range counts.All() {
		entries = append(entries, index.Entry[string, int]{Key: w, Value: c})
	}
	// stable sort keeps the alphabetical order of the index for equal counts
	slices.SortStableFunc(entries, func(a, b index.Entry[string, int]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
