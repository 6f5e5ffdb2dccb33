package wordindex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	counts, err := Count(strings.NewReader("The cat and the hat.\nThe END, the end!"))
	require.NoError(t, err)
	require.NoError(t, counts.Check())
	n, ok := counts.Get("the")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	n, _ = counts.Get("end")
	assert.Equal(t, 2, n)
	assert.False(t, counts.Has("The"))
	assert.False(t, counts.Has("end!"))
	assert.Equal(t, 5, counts.Len())
}

func TestCountEmpty(t *testing.T) {
	counts, err := Count(strings.NewReader(" ... \n"))
	require.NoError(t, err)
	assert.True(t, counts.IsEmpty())
	_, err = Count(nil)
	assert.Error(t, err)
}

// failingReader delivers its text, then fails.
type failingReader struct {
	text string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.text == "" {
		return 0, r.err
	}
	n := copy(p, r.text)
	r.text = r.text[n:]
	return n, nil
}

func TestCountReportsReadError(t *testing.T) {
	diskErr := errors.New("disk failure")
	_, err := Count(&failingReader{text: "alpha beta ", err: diskErr})
	assert.ErrorIs(t, err, diskErr)
	_, err = Count(&failingReader{text: "alpha beta ", err: io.EOF})
	assert.NoError(t, err)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "don't", normalize("\"Don't"))
	assert.Equal(t, "", normalize("--"))
	assert.Equal(t, "42", normalize("(42)"))
	assert.Equal(t, "über", normalize("Über,"))
}

func TestCountHTML(t *testing.T) {
	doc := `<p>Hello <b>world</b>, hello!</p><script>var hello = 1;</script><style>p { }</style>`
	counts, err := CountHTML(strings.NewReader(doc))
	require.NoError(t, err)
	n, _ := counts.Get("hello")
	assert.Equal(t, 2, n)
	assert.True(t, counts.Has("world"))
	assert.False(t, counts.Has("var"))
	assert.Equal(t, 2, counts.Len())
}

func TestTop(t *testing.T) {
	counts, err := Count(strings.NewReader("b a c b a b d"))
	require.NoError(t, err)
	top := Top(counts, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "b", top[0].Key)
	assert.Equal(t, 3, top[0].Value)
	assert.Equal(t, "a", top[1].Key)
	assert.Equal(t, "c", top[2].Key, "equal counts must be alphabetical")
	assert.Len(t, Top(counts, 0), 4)
	assert.Len(t, Top(counts, 10), 4)
	assert.Nil(t, Top(nil, 1))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(txt, []byte("the cat and the hat"), 0o644))
	counts, err := LoadFile(txt)
	require.NoError(t, err)
	n, _ := counts.Get("the")
	assert.Equal(t, 2, n)

	page := filepath.Join(dir, "page.HTML")
	require.NoError(t, os.WriteFile(page, []byte("<h1>Title</h1><p>the <i>title</i></p>"), 0o644))
	counts, err = LoadFile(page)
	require.NoError(t, err)
	n, _ = counts.Get("title")
	assert.Equal(t, 2, n)

	_, err = LoadFile(dir)
	assert.Error(t, err, "directories must be rejected")
	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}
