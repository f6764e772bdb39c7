package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *Main {
	t.Helper()
	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "justext.db")
	return m
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), nil, stdout, stderr)
	require.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "justext")
}

func TestRun_Languages_List(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"languages"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "English")
	assert.Empty(t, stderr.String())
}

func TestRun_Languages_Show(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"languages", "English"}, stdout, stderr)
	require.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestRun_Languages_UnknownLanguage(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"languages", "Klingon"}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "unknown")
}

func TestRun_Classify_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "doc.html")
	html := `<html><body><p><a>Home</a> | <a>About</a> | <a>Contact</a> | <a>Privacy</a> | <a>Terms</a></p></body></html>`
	require.NoError(t, writeFile(htmlPath, html))

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify", htmlPath, "--language=", "--stopwords-low=0", "--stopwords-high=0"}, stdout, stderr)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestRun_Classify_JSONFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "doc.html")
	html := `<html><body><h2>Title</h2></body></html>`
	require.NoError(t, writeFile(htmlPath, html))

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify", htmlPath, "--format=json", "--language="}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"text": "Title"`)
	assert.Contains(t, stdout.String(), `"heading": true`)
}

func TestRun_Classify_SavesRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "doc.html")
	html := `<html><body><h2>Title</h2></body></html>`
	require.NoError(t, writeFile(htmlPath, html))

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify", htmlPath, "--save", "--language="}, stdout, stderr)
	require.NoError(t, err)

	stdout.Reset()
	err = m.Run(testContext(), []string{"runs", "list"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), htmlPath)
}

func TestRun_Classify_Batch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	onePath := filepath.Join(dir, "one.html")
	twoPath := filepath.Join(dir, "two.html")
	menu := `<p><a>Home</a> | <a>About</a> | <a>Contact</a> | <a>Privacy</a> | <a>Terms</a></p>`
	require.NoError(t, writeFile(onePath, "<html><body>"+menu+"</body></html>"))
	require.NoError(t, writeFile(twoPath, "<html><body>"+menu+"</body></html>"))

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify", "--batch=" + onePath, "--batch=" + twoPath, "--language="}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "== "+onePath+" ==")
	assert.Contains(t, stdout.String(), "== "+twoPath+" ==")
	assert.Empty(t, stderr.String())
}

func TestRun_Annotate_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "doc.html")
	html := `<html><body><p><a>Home</a> | <a>About</a></p></body></html>`
	require.NoError(t, writeFile(htmlPath, html))

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"annotate", htmlPath, "--language="}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `data-justext-class=`)
}

func TestRun_Classify_RequiresFileOrURL(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"classify"}, stdout, stderr)
	require.Error(t, err)
}
