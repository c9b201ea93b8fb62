package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureProject(t *testing.T, mainSrc string) string {
	t.Helper()
	dir := t.TempDir()

	manifest := "name: fixture\nversion: \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solar.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.sol"), []byte(mainSrc), 0o644))
	return dir
}

func TestBuildHelloWorld(t *testing.T) {
	dir := writeFixtureProject(t, `fn main() = buildin_print "hello\n"`)

	var stdout, stderr bytes.Buffer
	err := build(&stdout, &stderr, dir)
	assert.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "ok")
}

func TestBuildMissingMainFails(t *testing.T) {
	dir := writeFixtureProject(t, `fn notMain() = buildin_print "hello\n"`)

	var stdout, stderr bytes.Buffer
	err := build(&stdout, &stderr, dir)
	assert.Error(t, err)
}

func TestBuildTypeErrorReportsDiagnostic(t *testing.T) {
	dir := writeFixtureProject(t, `fn main() = buildin_print 7`)

	var stdout, stderr bytes.Buffer
	err := build(&stdout, &stderr, dir)
	assert.Error(t, err)
	assert.NotEmpty(t, stderr.String())
}
