package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644))
	return dir
}

func TestLoadValidManifest(t *testing.T) {
	dir := writeManifest(t, "name: fixture\nversion: \"0.1.0\"\n")
	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fixture", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
}

func TestLoadMissingNameFails(t *testing.T) {
	dir := writeManifest(t, "version: \"0.1.0\"\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMissingVersionFails(t *testing.T) {
	dir := writeManifest(t, "name: fixture\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedDependencyKey(t *testing.T) {
	dir := writeManifest(t, "name: fixture\nversion: \"0.1.0\"\ndependencies:\n  badkey: \"1.0.0\"\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestDependenciesSplitsNameAndPublisher(t *testing.T) {
	dir := writeManifest(t, "name: fixture\nversion: \"0.1.0\"\ndependencies:\n  collections(corelib): \"2.0.0\"\n")
	m, err := Load(dir)
	require.NoError(t, err)

	deps, err := m.Dependencies()
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "collections", deps[0].Name)
	assert.Equal(t, "corelib", deps[0].Publisher)
	assert.Equal(t, "2.0.0", deps[0].Version)
	assert.Empty(t, deps[0].Repo)
	assert.Equal(t, "collections(corelib)", deps[0].Basepath())
}

func TestDependenciesSplitsRepoAtVersion(t *testing.T) {
	dir := writeManifest(t, "name: fixture\nversion: \"0.1.0\"\ndependencies:\n  collections(corelib): \"github.com/corelib/collections@2.0.0\"\n")
	m, err := Load(dir)
	require.NoError(t, err)

	deps, err := m.Dependencies()
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "github.com/corelib/collections", deps[0].Repo)
	assert.Equal(t, "2.0.0", deps[0].Version)
}
