package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solarlang/solar/internal/idpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, dir, manifestYAML string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solar.yaml"), []byte(manifestYAML), 0o644))
}

func TestLoadSingleProjectNoDeps(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "name: fixture\nversion: \"0.1.0\"\n")

	info, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Len())

	proj, ok := info.Get(idpath.Self)
	require.True(t, ok)
	assert.Equal(t, root, proj.FSRoot)
	assert.Empty(t, proj.DepMap)
}

func TestLoadResolvesDependencyFromSolarPath(t *testing.T) {
	solarHome := t.TempDir()
	libDir := filepath.Join(solarHome, "libraries", "collections(corelib)", "2.0.0")
	writeProject(t, libDir, "name: collections\npublisher: corelib\nversion: \"2.0.0\"\n")

	root := t.TempDir()
	writeProject(t, root, "name: fixture\nversion: \"0.1.0\"\ndependencies:\n  collections(corelib): \"2.0.0\"\n")

	t.Setenv("SOLAR_PATH", solarHome)

	info, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Len())

	dep, ok := info.Get(idpath.New("collections(corelib)", "2.0.0"))
	require.True(t, ok)
	assert.Equal(t, libDir, dep.FSRoot)

	self, ok := info.Get(idpath.Self)
	require.True(t, ok)
	assert.Contains(t, self.DepMap, "collections")
}

func TestLoadMissingDependencyDirectoryFails(t *testing.T) {
	solarHome := t.TempDir()
	root := t.TempDir()
	writeProject(t, root, "name: fixture\nversion: \"0.1.0\"\ndependencies:\n  collections(corelib): \"2.0.0\"\n")
	t.Setenv("SOLAR_PATH", solarHome)

	_, err := Load(root)
	assert.Error(t, err)
}

func TestLoadMissingManifestFails(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root)
	assert.Error(t, err)
}
