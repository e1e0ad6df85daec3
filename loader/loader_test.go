package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGir writes a minimal namespace document into dir.
func writeGir(t *testing.T, dir, name, version, body string, includes ...string) {
	t.Helper()
	doc := `<?xml version="1.0"?>
<repository version="1.2"
            xmlns="http://www.gtk.org/introspection/core/1.0"
            xmlns:c="http://www.gtk.org/introspection/c/1.0"
            xmlns:glib="http://www.gtk.org/introspection/glib/1.0">`
	for _, inc := range includes {
		doc += inc
	}
	doc += fmt.Sprintf(`<namespace name=%q version=%q>%s</namespace></repository>`, name, version, body)

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.gir", name, version))
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestLoad_SingleNamespace(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGir(t, dir, "Demo", "1.0", `<class name="Widget"/>`)

	l := New(WithSearchPath(dir))
	repo, err := l.Load(context.Background(), "Demo", "1.0")
	require.NoError(t, err)

	require.Len(t, repo.Namespaces(), 1)
	assert.NotNil(t, repo.ResolveClass("Demo.Widget"))
}

func TestLoad_FollowsIncludes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGir(t, dir, "Base", "1.0", `<class name="Object"><method name="ref"/></class>`)
	writeGir(t, dir, "App", "1.0",
		`<class name="Document" parent="Base.Object"><method name="save"/></class>`,
		`<include name="Base" version="1.0"/>`)

	l := New(WithSearchPath(dir))
	repo, err := l.Load(context.Background(), "App", "1.0")
	require.NoError(t, err)

	require.Len(t, repo.Namespaces(), 2)
	doc := repo.ResolveClass("App.Document")
	require.NotNil(t, doc)
	assert.True(t, doc.IsSubclassOf("Base.Object"))
	assert.Len(t, doc.AllMethods(), 2)
}

func TestLoad_SharedIncludeLoadedOnce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGir(t, dir, "Core", "1.0", `<class name="Object"/>`)
	writeGir(t, dir, "A", "1.0", `<class name="Left" parent="Core.Object"/>`,
		`<include name="Core" version="1.0"/>`)
	writeGir(t, dir, "B", "1.0", `<class name="Right" parent="Core.Object"/>`,
		`<include name="Core" version="1.0"/>`)

	l := New(WithSearchPath(dir))
	repo, err := l.LoadAll(context.Background(),
		Target{Name: "A", Version: "1.0"},
		Target{Name: "B", Version: "1.0"},
	)
	require.NoError(t, err)

	require.Len(t, repo.Namespaces(), 3)
	core := repo.ResolveClass("Core.Object")
	require.NotNil(t, core)
	assert.Len(t, core.DirectSubclasses(), 2)
}

func TestLoad_IncludeCycle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeGir(t, dir, "A", "1.0", `<class name="Left"/>`, `<include name="B" version="1.0"/>`)
	writeGir(t, dir, "B", "1.0", `<class name="Right"/>`, `<include name="A" version="1.0"/>`)

	l := New(WithSearchPath(dir))
	repo, err := l.Load(context.Background(), "A", "1.0")
	require.NoError(t, err)
	assert.Len(t, repo.Namespaces(), 2)
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()
	l := New(WithSearchPath(t.TempDir()))
	_, err := l.Load(context.Background(), "Nope", "9.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope-9.9.gir")
}

func TestLoad_SearchPathOrder(t *testing.T) {
	t.Parallel()
	first, second := t.TempDir(), t.TempDir()
	writeGir(t, first, "Demo", "1.0", `<class name="FromFirst"/>`)
	writeGir(t, second, "Demo", "1.0", `<class name="FromSecond"/>`)

	l := New(WithSearchPath(first, second))
	repo, err := l.Load(context.Background(), "Demo", "1.0")
	require.NoError(t, err)

	assert.NotNil(t, repo.ResolveClass("Demo.FromFirst"))
	assert.Nil(t, repo.ResolveClass("Demo.FromSecond"))
}

func TestLoad_MalformedDocument(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "Broken-1.0.gir")
	require.NoError(t, os.WriteFile(path, []byte(`<repository/>`), 0o644))

	l := New(WithSearchPath(dir))
	_, err := l.Load(context.Background(), "Broken", "1.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken-1.0.gir")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	girDir := t.TempDir()
	writeGir(t, girDir, "Demo", "1.0", `<class name="Widget"/>`)

	cfgPath := filepath.Join(dir, "girkit.yaml")
	cfg := fmt.Sprintf("searchPaths:\n  - %s\nnamespaces:\n  - name: Demo\n    version: \"1.0\"\n", girDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	loaded, err := LoadConfig(cfgPath)
	require.NoError(t, err)
	require.Len(t, loaded.SearchPaths, 1)
	require.Len(t, loaded.Namespaces, 1)
	assert.Equal(t, Target{Name: "Demo", Version: "1.0"}, loaded.Namespaces[0])

	l := New(WithConfig(loaded))
	repo, err := l.LoadAll(context.Background(), loaded.Namespaces...)
	require.NoError(t, err)
	assert.NotNil(t, repo.ResolveClass("Demo.Widget"))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
