package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectra/spectra/repository"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repositories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	repoDir := t.TempDir()
	writeRecord(t, repoDir, "", testTag(), 1)

	path := writeCatalog(t, `
repositories:
  - name: kurucz
    path: `+repoDir+`
  - name: phoenix
    path: /nonexistent/phoenix
`)

	cat, err := repository.LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"kurucz", "phoenix"}, cat.Names())

	idx, err := cat.Query("kurucz")
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
}

func TestCatalogUnknownName(t *testing.T) {
	path := writeCatalog(t, "repositories: []\n")

	cat, err := repository.LoadCatalog(path)
	require.NoError(t, err)

	_, err = cat.Query("kurucz")
	assert.ErrorIs(t, err, repository.ErrUnknownRepository)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := repository.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = repository.LoadCatalog(writeCatalog(t, "repositories: {not: a: list\n"))
	assert.Error(t, err, "malformed yaml")

	_, err = repository.LoadCatalog(writeCatalog(t, `
repositories:
  - name: kurucz
`))
	assert.Error(t, err, "entry without path")
}
