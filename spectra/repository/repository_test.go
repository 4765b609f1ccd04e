package repository_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
	"github.com/cwbudde/algo-spectra/spectra/repository"
	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// writeRecord materializes a flat-continuum record for tag under dir,
// sampled at 0.2 Å, optionally nested in a subdirectory.
func writeRecord(t *testing.T, dir, subdir string, tag repository.Tag, level float64) {
	t.Helper()

	target := dir
	if subdir != "" {
		target = filepath.Join(dir, subdir)
		require.NoError(t, os.MkdirAll(target, 0o755))
	}

	f, err := os.Create(filepath.Join(target, tag.Filename()))
	require.NoError(t, err)
	defer f.Close()

	fmt.Fprintln(f, "# synthetic test record")
	for wl := float64(tag.LambdaMin); wl <= float64(tag.LambdaMax); wl += 0.2 {
		fmt.Fprintf(f, "%.4f %.6f\n", wl, level)
	}
}

func testTag() repository.Tag {
	return repository.Tag{
		Resolution:  20000,
		LambdaMin:   4500,
		LambdaMax:   5500,
		Temperature: 6000,
		Metallicity: 0,
		Gravity:     45,
	}
}

func TestParseTagRoundTrip(t *testing.T) {
	tags := []repository.Tag{
		testTag(),
		{Resolution: 50000, LambdaMin: 3000, LambdaMax: 9000, Temperature: 4750, Metallicity: -5, Gravity: 30},
		{Resolution: 10000, LambdaMin: 4000, LambdaMax: 5000, Temperature: 12500, Metallicity: 10, Gravity: 40},
	}

	for _, want := range tags {
		got, err := repository.ParseTag(want.Filename())
		require.NoError(t, err, want.Filename())
		assert.Equal(t, want, got)
	}
}

func TestParseTagRejectsJunk(t *testing.T) {
	for _, name := range []string{
		"readme.txt",
		"foo.spec",
		"T06000_G45.spec",
		"T00000_G45_M+00_R20000_4500_5500.spec",
		"T06000_G45_M+00_R20000_5500_4500.spec",
	} {
		_, err := repository.ParseTag(name)
		assert.ErrorIs(t, err, repository.ErrBadRecordName, name)
	}
}

func TestQueryIndexesNestedRecords(t *testing.T) {
	dir := t.TempDir()

	a := testTag()
	b := testTag()
	b.Temperature = 5500
	c := testTag()
	c.Gravity = 40
	c.Resolution = 50000

	writeRecord(t, dir, "", a, 1)
	writeRecord(t, dir, "T5500", b, 1)
	writeRecord(t, dir, "T6000", c, 1)

	// Non-record files are skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("spectra"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.spec"), []byte("not a record"), 0o644))

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())

	tags := idx.Tags()
	require.Len(t, tags, 3)
	assert.Equal(t, 5500, tags[0].Temperature, "tags sorted by temperature first")
}

func TestQueryErrors(t *testing.T) {
	_, err := repository.Query(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = repository.Query(file)
	assert.Error(t, err)
}

func TestNewFromRepository(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "", testTag(), 2)

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	s, err := idx.NewFromRepository(10000, 6000, 45, 0, 4800, 5200)
	require.NoError(t, err)

	assert.Equal(t, dispersion.TypeLog, s.Dispersion())
	assert.InDelta(t, 10000, s.Resolution(), 1e-9)
	assert.InDelta(t, 10000, s.Sampling(), 1e-9)

	ll, ul := s.Bounds()
	assert.InDelta(t, 4800, ll, 1e-9)
	assert.LessOrEqual(t, ul, 5200.6)

	flux, err := s.Column(spectrum.ColFlux)
	require.NoError(t, err)
	for _, v := range flux {
		assert.InDelta(t, 2, v, 1e-6)
	}
}

func TestNewFromRepositoryNotFound(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "", testTag(), 1)

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	_, err = idx.NewFromRepository(10000, 5000, 45, 0, 4800, 5200)
	assert.ErrorIs(t, err, repository.ErrNotFound, "unknown temperature")

	_, err = idx.NewFromRepository(10000, 6000, 45, 5, 4800, 5200)
	assert.ErrorIs(t, err, repository.ErrNotFound, "unknown metallicity")
}

func TestNewFromRepositoryOutOfRange(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "", testTag(), 1)

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	_, err = idx.NewFromRepository(10000, 6000, 45, 0, 6000, 7000)
	assert.ErrorIs(t, err, repository.ErrOutOfRange)
}

func TestNewFromRepositoryCannotInventResolution(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "", testTag(), 1)

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	// Native resolution is 20000; asking for more must fail.
	_, err = idx.NewFromRepository(50000, 6000, 45, 0, 4800, 5200)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNewFromRepositoryPrefersNearestResolution(t *testing.T) {
	dir := t.TempDir()

	low := testTag()
	high := testTag()
	high.Resolution = 100000

	writeRecord(t, dir, "", low, 1)
	writeRecord(t, dir, "", high, 1)

	idx, err := repository.Query(dir)
	require.NoError(t, err)

	// Both records qualify at R = 10000; the R = 20000 one needs the
	// least degradation and wins. Its flat continuum is all we can
	// observe from outside, so probe via the record count instead:
	// lookups must succeed right up to the higher native resolution.
	_, err = idx.NewFromRepository(10000, 6000, 45, 0, 4800, 5200)
	require.NoError(t, err)

	_, err = idx.NewFromRepository(60000, 6000, 45, 0, 4800, 5200)
	require.NoError(t, err, "only the R = 100000 record can serve this")
}
