package repository

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cwbudde/algo-spectra/spectra/dispersion"
	"github.com/cwbudde/algo-spectra/spectra/rebin"
	"github.com/cwbudde/algo-spectra/spectra/spectrum"
)

// Errors returned by repository queries and lookups.
var (
	ErrNotFound   = errors.New("repository: no record matches the requested parameters")
	ErrOutOfRange = errors.New("repository: requested range outside every matching record's coverage")
	ErrBadRecord  = errors.New("repository: malformed record file")
)

// record pairs a tag with the file (relative to the repository root)
// that holds its data.
type record struct {
	tag  Tag
	path string
}

// Index is the populated set of records discoverable in one
// repository directory. It is built once by [Query] and read-only
// afterwards, so it may be shared freely between concurrent lookups.
type Index struct {
	dir     string
	records []record
}

// Query scans the repository rooted at dir for spectrum records and
// returns the populated index. Records may be nested in
// subdirectories (repositories are often laid out per temperature);
// files whose names do not follow the record naming convention are
// skipped.
func Query(dir string) (*Index, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository: %s is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.spec")
	if err != nil {
		return nil, fmt.Errorf("repository: scanning %s: %w", dir, err)
	}

	idx := &Index{dir: dir}

	for _, m := range matches {
		tag, err := ParseTag(filepath.Base(m))
		if err != nil {
			continue
		}

		idx.records = append(idx.records, record{tag: tag, path: m})
	}

	sort.Slice(idx.records, func(i, j int) bool {
		a, b := idx.records[i].tag, idx.records[j].tag
		if a.Temperature != b.Temperature {
			return a.Temperature < b.Temperature
		}
		if a.Gravity != b.Gravity {
			return a.Gravity < b.Gravity
		}
		if a.Metallicity != b.Metallicity {
			return a.Metallicity < b.Metallicity
		}
		return a.Resolution < b.Resolution
	})

	return idx, nil
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Tags returns a copy of all indexed tags in index order.
func (idx *Index) Tags() []Tag {
	tags := make([]Tag, len(idx.records))
	for i, rec := range idx.records {
		tags[i] = rec.tag
	}
	return tags
}

// NewFromRepository looks up the record for the discrete atmosphere
// parameters (T in K, g as log g × 10, M as [M/H] × 10), loads it, and
// returns it resampled onto a logarithmic grid over [ll, ul] at
// resolving power R.
//
// The physical parameters require an exact match on the repository
// grid. R must not exceed the record's native resolution, since
// resolution can only be degraded, never invented; among records with
// sufficient resolution the one closest to R is chosen, minimizing the
// amount of downsampling. No parameter match fails with ErrNotFound;
// matching records exist but none covers [ll, ul] fails with
// ErrOutOfRange.
func (idx *Index) NewFromRepository(R float64, T, g, M int, ll, ul float64) (*spectrum.Spectrum, error) {
	if ll >= ul || ll <= 0 {
		return nil, rebin.ErrInvalidRange
	}
	if R <= 0 {
		return nil, rebin.ErrInvalidResolution
	}

	var candidates []record
	for _, rec := range idx.records {
		if rec.tag.Temperature == T && rec.tag.Gravity == g && rec.tag.Metallicity == M {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: T=%d g=%d M=%d", ErrNotFound, T, g, M)
	}

	covering := candidates[:0:0]
	for _, rec := range candidates {
		if float64(rec.tag.LambdaMin) <= ll && ul <= float64(rec.tag.LambdaMax) {
			covering = append(covering, rec)
		}
	}
	if len(covering) == 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrOutOfRange, ll, ul)
	}

	best := record{}
	for _, rec := range covering {
		if float64(rec.tag.Resolution) < R {
			continue
		}
		if best.path == "" || rec.tag.Resolution < best.tag.Resolution {
			best = rec
		}
	}
	if best.path == "" {
		return nil, fmt.Errorf("%w: no record with native resolution >= %g", ErrNotFound, R)
	}

	src, err := idx.load(best)
	if err != nil {
		return nil, err
	}

	return rebin.Rebin(src, dispersion.TypeLog, ll, ul, R)
}

// load reads a record file into a spectrum and stamps it with the
// tag's native resolution.
func (idx *Index) load(rec record) (*spectrum.Spectrum, error) {
	f, err := os.Open(filepath.Join(idx.dir, filepath.FromSlash(rec.path)))
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	defer f.Close()

	var wl, flux []float64

	scanner := bufio.NewScanner(f)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s:%d", ErrBadRecord, rec.path, line)
		}

		w, err1 := strconv.ParseFloat(fields[0], 64)
		x, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %s:%d", ErrBadRecord, rec.path, line)
		}

		wl = append(wl, w)
		flux = append(flux, x)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("repository: reading %s: %w", rec.path, err)
	}

	s, err := spectrum.FromColumns(wl, flux)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRecord, rec.path, err)
	}

	if err := s.SetResolution(float64(rec.tag.Resolution)); err != nil {
		return nil, err
	}

	return s, nil
}
