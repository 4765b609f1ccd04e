// Package repository indexes precomputed synthetic spectrum
// repositories and resolves discrete atmosphere-parameter tuples to
// loaded spectra.
//
// A repository is a directory tree of two-column ASCII records
// (wavelength in Å, flux density) whose filenames encode their [Tag]:
//
//	T06000_G45_M+00_R20000_4500_5500.spec
//
// [Query] builds the [Index] for one directory; a [Catalog] maps
// symbolic repository names to directories via a YAML file. Both
// follow a strict load-once/query-many lifecycle: once populated they
// are never mutated, so an index may be shared between concurrent
// lookups without locking.
//
// [Index.NewFromRepository] performs the parameter lookup (exact match
// on temperature, gravity and metallicity; native resolution at least
// the requested one) and returns the record already clipped and
// rebinned to the requested range and resolving power.
package repository
