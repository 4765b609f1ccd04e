package repository

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownRepository indicates a repository name missing from the
// catalog.
var ErrUnknownRepository = errors.New("repository: unknown repository name")

// Catalog maps repository names to their on-disk locations. It is
// loaded once from a YAML file and queried read-only thereafter; there
// is deliberately no ambient module-level catalog, callers hold the
// value themselves.
//
// Catalog file format:
//
//	repositories:
//	  - name: kurucz
//	    path: /srv/spectra/kurucz
//	  - name: phoenix
//	    path: /srv/spectra/phoenix
type Catalog struct {
	paths map[string]string
}

type catalogFile struct {
	Repositories []struct {
		Name string `yaml:"name"`
		Path string `yaml:"path"`
	} `yaml:"repositories"`
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("repository: parsing catalog %s: %w", path, err)
	}

	c := &Catalog{paths: make(map[string]string, len(file.Repositories))}
	for _, entry := range file.Repositories {
		if entry.Name == "" || entry.Path == "" {
			return nil, fmt.Errorf("repository: catalog %s: entry needs both name and path", path)
		}
		c.paths[entry.Name] = entry.Path
	}

	return c, nil
}

// Names returns the sorted repository names known to the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.paths))
	for name := range c.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Query scans the named repository and returns its populated index.
func (c *Catalog) Query(name string) (*Index, error) {
	dir, ok := c.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRepository, name)
	}

	return Query(dir)
}
