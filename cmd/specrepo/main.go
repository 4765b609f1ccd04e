// Command specrepo lists the records available in a synthetic
// spectrum repository.
//
// Usage:
//
//	specrepo -dir /srv/spectra/kurucz
//	specrepo -catalog repositories.yaml -repo kurucz
//	specrepo -catalog repositories.yaml -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/spectra/repository"
)

func main() {
	var (
		dir     = flag.String("dir", "", "repository directory to scan")
		catalog = flag.String("catalog", "", "catalog file mapping repository names to directories")
		repo    = flag.String("repo", "", "repository name to look up in the catalog")
		list    = flag.Bool("list", false, "list repository names known to the catalog")
	)
	flag.Parse()

	if err := run(*dir, *catalog, *repo, *list); err != nil {
		fmt.Fprintln(os.Stderr, "specrepo:", err)
		os.Exit(1)
	}
}

func run(dir, catalogPath, repo string, list bool) error {
	switch {
	case list:
		if catalogPath == "" {
			return fmt.Errorf("-list requires -catalog")
		}

		cat, err := repository.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}

		for _, name := range cat.Names() {
			fmt.Println(name)
		}
		return nil

	case dir != "":
		idx, err := repository.Query(dir)
		if err != nil {
			return err
		}
		printIndex(idx)
		return nil

	case catalogPath != "" && repo != "":
		cat, err := repository.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}

		idx, err := cat.Query(repo)
		if err != nil {
			return err
		}
		printIndex(idx)
		return nil

	default:
		return fmt.Errorf("need -dir, or -catalog with -repo (see -h)")
	}
}

func printIndex(idx *repository.Index) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TEFF [K]\tLOG G\t[M/H]\tR\tCOVERAGE [Å]")

	for _, tag := range idx.Tags() {
		fmt.Fprintf(w, "%d\t%.1f\t%+.1f\t%d\t%d – %d\n",
			tag.Temperature, float64(tag.Gravity)/10, float64(tag.Metallicity)/10,
			tag.Resolution, tag.LambdaMin, tag.LambdaMax)
	}

	w.Flush()
	fmt.Printf("%d records\n", idx.Len())
}
