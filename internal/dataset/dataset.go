// Package dataset bundles the sample statistics file shipped with the binary.
package dataset

import (
	"embed"

	"github.com/roach88/covid19/internal/covid"
)

// DefaultName is the resource name of the bundled file.
const DefaultName = "CovidLive.csv"

//go:embed CovidLive.csv
var files embed.FS

// Source returns the bundled resource called name. Names other than
// DefaultName resolve to a missing resource.
func Source(name string) covid.Source {
	return covid.FSSource(files, name)
}

// Default returns the bundled CovidLive.csv source.
func Default() covid.Source {
	return Source(DefaultName)
}
