package alloc

import "github.com/fjl/memsize"

// Footprint reports the retained heap size of v, walking pointers and
// slices the way fjl/memsize does for go-ethereum's own state trie
// memory reports — used by cmd/chunkbench to show a sequence's actual
// memory footprint under a given chunk/branch capacity, rather than a
// guess from item count times sizeof(S).
type Footprint struct {
	Total uint64
}

// Measure scans v and returns its retained size.
func Measure(v interface{}) Footprint {
	sizes := memsize.Scan(v)
	return Footprint{Total: sizes.Total}
}

// String renders the footprint the way memsize.Sizes.Report does.
func (f Footprint) String() string {
	return memsize.Sizes{Total: f.Total}.Report()
}
