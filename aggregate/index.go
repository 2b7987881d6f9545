package aggregate

import (
	"slices"
)

// The report looks up cells by (kernel, model, arch) without the compiler.

type CellKey struct {
	Kernel string
	Model  string
	Arch   string
}

type Index map[CellKey]*Aggregate

// When several compilers share a cell the first in key order, ie the lowest compiler name, is the
// one indexed.  `aggs` must be sorted, as returned by GroupMean.

func NewIndex(aggs []*Aggregate) Index {
	ix := make(Index, len(aggs))
	for _, a := range aggs {
		k := CellKey{a.Kernel, a.Model, a.Arch}
		if _, found := ix[k]; !found {
			ix[k] = a
		}
	}
	return ix
}

func (ix Index) Lookup(kernel, model, arch string) (*Aggregate, bool) {
	a, found := ix[CellKey{kernel, model, arch}]
	return a, found
}

// Sorted unique kernels.

func Kernels(aggs []*Aggregate) []string {
	ks := make([]string, 0)
	for _, a := range aggs {
		ks = append(ks, a.Kernel)
	}
	slices.Sort(ks)
	return slices.Compact(ks)
}

// Sorted unique models observed for `kernel`.

func Models(aggs []*Aggregate, kernel string) []string {
	ms := make([]string, 0)
	for _, a := range aggs {
		if a.Kernel == kernel {
			ms = append(ms, a.Model)
		}
	}
	slices.Sort(ms)
	return slices.Compact(ms)
}

// Distinct architectures of the aggregated table, in table order.

func AggregateArches(aggs []*Aggregate) []string {
	seen := make(map[string]bool)
	arches := make([]string, 0)
	for _, a := range aggs {
		if !seen[a.Arch] {
			seen[a.Arch] = true
			arches = append(arches, a.Arch)
		}
	}
	return arches
}
