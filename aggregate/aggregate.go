// Combine measurements from all platforms into one mean value per (kernel, model, arch, compiler).
//
// The pipeline is Concat -> NormalizeModels -> GroupMean.  The architecture enumeration used for
// report rows must be taken with Arches before grouping, since it follows input order.

package aggregate

import (
	"cmp"
	"slices"
	"strconv"

	"bwreport/common"
	"bwreport/results"
	"bwreport/tables"
)

type Key struct {
	Kernel   string
	Model    string
	Arch     string
	Compiler string
}

func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Kernel, other.Kernel); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Model, other.Model); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Arch, other.Arch); c != 0 {
		return c
	}
	return cmp.Compare(k.Compiler, other.Compiler)
}

type Aggregate struct {
	Key

	// Mean bandwidth.  After normalization this is a fraction of peak.
	Bandwidth float64

	// Number of measurements averaged.
	Count int

	// Means of the numeric extra columns, by column name.  A column absent from all rows of the
	// group is absent here.  Nil if there are no numeric extras.
	Extra map[string]float64
}

// All rows of all tables, in table order.

func Concat(ts ...*results.Table) []results.Measurement {
	n := 0
	for _, t := range ts {
		n += len(t.Rows)
	}
	ms := make([]results.Measurement, 0, n)
	for _, t := range ts {
		ms = append(ms, t.Rows...)
	}
	return ms
}

// Rewrite legacy model labels (kokkos-sycl) in place.  Returns the number of rows rewritten.

func NormalizeModels(ms []results.Measurement) int {
	n := 0
	for i := range ms {
		if m, found := tables.ModelAlias(ms[i].Model); found {
			ms[i].Model = m
			n++
		}
	}
	return n
}

// Distinct architectures in the order they first appear.

func Arches(ms []results.Measurement) []string {
	seen := make(map[string]bool)
	arches := make([]string, 0)
	for _, m := range ms {
		if !seen[m.Arch] {
			seen[m.Arch] = true
			arches = append(arches, m.Arch)
		}
	}
	return arches
}

type accumulator struct {
	sum   float64
	count int
	extra map[string]*extraAccumulator
}

type extraAccumulator struct {
	sum   float64
	count int
}

// Group by key and average, returning the groups sorted by key.  An extra column is averaged if
// every value present for it anywhere in the input is numeric; otherwise it is dropped.

func GroupMean(ms []results.Measurement) []*Aggregate {
	numeric := numericExtras(ms)

	accs := make(map[Key]*accumulator)
	for _, m := range ms {
		k := Key{m.Kernel, m.Model, m.Arch, m.Compiler}
		acc := accs[k]
		if acc == nil {
			acc = new(accumulator)
			accs[k] = acc
		}
		acc.sum += m.Bandwidth
		acc.count++
		for name, s := range m.Extra {
			if !numeric[name] || s == "" {
				continue
			}
			// Parse can't fail, numericExtras checked it.
			v, _ := strconv.ParseFloat(s, 64)
			if acc.extra == nil {
				acc.extra = make(map[string]*extraAccumulator)
			}
			ea := acc.extra[name]
			if ea == nil {
				ea = new(extraAccumulator)
				acc.extra[name] = ea
			}
			ea.sum += v
			ea.count++
		}
	}

	aggs := make([]*Aggregate, 0, len(accs))
	for k, acc := range accs {
		a := &Aggregate{
			Key:       k,
			Bandwidth: acc.sum / float64(acc.count),
			Count:     acc.count,
		}
		if acc.extra != nil {
			a.Extra = make(map[string]float64, len(acc.extra))
			for name, ea := range acc.extra {
				a.Extra[name] = ea.sum / float64(ea.count)
			}
		}
		aggs = append(aggs, a)
	}
	slices.SortFunc(aggs, func(a, b *Aggregate) int {
		return a.Key.Compare(b.Key)
	})
	return aggs
}

func numericExtras(ms []results.Measurement) map[string]bool {
	numeric := make(map[string]bool)
	for _, m := range ms {
		for name, s := range m.Extra {
			ok, seen := numeric[name]
			if seen && !ok {
				continue
			}
			// An empty cell is a missing value, not a non-number.
			if s == "" {
				if !seen {
					numeric[name] = true
				}
				continue
			}
			_, err := strconv.ParseFloat(s, 64)
			numeric[name] = err == nil
			if err != nil {
				common.Log.Debugf("Column %s is not numeric (%q), not averaged", name, s)
			}
		}
	}
	return numeric
}
