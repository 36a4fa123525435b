// Package generate enumerates pitch class sets under constraints: by
// interval vector, by Forte number, by required or forbidden content, plus
// the classic hexachordal-combinatorics searches.
package generate

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/pcset"
)

// Generator enumerates sets against a shared classification catalog.
type Generator struct {
	catalog *forte.Catalog
}

func NewGenerator(catalog *forte.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// RandomSet draws a random set of the given cardinality from rng.
func (g *Generator) RandomSet(cardinality int, rng *rand.Rand) (pcset.PitchClassSet, error) {
	if cardinality < 1 || cardinality > 12 {
		return pcset.PitchClassSet{}, fmt.Errorf("cardinality must be between 1 and 12, got %d", cardinality)
	}
	return pcset.New(rng.Perm(12)[:cardinality]...), nil
}

// SetsByIntervalVector returns every catalog set with the given vector,
// across all cardinalities, in table order.
func (g *Generator) SetsByIntervalVector(vector [6]int) []pcset.PitchClassSet {
	var res []pcset.PitchClassSet
	for card := 1; card <= 12; card++ {
		for _, cs := range g.catalog.SetsByCardinality(card) {
			if cs.Set.IntervalVector() == vector {
				res = append(res, cs.Set)
			}
		}
	}
	return res
}

// SetsByForteNumber returns every transposition and inversion of the
// number's prime form, deduplicated. Unknown numbers yield nil.
func (g *Generator) SetsByForteNumber(number string) []pcset.PitchClassSet {
	base, ok := g.catalog.SetForNumber(number)
	if !ok {
		return nil
	}

	var res []pcset.PitchClassSet
	seen := make(map[string]bool)
	add := func(s pcset.PitchClassSet) {
		key := fmt.Sprint(s.Classes())
		if !seen[key] {
			seen[key] = true
			res = append(res, s)
		}
	}
	for n := 0; n < 12; n++ {
		add(base.Transposition(n))
	}
	for n := 0; n < 12; n++ {
		add(base.Inversion(n))
	}
	return res
}

// Constraints filters enumerated sets. Interval classes are 1-6; pitch
// classes 0-11. Empty slices impose nothing.
type Constraints struct {
	RequiredIntervals  []int
	ForbiddenIntervals []int
	RequiredClasses    []int
	ForbiddenClasses   []int
}

func (c Constraints) admits(s pcset.PitchClassSet) bool {
	for _, pc := range c.RequiredClasses {
		if !s.Contains(pc) {
			return false
		}
	}
	for _, pc := range c.ForbiddenClasses {
		if s.Contains(pc) {
			return false
		}
	}
	if len(c.RequiredIntervals) == 0 && len(c.ForbiddenIntervals) == 0 {
		return true
	}
	vec := s.IntervalVector()
	for _, ic := range c.RequiredIntervals {
		if ic < 1 || ic > 6 {
			continue
		}
		if vec[ic-1] == 0 {
			return false
		}
	}
	for _, ic := range c.ForbiddenIntervals {
		if ic < 1 || ic > 6 {
			continue
		}
		if vec[ic-1] > 0 {
			return false
		}
	}
	return true
}

// SetsWithConstraints enumerates every set of the given cardinality that
// satisfies the constraints. Cardinality outside 1-12 yields nil.
func (g *Generator) SetsWithConstraints(cardinality int, c Constraints) []pcset.PitchClassSet {
	if cardinality < 1 || cardinality > 12 {
		return nil
	}
	var res []pcset.PitchClassSet
	for _, combo := range combin.Combinations(12, cardinality) {
		s := pcset.New(combo...)
		if c.admits(s) {
			res = append(res, s)
		}
	}
	return res
}

// HexachordalCombinatorialPairs returns every pair of catalog hexachords
// whose union is the full chromatic aggregate. Every hexachord key in the
// table contains pitch class 0, so no two can be disjoint and the result
// is empty over the shipped catalog.
func (g *Generator) HexachordalCombinatorialPairs() [][2]pcset.PitchClassSet {
	hexachords := g.catalog.SetsByCardinality(6)
	var pairs [][2]pcset.PitchClassSet
	for i, a := range hexachords {
		for _, b := range hexachords[i+1:] {
			if a.Set.Union(b.Set).Cardinality() == 12 {
				pairs = append(pairs, [2]pcset.PitchClassSet{a.Set, b.Set})
			}
		}
	}
	return pairs
}

// AggregateSets returns the catalog sets of the given cardinality that form
// the full aggregate with their complement.
func (g *Generator) AggregateSets(cardinality int) []pcset.PitchClassSet {
	if cardinality < 1 || cardinality > 11 {
		return nil
	}
	var res []pcset.PitchClassSet
	for _, cs := range g.catalog.SetsByCardinality(cardinality) {
		if cs.Set.Union(cs.Set.Complement()).Cardinality() == 12 {
			res = append(res, cs.Set)
		}
	}
	return res
}
