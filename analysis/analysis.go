// Package analysis builds full analytical reports over pitch class sets:
// classification, complement, the complete transformation families, and
// classified subset/superset tables. The result structs carry JSON tags so
// the HTTP layer can return them directly.
package analysis

import (
	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/pcset"
)

// Analyzer runs reports against a shared classification catalog.
type Analyzer struct {
	catalog *forte.Catalog
}

func NewAnalyzer(catalog *forte.Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// SetSummary is the classification snapshot of a single set.
type SetSummary struct {
	PitchClasses   []int  `json:"pitch_classes"`
	Cardinality    int    `json:"cardinality"`
	PrimeForm      []int  `json:"prime_form"`
	IntervalVector [6]int `json:"interval_vector"`
	ForteNumber    string `json:"forte_number,omitempty"`
}

// ClassifiedPCS is a set with its Forte number, for subset/superset tables.
type ClassifiedPCS struct {
	PitchClasses []int  `json:"pitch_classes"`
	ForteNumber  string `json:"forte_number,omitempty"`
}

// Analysis is the full report for one set.
type Analysis struct {
	SetSummary
	Complement     SetSummary              `json:"complement"`
	Transpositions [][]int                 `json:"transpositions"` // index n holds Tn
	Inversions     [][]int                 `json:"inversions"`     // index n holds In
	Rotations      [][]int                 `json:"rotations"`      // playback orders
	Subsets        map[int][]ClassifiedPCS `json:"subsets,omitempty"`
	Supersets      map[int][]ClassifiedPCS `json:"supersets,omitempty"`
	SimilarSets    []string                `json:"similar_sets,omitempty"`
}

func (a *Analyzer) summarize(s pcset.PitchClassSet) SetSummary {
	number, _ := a.catalog.ForteNumber(s)
	return SetSummary{
		PitchClasses:   s.Classes(),
		Cardinality:    s.Cardinality(),
		PrimeForm:      s.PrimeForm(),
		IntervalVector: s.IntervalVector(),
		ForteNumber:    number,
	}
}

func (a *Analyzer) classify(sets []pcset.PitchClassSet) []ClassifiedPCS {
	res := make([]ClassifiedPCS, 0, len(sets))
	for _, s := range sets {
		number, _ := a.catalog.ForteNumber(s)
		res = append(res, ClassifiedPCS{PitchClasses: s.Classes(), ForteNumber: number})
	}
	return res
}

// Analyze produces the comprehensive report for a set: summary, complement,
// all 12 transpositions and inversions, every rotation, classified subsets
// and supersets of every size, and similar sets by shared interval vector.
func (a *Analyzer) Analyze(s pcset.PitchClassSet) Analysis {
	res := Analysis{
		SetSummary: a.summarize(s),
		Complement: a.summarize(s.Complement()),
	}

	for n := 0; n < 12; n++ {
		res.Transpositions = append(res.Transpositions, s.Transposition(n).Classes())
		res.Inversions = append(res.Inversions, s.Inversion(n).Classes())
	}
	for n := 0; n < s.Cardinality(); n++ {
		res.Rotations = append(res.Rotations, s.Rotation(n).PlaybackOrder())
	}

	if s.Cardinality() > 1 {
		res.Subsets = make(map[int][]ClassifiedPCS)
		for size := 1; size < s.Cardinality(); size++ {
			res.Subsets[size] = a.classify(s.Subsets(size))
		}
	}
	if s.Cardinality() < 12 && s.Cardinality() > 0 {
		res.Supersets = make(map[int][]ClassifiedPCS)
		for size := s.Cardinality() + 1; size <= 12; size++ {
			res.Supersets[size] = a.classify(s.Supersets(size))
		}
	}

	if res.ForteNumber != "" {
		res.SimilarSets = a.catalog.FindSimilar(res.ForteNumber)
	}
	return res
}

// Comparison relates two sets: shared forms, containment, set algebra, and
// the R similarity flags.
type Comparison struct {
	Set1 SetSummary `json:"set1"`
	Set2 SetSummary `json:"set2"`

	SamePrimeForm      bool `json:"same_prime_form"`
	SameIntervalVector bool `json:"same_interval_vector"`
	SameForteNumber    bool `json:"same_forte_number"`
	Set1SubsetOfSet2   bool `json:"set1_subset_of_set2"`
	Set2SubsetOfSet1   bool `json:"set2_subset_of_set1"`

	Intersection []int `json:"intersection"`
	Union        []int `json:"union"`

	Similarity pcset.Similarity `json:"similarity_relations"`
}

// Compare builds the two-set relation report.
func (a *Analyzer) Compare(s1, s2 pcset.PitchClassSet) Comparison {
	sum1 := a.summarize(s1)
	sum2 := a.summarize(s2)
	return Comparison{
		Set1:               sum1,
		Set2:               sum2,
		SamePrimeForm:      pcset.New(sum1.PrimeForm...).Equal(pcset.New(sum2.PrimeForm...)),
		SameIntervalVector: sum1.IntervalVector == sum2.IntervalVector,
		SameForteNumber:    sum1.ForteNumber != "" && sum1.ForteNumber == sum2.ForteNumber,
		Set1SubsetOfSet2:   s1.IsSubsetOf(s2),
		Set2SubsetOfSet1:   s2.IsSubsetOf(s1),
		Intersection:       s1.Intersection(s2).Classes(),
		Union:              s1.Union(s2).Classes(),
		Similarity:         s1.SimilarityRelation(s2),
	}
}

// CommonSubsets finds the k-element sets contained in every given set.
func CommonSubsets(sets []pcset.PitchClassSet, k int) []pcset.PitchClassSet {
	if len(sets) == 0 {
		return nil
	}
	var common []pcset.PitchClassSet
	for _, sub := range sets[0].Subsets(k) {
		inAll := true
		for _, s := range sets[1:] {
			if !sub.IsSubsetOf(s) {
				inAll = false
				break
			}
		}
		if inAll {
			common = append(common, sub)
		}
	}
	return common
}

// CommonSupersets finds the k-element sets containing every given set.
func CommonSupersets(sets []pcset.PitchClassSet, k int) []pcset.PitchClassSet {
	if len(sets) == 0 {
		return nil
	}
	var common []pcset.PitchClassSet
	for _, sup := range sets[0].Supersets(k) {
		containsAll := true
		for _, s := range sets[1:] {
			if !s.IsSubsetOf(sup) {
				containsAll = false
				break
			}
		}
		if containsAll {
			common = append(common, sup)
		}
	}
	return common
}
