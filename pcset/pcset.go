// Package pcset implements pitch class sets and the transformations from
// Allen Forte's atonal set theory. Pitch classes are integers 0-11
// (0=C, 1=C#, ..., 11=B); all arithmetic is modulo 12.
package pcset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/combin"
)

// PitchClassSet is a finite subset of the 12 pitch classes. The zero value
// is the empty set. Every operation returns a new set; nothing mutates in
// place. Equality is always order-independent, but a set additionally
// carries a playback order (see PlaybackOrder) so that retrograde and
// rotation results stay meaningful for sequential playback.
type PitchClassSet struct {
	classes  []int // sorted, normalized to 0-11, deduplicated
	playback []int // sequence for playback; nil means sorted order
}

// New builds a set from any integers. Values are normalized mod 12 and
// deduplicated; out-of-range input is not an error by design (strict
// validation belongs to the parse layer).
func New(pcs ...int) PitchClassSet {
	seen := make(map[int]bool)
	var classes []int
	for _, pc := range pcs {
		v := mod12(pc)
		if !seen[v] {
			seen[v] = true
			classes = append(classes, v)
		}
	}
	sort.Ints(classes)
	return PitchClassSet{classes: classes}
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

// Classes returns the pitch classes in sorted order.
func (s PitchClassSet) Classes() []int {
	res := make([]int, len(s.classes))
	copy(res, s.classes)
	return res
}

// PlaybackOrder returns the pitch classes in playback order. This differs
// from Classes only for retrograde and rotation results.
func (s PitchClassSet) PlaybackOrder() []int {
	if s.playback == nil {
		return s.Classes()
	}
	res := make([]int, len(s.playback))
	copy(res, s.playback)
	return res
}

// Cardinality is the number of distinct pitch classes in the set.
func (s PitchClassSet) Cardinality() int {
	return len(s.classes)
}

// Contains reports whether the set contains the given pitch class.
func (s PitchClassSet) Contains(pc int) bool {
	v := mod12(pc)
	for _, c := range s.classes {
		if c == v {
			return true
		}
	}
	return false
}

// Add returns a new set with the pitch class added.
func (s PitchClassSet) Add(pc int) PitchClassSet {
	return New(append(s.Classes(), pc)...)
}

// Remove returns a new set with the pitch class removed.
func (s PitchClassSet) Remove(pc int) PitchClassSet {
	v := mod12(pc)
	var res []int
	for _, c := range s.classes {
		if c != v {
			res = append(res, c)
		}
	}
	return New(res...)
}

// Equal reports whether both sets contain the same pitch classes. Playback
// order never affects equality.
func (s PitchClassSet) Equal(other PitchClassSet) bool {
	if len(s.classes) != len(other.classes) {
		return false
	}
	for i := range s.classes {
		if s.classes[i] != other.classes[i] {
			return false
		}
	}
	return true
}

func (s PitchClassSet) String() string {
	return fmt.Sprintf("PCS(%v)", s.classes)
}

// Transposition applies T-n: every pitch class shifted by n semitones
// mod 12. Negative n is fine. Cardinality is preserved since transposition
// is a bijection on the 12 pitch classes.
func (s PitchClassSet) Transposition(n int) PitchClassSet {
	res := make([]int, 0, len(s.classes))
	for _, pc := range s.classes {
		res = append(res, pc+n)
	}
	return New(res...)
}

// Inversion applies I-n: every pitch class e becomes (n - e) mod 12.
// Inversion around 0 is the plain inversion used by PrimeForm.
func (s PitchClassSet) Inversion(n int) PitchClassSet {
	res := make([]int, 0, len(s.classes))
	for _, pc := range s.classes {
		res = append(res, n-pc)
	}
	return New(res...)
}

// Rotation cyclically permutes the sorted element sequence by n positions.
// Membership is unchanged; the rotated sequence becomes the playback order.
func (s PitchClassSet) Rotation(n int) PitchClassSet {
	if len(s.classes) == 0 {
		return PitchClassSet{}
	}
	k := len(s.classes)
	n = ((n % k) + k) % k
	rotated := make([]int, 0, k)
	rotated = append(rotated, s.classes[n:]...)
	rotated = append(rotated, s.classes[:n]...)
	res := New(rotated...)
	res.playback = rotated
	return res
}

// Retrograde reverses the playback order. The set contents are unchanged,
// so the result compares equal to the original.
func (s PitchClassSet) Retrograde() PitchClassSet {
	order := s.PlaybackOrder()
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	res := New(order...)
	if len(order) > 0 {
		res.playback = order
	}
	return res
}

// RetrogradeInversion applies I-n first, then retrogrades the result.
func (s PitchClassSet) RetrogradeInversion(n int) PitchClassSet {
	return s.Inversion(n).Retrograde()
}

// PrimeForm computes Forte's canonical form: the lexicographically smallest
// sequence among all rotations of the sorted set and all rotations of its
// inversion around 0. The empty set yields an empty prime form.
func (s PitchClassSet) PrimeForm() []int {
	if len(s.classes) == 0 {
		return []int{}
	}

	best := s.Classes()
	consider := func(seq []int) {
		for i := 0; i < len(seq); i++ {
			rotated := append(append([]int{}, seq[i:]...), seq[:i]...)
			if lessSeq(rotated, best) {
				best = rotated
			}
		}
	}
	consider(s.classes)
	consider(s.Inversion(0).classes)
	return best
}

func lessSeq(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// IntervalVector counts interval classes 1-6 over all unordered pairs.
// Index 0 holds ic1 (semitone), index 5 holds ic6 (tritone). The vector is
// invariant under transposition and inversion. Sets of cardinality below 2
// yield the zero vector.
func (s PitchClassSet) IntervalVector() [6]int {
	var vec [6]int
	for i := 0; i < len(s.classes); i++ {
		for j := i + 1; j < len(s.classes); j++ {
			interval := s.classes[j] - s.classes[i]
			if 12-interval < interval {
				interval = 12 - interval
			}
			vec[interval-1]++
		}
	}
	return vec
}

// Complement returns the 12 pitch classes not in the set.
func (s PitchClassSet) Complement() PitchClassSet {
	var res []int
	for pc := 0; pc < 12; pc++ {
		if !s.Contains(pc) {
			res = append(res, pc)
		}
	}
	return New(res...)
}

// Union returns the set of pitch classes in either set.
func (s PitchClassSet) Union(other PitchClassSet) PitchClassSet {
	return New(append(s.Classes(), other.classes...)...)
}

// Intersection returns the set of pitch classes common to both sets.
func (s PitchClassSet) Intersection(other PitchClassSet) PitchClassSet {
	var res []int
	for _, pc := range s.classes {
		if other.Contains(pc) {
			res = append(res, pc)
		}
	}
	return New(res...)
}

// IsSubsetOf reports whether every pitch class of s is in other.
func (s PitchClassSet) IsSubsetOf(other PitchClassSet) bool {
	for _, pc := range s.classes {
		if !other.Contains(pc) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether s contains every pitch class of other.
func (s PitchClassSet) IsSupersetOf(other PitchClassSet) bool {
	return other.IsSubsetOf(s)
}

// Subsets returns all k-element subsets of the set's own members.
// k outside [0, cardinality] yields nil.
func (s PitchClassSet) Subsets(k int) []PitchClassSet {
	if k < 0 || k > len(s.classes) {
		return nil
	}
	if k == 0 {
		return []PitchClassSet{{}}
	}
	var res []PitchClassSet
	for _, idxs := range combin.Combinations(len(s.classes), k) {
		pcs := make([]int, 0, k)
		for _, i := range idxs {
			pcs = append(pcs, s.classes[i])
		}
		res = append(res, New(pcs...))
	}
	return res
}

// Supersets returns all k-element sets containing this set, built by
// combining the members with choices from the complement. k below the
// cardinality or above 12 yields nil.
func (s PitchClassSet) Supersets(k int) []PitchClassSet {
	if k < len(s.classes) || k > 12 {
		return nil
	}
	if k == len(s.classes) {
		return []PitchClassSet{New(s.classes...)}
	}
	remaining := s.Complement().Classes()
	var res []PitchClassSet
	for _, idxs := range combin.Combinations(len(remaining), k-len(s.classes)) {
		pcs := s.Classes()
		for _, i := range idxs {
			pcs = append(pcs, remaining[i])
		}
		res = append(res, New(pcs...))
	}
	return res
}

// Similarity holds Forte's similarity relations between two sets.
type Similarity struct {
	// R: identical interval vectors.
	R bool `json:"R"`
	// R0: R with equal cardinality.
	R0 bool `json:"R0"`
	// R1: R with cardinalities summing to 12.
	R1 bool `json:"R1"`
	// R2: R with cardinalities differing by exactly 1.
	R2 bool `json:"R2"`
}

// SimilarityRelation computes the R/R0/R1/R2 relations against other.
func (s PitchClassSet) SimilarityRelation(other PitchClassSet) Similarity {
	r := s.IntervalVector() == other.IntervalVector()
	diff := s.Cardinality() - other.Cardinality()
	if diff < 0 {
		diff = -diff
	}
	return Similarity{
		R:  r,
		R0: r && s.Cardinality() == other.Cardinality(),
		R1: r && s.Cardinality()+other.Cardinality() == 12,
		R2: r && diff == 1,
	}
}
