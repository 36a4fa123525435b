// Package forte maps pitch class sets to Allen Forte's set-class numbers
// and back. The catalog is fixed reference data: it is built once and never
// modified, so a single Catalog can be shared by any number of goroutines.
package forte

import (
	"strconv"
	"strings"

	"github.com/fortelabs/pcsets/pcset"
)

// Entry is one row of the classification table: a prime form and its
// Forte number (formatted "<cardinality>-<index>", e.g. "3-11").
type Entry struct {
	PrimeForm []int
	Number    string
}

// ClassifiedSet pairs a set with its Forte number.
type ClassifiedSet struct {
	Set    pcset.PitchClassSet
	Number string
}

type entry struct {
	primeForm []int
	number    string
	set       pcset.PitchClassSet
	vector    [6]int
}

// Catalog is the classification table plus lookup indexes. Build one with
// NewCatalog and hand it to whatever needs classification; there is no
// package-level instance.
type Catalog struct {
	entries map[int][]entry   // by cardinality, in table order
	numbers map[string]string // set key -> Forte number
}

// NewCatalog builds the catalog from the static table, precomputing the
// interval vector of every entry.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: make(map[int][]entry),
		numbers: make(map[string]string),
	}
	for card := 1; card <= 12; card++ {
		for _, row := range forteTable[card] {
			set := pcset.New(row.PrimeForm...)
			c.entries[card] = append(c.entries[card], entry{
				primeForm: row.PrimeForm,
				number:    row.Number,
				set:       set,
				vector:    set.IntervalVector(),
			})
			c.numbers[setKey(row.PrimeForm)] = row.Number
		}
	}
	return c
}

// setKey renders a prime form as a lookup key, e.g. "0-1-3".
func setKey(pcs []int) string {
	parts := make([]string, len(pcs))
	for i, pc := range pcs {
		parts[i] = strconv.Itoa(pc)
	}
	return strings.Join(parts, "-")
}

// ForteNumber classifies a set by its prime form. The second result is
// false when the cardinality is outside 1-12 or the prime form is absent
// from the table; absence is a normal negative result, not an error.
func (c *Catalog) ForteNumber(s pcset.PitchClassSet) (string, bool) {
	card := s.Cardinality()
	if card < 1 || card > 12 {
		return "", false
	}
	number, ok := c.numbers[setKey(s.PrimeForm())]
	return number, ok
}

// SetForNumber reconstructs the prime-form set for a Forte number. Returns
// false for malformed numbers, unknown cardinalities, or unknown indexes.
// When the table assigns the same number twice, the first entry wins.
func (c *Catalog) SetForNumber(number string) (pcset.PitchClassSet, bool) {
	card, ok := parseNumber(number)
	if !ok {
		return pcset.PitchClassSet{}, false
	}
	for _, e := range c.entries[card] {
		if e.number == number {
			return pcset.New(e.primeForm...), true
		}
	}
	return pcset.PitchClassSet{}, false
}

func parseNumber(number string) (cardinality int, ok bool) {
	parts := strings.Split(number, "-")
	if len(parts) != 2 {
		return 0, false
	}
	card, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return 0, false
	}
	if card < 1 || card > 12 {
		return 0, false
	}
	return card, true
}

// SetsByCardinality returns every (set, number) pair of the given
// cardinality in table order, or nil outside 1-12.
func (c *Catalog) SetsByCardinality(cardinality int) []ClassifiedSet {
	rows := c.entries[cardinality]
	if rows == nil {
		return nil
	}
	res := make([]ClassifiedSet, 0, len(rows))
	for _, e := range rows {
		res = append(res, ClassifiedSet{Set: pcset.New(e.primeForm...), Number: e.number})
	}
	return res
}

// IntervalVectorFor resolves a Forte number to its interval vector.
func (c *Catalog) IntervalVectorFor(number string) ([6]int, bool) {
	s, ok := c.SetForNumber(number)
	if !ok {
		return [6]int{}, false
	}
	return s.IntervalVector(), true
}

// FindSimilar returns every Forte number of any cardinality whose entry
// shares the given number's interval vector, excluding the number itself.
// This is a full scan of the table, which is small and fixed.
func (c *Catalog) FindSimilar(number string) []string {
	target, ok := c.SetForNumber(number)
	if !ok {
		return nil
	}
	targetVec := target.IntervalVector()

	var similar []string
	for card := 1; card <= 12; card++ {
		for _, e := range c.entries[card] {
			if e.number != number && e.vector == targetVec {
				similar = append(similar, e.number)
			}
		}
	}
	return similar
}

// ZPartner finds the set's Z-partner: the first other entry of the same
// cardinality sharing its interval vector. Table entries are already prime
// forms, so a different number with the same vector cannot be a mere T/I
// copy of the input.
func (c *Catalog) ZPartner(s pcset.PitchClassSet) (string, bool) {
	number, ok := c.ForteNumber(s)
	if !ok {
		return "", false
	}
	vec := s.IntervalVector()
	for _, e := range c.entries[s.Cardinality()] {
		if e.number == number {
			continue
		}
		if e.vector == vec {
			return e.number, true
		}
	}
	return "", false
}
