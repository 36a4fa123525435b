package generate

import (
	"math/rand"
	"testing"

	"github.com/fortelabs/pcsets/forte"
	"github.com/stretchr/testify/assert"
)

func newGenerator() *Generator {
	return NewGenerator(forte.NewCatalog())
}

func TestRandomSet(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator()
	rng := rand.New(rand.NewSource(1))

	for card := 1; card <= 12; card++ {
		s, err := g.RandomSet(card, rng)
		assert.NoError(err)
		assert.Equal(card, s.Cardinality())
	}

	_, err := g.RandomSet(0, rng)
	assert.Error(err)
	_, err = g.RandomSet(13, rng)
	assert.Error(err)
}

func TestSetsByIntervalVector(t *testing.T) {
	assert := assert.New(t)
	// only the two all-interval tetrachords carry <1 1 1 1 1 1>
	sets := newGenerator().SetsByIntervalVector([6]int{1, 1, 1, 1, 1, 1})
	assert.Len(sets, 2)
	assert.Equal([]int{0, 1, 3, 7}, sets[0].Classes())
	assert.Equal([]int{0, 1, 4, 6}, sets[1].Classes())
}

func TestSetsByForteNumber(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator()

	// 12 minor plus 12 major triads
	assert.Len(g.SetsByForteNumber("3-11"), 24)
	// the augmented triad collapses to 4 distinct forms
	assert.Len(g.SetsByForteNumber("3-12"), 4)
	assert.Nil(g.SetsByForteNumber("99-1"))
}

func TestSetsWithConstraints(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator()

	// tetrachords containing a semitone but no tritone
	sets := g.SetsWithConstraints(4, Constraints{
		RequiredIntervals:  []int{1},
		ForbiddenIntervals: []int{6},
	})
	assert.Len(sets, 192)
	for _, s := range sets {
		vec := s.IntervalVector()
		assert.Positive(vec[0])
		assert.Zero(vec[5])
	}

	withC := g.SetsWithConstraints(3, Constraints{RequiredClasses: []int{0}, ForbiddenClasses: []int{6}})
	for _, s := range withC {
		assert.True(s.Contains(0))
		assert.False(s.Contains(6))
	}
	assert.Len(withC, 45) // choose 2 of the 10 classes left after fixing 0 and banning 6

	assert.Nil(g.SetsWithConstraints(0, Constraints{}))
}

func TestHexachordalCombinatorialPairs(t *testing.T) {
	assert := assert.New(t)
	// every catalog hexachord contains pitch class 0, so no two table
	// entries can union to the full aggregate
	assert.Empty(newGenerator().HexachordalCombinatorialPairs())
}

func TestAggregateSets(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator()
	// a set and its complement always cover the aggregate
	assert.Len(g.AggregateSets(4), 31)
	assert.Nil(g.AggregateSets(12))
}
