package analysis

import (
	"testing"

	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/pcset"
	"github.com/stretchr/testify/assert"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(forte.NewCatalog())
}

func TestAnalyzeMajorTriad(t *testing.T) {
	assert := assert.New(t)
	res := newAnalyzer().Analyze(pcset.New(0, 4, 7))

	assert.Equal([]int{0, 4, 7}, res.PitchClasses)
	assert.Equal(3, res.Cardinality)
	assert.Equal("3-11", res.ForteNumber)
	assert.Equal([6]int{0, 0, 1, 1, 1, 0}, res.IntervalVector)

	assert.Equal(9, res.Complement.Cardinality)
	assert.Len(res.Transpositions, 12)
	assert.Len(res.Inversions, 12)
	assert.Equal([]int{0, 4, 7}, res.Transpositions[0])
	assert.Equal([]int{1, 5, 8}, res.Transpositions[1])
	assert.Equal([]int{0, 5, 8}, res.Inversions[0])

	assert.Len(res.Rotations, 3)
	assert.Equal([]int{4, 7, 0}, res.Rotations[1])

	assert.Len(res.Subsets[2], 3)
	assert.Len(res.Supersets[4], 9)
	assert.Len(res.Supersets[12], 1)
}

func TestAnalyzeUnclassifiableSetHasNoNumber(t *testing.T) {
	assert := assert.New(t)
	res := newAnalyzer().Analyze(pcset.New(0, 2, 3))
	assert.Empty(res.ForteNumber)
	assert.Empty(res.SimilarSets)
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)
	cmp := newAnalyzer().Compare(pcset.New(0, 4, 7), pcset.New(0, 3, 7))

	assert.Equal("3-11", cmp.Set1.ForteNumber)
	assert.Equal("3-11", cmp.Set2.ForteNumber)
	assert.True(cmp.SameForteNumber)
	assert.True(cmp.SameIntervalVector)
	// the table keeps the two triad forms as distinct prime forms
	assert.False(cmp.SamePrimeForm)
	assert.False(cmp.Set1SubsetOfSet2)
	assert.Equal([]int{0, 7}, cmp.Intersection)
	assert.Equal([]int{0, 3, 4, 7}, cmp.Union)
	assert.True(cmp.Similarity.R0)
}

func TestCompareContainment(t *testing.T) {
	assert := assert.New(t)
	cmp := newAnalyzer().Compare(pcset.New(0, 4), pcset.New(0, 4, 7))
	assert.True(cmp.Set1SubsetOfSet2)
	assert.False(cmp.Set2SubsetOfSet1)
}

func TestCommonSubsets(t *testing.T) {
	assert := assert.New(t)
	sets := []pcset.PitchClassSet{pcset.New(0, 4, 7), pcset.New(0, 4, 9), pcset.New(0, 4, 5)}
	common := CommonSubsets(sets, 2)
	assert.Len(common, 1)
	assert.True(common[0].Equal(pcset.New(0, 4)))

	assert.Nil(CommonSubsets(nil, 2))
}

func TestCommonSupersets(t *testing.T) {
	assert := assert.New(t)
	sets := []pcset.PitchClassSet{pcset.New(0, 4), pcset.New(4, 7)}
	common := CommonSupersets(sets, 3)
	assert.Len(common, 1)
	assert.True(common[0].Equal(pcset.New(0, 4, 7)))
}
