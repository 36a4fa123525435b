package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAcceptsCommonFormats(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"0 4 7", "0,4,7", "0, 4, 7", "[0, 4, 7]", "{0,4,7}", "(0 4 7)", "  0\t4 7 "} {
		pcs, err := Set(input)
		assert.NoError(err, "input %q", input)
		assert.Equal([]int{0, 4, 7}, pcs, "input %q", input)
	}
}

func TestSetEmptyInput(t *testing.T) {
	assert := assert.New(t)
	pcs, err := Set("")
	assert.NoError(err)
	assert.Empty(pcs)

	pcs, err = Set("[]")
	assert.NoError(err)
	assert.Empty(pcs)
}

func TestSetRejectsOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Set("0 4 12")
	assert.Error(err)
	_, err = Set("-1 4 7")
	assert.Error(err)
}

func TestSetRejectsNonNumeric(t *testing.T) {
	assert := assert.New(t)
	_, err := Set("0 C 7")
	assert.Error(err)
}

func TestIsForteNumber(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsForteNumber("3-11"))
	assert.True(IsForteNumber(" 12-1 "))
	assert.False(IsForteNumber("3-11-2"))
	assert.False(IsForteNumber("0 4 7"))
	assert.False(IsForteNumber("three-eleven"))
}
