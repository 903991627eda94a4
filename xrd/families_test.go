package xrd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueFamilies(t *testing.T) {
	fams := uniqueFamilies([][]int{
		{-1, -1, -1},
		{1, 1, 1},
		{2, 0, 0},
		{0, -2, 0},
		{1, 1, -1},
	})
	assert.Len(t, fams, 2)
	//first-appearance order, lexicographically greatest representative
	assert.Equal(t, []int{1, 1, 1}, fams[0].Index)
	assert.Equal(t, 3, fams[0].Multiplicity)
	assert.Equal(t, []int{2, 0, 0}, fams[1].Index)
	assert.Equal(t, 2, fams[1].Multiplicity)
}

func TestUniqueFamiliesMillerBravais(t *testing.T) {
	fams := uniqueFamilies([][]int{
		{1, 0, -1, 0},
		{0, 1, -1, 0},
		{-1, 1, 0, 0},
		{0, -1, 1, 0},
	})
	assert.Len(t, fams, 1)
	assert.Equal(t, 4, fams[0].Multiplicity)
	assert.Equal(t, []int{1, 0, -1, 0}, fams[0].Index)
}

func TestSamePerm(t *testing.T) {
	assert.True(t, samePerm([]int{3, 1, -1}, []int{-1, 3, 1}))
	assert.False(t, samePerm([]int{3, 1, 1}, []int{3, 1, 2}))
	assert.False(t, samePerm([]int{1, 1, 1}, []int{1, 1, 1, 1}))
}
