package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericDuplicatePairs(t *testing.T) {
	m := NewGeneric[int, float64]()
	for range 4 {
		m.Map(0, -8.0)
	}
	m.Map(5, -8.0)

	assert.Len(t, m.Out2In(-8.0), 5)
	assert.Len(t, m.In2Out(0), 4)

	m.EraseIn(0)
	assert.Len(t, m.Out2In(-8.0), 1)
	assert.Equal(t, []int{5}, m.Out2In(-8.0))
	assert.False(t, m.HasMappingInput(0))
}

func TestGenericEraseDropsEmpty(t *testing.T) {
	m := NewGeneric[int, string]()
	m.Map(1, "a")
	m.Map(1, "b")
	m.Map(2, "b")

	m.EraseIn(1)
	assert.False(t, m.HasMappingOutput("a"))
	assert.True(t, m.HasMappingOutput("b"))
	assert.Equal(t, 1, m.SizeIn())
	assert.Equal(t, 1, m.SizeOut())

	m.EraseOut("b")
	assert.False(t, m.HasMappingInput(2))
	assert.Equal(t, 0, m.SizeIn())
	assert.Equal(t, 0, m.SizeOut())
}

func TestGenericEraseOutKeepsOtherOutputs(t *testing.T) {
	m := NewGeneric[int, string]()
	m.Map(1, "a")
	m.Map(1, "b")
	m.Map(1, "a")

	m.EraseOut("a")
	assert.Equal(t, []string{"b"}, m.In2Out(1))
	assert.Equal(t, []int{1}, m.Out2In("b"))
}

func TestGenericAllInsertionOrder(t *testing.T) {
	m := NewGeneric[int, int]()
	m.Map(3, 30)
	m.Map(1, 10)
	m.Map(2, 20)
	m.Map(3, 31)
	m.EraseIn(1)
	m.Map(1, 11)

	var ins []int
	for in, outs := range m.All() {
		ins = append(ins, in)
		assert.NotEmpty(t, outs)
	}
	assert.Equal(t, []int{3, 2, 1}, ins)

	m.Clear()
	assert.Equal(t, 0, m.SizeIn())
	for range m.All() {
		t.Fatal("cleared mapping must be empty")
	}
}

func TestGenericCompaction(t *testing.T) {
	m := NewGeneric[int, int]()
	for round := range 10 {
		for i := range 20 {
			m.Map(i, i+round)
		}
		for i := range 20 {
			m.EraseIn(i)
		}
	}
	m.Map(99, 1)

	var ins []int
	for in := range m.All() {
		ins = append(ins, in)
	}
	assert.Equal(t, []int{99}, ins)
	assert.Less(t, len(m.order), 200)
}
