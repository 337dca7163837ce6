package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/core"
)

func TestAirlineSet_InsertAndLookup(t *testing.T) {
	s := core.NewAirlineSet()
	s.Insert(core.Airline{Code: "BB", Name: "Beta Air"})
	s.Insert(core.Airline{Code: "AA", Name: "Alpha Air"})
	s.Insert(core.Airline{Code: "AA", Name: "Alpha Airways"}) // same code replaces

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"AA", "BB"}, s.Codes())

	a, ok := s.ByCode("AA")
	require.True(t, ok)
	assert.Equal(t, "Alpha Airways", a.Name)
	assert.True(t, s.Contains("BB"))
	assert.False(t, s.Contains("ZZ"))
}

func TestAirlineSet_OrderedIteration(t *testing.T) {
	s := core.NewAirlineSet(
		core.Airline{Code: "CC"},
		core.Airline{Code: "AA"},
		core.Airline{Code: "BB"},
	)

	var codes []string
	s.Ascend(func(a core.Airline) bool {
		codes = append(codes, a.Code)
		return true
	})
	assert.Equal(t, []string{"AA", "BB", "CC"}, codes)

	slice := s.Slice()
	require.Len(t, slice, 3)
	assert.Equal(t, "AA", slice[0].Code)
	assert.Equal(t, "CC", slice[2].Code)
}

func TestAirlineSet_CloneIsIndependent(t *testing.T) {
	s := core.NewAirlineSet(core.Airline{Code: "AA"})
	c := s.Clone()
	c.Insert(core.Airline{Code: "BB"})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestAirlineSet_Intersect(t *testing.T) {
	a := core.NewAirlineSet(
		core.Airline{Code: "AA"},
		core.Airline{Code: "BB"},
		core.Airline{Code: "CC"},
	)
	b := core.NewAirlineSet(
		core.Airline{Code: "BB"},
		core.Airline{Code: "DD"},
	)

	assert.Equal(t, []string{"BB"}, a.Intersect(b).Codes())
	assert.Equal(t, 0, a.Intersect(core.NewAirlineSet()).Len())
}
