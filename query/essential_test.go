package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/airnet/core"
)

func TestEssentialAirports_Bridge(t *testing.T) {
	// AAA <-> BBB <-> CCC: every trip between the ends goes through BBB.
	e := newEngine(t,
		[]core.Airport{
			ap("AAA", "Alpha", "Xland", 0, 0),
			ap("BBB", "Beta", "Xland", 0, 1),
			ap("CCC", "Gamma", "Yland", 1, 1),
		},
		[]flight{
			{"AAA", "BBB", "XX"},
			{"BBB", "AAA", "XX"},
			{"BBB", "CCC", "XX"},
			{"CCC", "BBB", "XX"},
		},
	)

	got := e.EssentialAirports()
	assert.Equal(t, map[string]struct{}{"BBB": {}}, got)
}

func TestEssentialAirports_CycleHasNone(t *testing.T) {
	e := newEngine(t,
		[]core.Airport{
			ap("AAA", "Alpha", "Xland", 0, 0),
			ap("BBB", "Beta", "Xland", 0, 1),
			ap("CCC", "Gamma", "Yland", 1, 1),
		},
		[]flight{
			{"AAA", "BBB", "XX"},
			{"BBB", "CCC", "XX"},
			{"CCC", "AAA", "XX"},
		},
	)

	assert.Empty(t, e.EssentialAirports())
}

func TestEssentialAirports_LaterComponentRoot(t *testing.T) {
	// The discovery counter is global across component restarts, so the
	// root of a later component is judged by the non-root rule and a
	// single tree child already flags it.
	e := newEngine(t,
		[]core.Airport{
			ap("XXX", "Lone", "Xland", 0, 0), // first component, isolated
			ap("RRR", "Root", "Yland", 1, 0),
			ap("SSS", "Spoke", "Yland", 1, 1),
		},
		[]flight{{"RRR", "SSS", "XX"}},
	)

	got := e.EssentialAirports()
	assert.Equal(t, map[string]struct{}{"RRR": {}}, got)
}

func TestEssentialAirports_Empty(t *testing.T) {
	e := newEngine(t, nil, nil)
	assert.Empty(t, e.EssentialAirports())
}
