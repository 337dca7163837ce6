package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/query"
)

// trafficEngine builds airports with outbound totals 50, 50, 40 and 30
// by routing the right number of flights into a sink.
func trafficEngine(t *testing.T) *query.Engine {
	t.Helper()
	airports := []core.Airport{
		ap("HUB", "Hub", "Xland", 0, 0),
		ap("ALT", "Alt", "Xland", 0, 1),
		ap("MID", "Mid", "Yland", 1, 1),
		ap("LOW", "Low", "Zland", 1, 0),
		ap("SNK", "Sink", "Zland", 2, 2),
	}
	var flights []flight
	add := func(src string, n int) {
		for i := 0; i < n; i++ {
			flights = append(flights, flight{src, "SNK", "XX"})
		}
	}
	add("HUB", 50)
	add("ALT", 50)
	add("MID", 40)
	add("LOW", 30)
	return newEngine(t, airports, flights)
}

func TestTopTraffic_TieAtCutoff(t *testing.T) {
	e := trafficEngine(t)

	// k=2: SNK leads with 170, HUB and ALT tie at 50, so the tie past
	// the cutoff extends the result to three entries.
	got := e.TopTraffic(2)
	require.Len(t, got, 3)
	assert.Equal(t, "SNK", got[0].Airport.Code)
	assert.Equal(t, 170, got[0].Flights)
	assert.Equal(t, 50, got[1].Flights)
	assert.Equal(t, 50, got[2].Flights)

	got = e.TopTraffic(4)
	require.Len(t, got, 4)
	assert.Equal(t, 40, got[3].Flights)
}

func TestTopTraffic_NonPositiveK(t *testing.T) {
	e := trafficEngine(t)
	assert.Empty(t, e.TopTraffic(0))
	assert.Empty(t, e.TopTraffic(-1))
	assert.Empty(t, e.TopTraffic(-100))
}

func TestTopTraffic_ZeroTrafficTieRule(t *testing.T) {
	// With no flights every total is zero, so even k=0 admits every
	// airport through the tie rule.
	e := newEngine(t,
		[]core.Airport{
			ap("AAA", "Alpha", "Xland", 0, 0),
			ap("BBB", "Beta", "Xland", 0, 1),
		},
		nil,
	)
	assert.Len(t, e.TopTraffic(0), 2)
	assert.Len(t, e.TopTraffic(-1), 2)
}

func TestTopTraffic_KBeyondSize(t *testing.T) {
	e := trafficEngine(t)
	got := e.TopTraffic(100)
	require.Len(t, got, 5)
	assert.Equal(t, 30, got[4].Flights)
}

func TestAllTraffic_Descending(t *testing.T) {
	e := trafficEngine(t)
	got := e.AllTraffic()
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Flights, got[i].Flights)
	}
	assert.Equal(t, "SNK", got[0].Airport.Code)
}
