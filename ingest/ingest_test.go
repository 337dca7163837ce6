package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/ingest"
)

const airlinesCSV = `code,name,callsign,country
PP,Pan Pacific,PANPAC,Xland
QQ,Quetzal Air,QUETZAL,Yland
`

const airportsCSV = `code,name,city,country,lat,lon
AAA,Alpha Field,Alpha,Xland,0.0,0.0
BBB,Beta Field,Beta,Xland,0.0,1.0
CCC,Gamma Field,Gamma,Yland,1.0,1.0
`

const flightsCSV = `src,dst,airline
AAA,BBB,PP
AAA,BBB,QQ
BBB,CCC,pp
`

func TestLoadAirlines(t *testing.T) {
	catalog, err := ingest.LoadAirlines(strings.NewReader(airlinesCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"PP", "QQ"}, catalog.Codes())

	a, ok := catalog.ByCode("PP")
	require.True(t, ok)
	assert.Equal(t, "Pan Pacific", a.Name)
	assert.Equal(t, "PANPAC", a.Callsign)
	assert.Equal(t, "Xland", a.Country)
}

func TestLoadAirlines_ShortRow(t *testing.T) {
	_, err := ingest.LoadAirlines(strings.NewReader("code,name,callsign,country\nPP,Pan Pacific\n"))
	require.ErrorIs(t, err, ingest.ErrBadRecord)
}

func TestLoadAirports(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, ingest.LoadAirports(strings.NewReader(airportsCSV), g))

	assert.Equal(t, 3, g.NumVertices())
	v := g.FindVertex("BBB")
	require.NotNil(t, v)
	assert.Equal(t, "Beta Field", v.Airport.Name)
	assert.Equal(t, core.Coordinates{Lat: 0, Lon: 1}, v.Airport.Location)
}

func TestLoadAirports_BadCoordinate(t *testing.T) {
	g := core.NewGraph()
	err := ingest.LoadAirports(strings.NewReader("h\nAAA,Alpha,Alpha,Xland,north,0\n"), g)
	require.ErrorIs(t, err, ingest.ErrBadRecord)
}

func TestLoadAirports_DuplicateCode(t *testing.T) {
	g := core.NewGraph()
	err := ingest.LoadAirports(strings.NewReader("h\nAAA,A,A,X,0,0\naaa,A,A,X,0,0\n"), g)
	require.ErrorIs(t, err, core.ErrDuplicateAirport)
}

func TestLoadFlights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, ingest.LoadAirports(strings.NewReader(airportsCSV), g))
	catalog, err := ingest.LoadAirlines(strings.NewReader(airlinesCSV))
	require.NoError(t, err)

	require.NoError(t, ingest.LoadFlights(strings.NewReader(flightsCSV), g, catalog))

	// Two flights share the AAA->BBB route; the lower-cased "pp" on the
	// last row still resolves in the catalog.
	require.Len(t, g.FindVertex("AAA").Adj, 1)
	assert.Equal(t, []string{"PP", "QQ"}, g.FindRoute("AAA", "BBB").Airlines.Codes())
	pp, ok := g.FindRoute("BBB", "CCC").Airlines.ByCode("PP")
	require.True(t, ok)
	assert.Equal(t, "Pan Pacific", pp.Name)
}

func TestLoadFlights_UnknownAirline(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, ingest.LoadAirports(strings.NewReader(airportsCSV), g))

	require.NoError(t, ingest.LoadFlights(strings.NewReader("h\nAAA,BBB,zz\n"), g, core.NewAirlineSet()))

	zz, ok := g.FindRoute("AAA", "BBB").Airlines.ByCode("ZZ")
	require.True(t, ok, "unknown code degrades to a bare airline")
	assert.Empty(t, zz.Name)
}

func TestLoadFlights_UnknownAirport(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, ingest.LoadAirports(strings.NewReader(airportsCSV), g))
	err := ingest.LoadFlights(strings.NewReader("h\nAAA,ZZZ,PP\n"), g, core.NewAirlineSet())
	require.ErrorIs(t, err, core.ErrAirportNotFound)
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}
	airports := write("airports.csv", airportsCSV)
	airlines := write("airlines.csv", airlinesCSV)
	flights := write("flights.csv", flightsCSV)

	g, catalog, err := ingest.LoadDataset(airports, airlines, flights)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, catalog.Len())

	// Degrees are finalized by the loader.
	assert.Equal(t, 1, g.FindVertex("AAA").OutDegree)
	assert.Equal(t, 1, g.FindVertex("BBB").InDegree)
	assert.Equal(t, 1, g.FindVertex("CCC").InDegree)
	assert.Equal(t, 2, g.FindVertex("BBB").FlightsTo)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := ingest.LoadDataset(
		filepath.Join(dir, "nope.csv"),
		filepath.Join(dir, "nope.csv"),
		filepath.Join(dir, "nope.csv"),
	)
	require.Error(t, err)
}
