package traverse_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/traverse"
)

// buildGraph wires a graph with the given airports and directed routes.
func buildGraph(t *testing.T, codes []string, routes [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, code := range codes {
		if err := g.AddAirport(core.Airport{Code: code, Name: code}); err != nil {
			t.Fatalf("AddAirport(%s): %v", code, err)
		}
	}
	for _, r := range routes {
		if _, err := g.AddRoute(r[0], r[1], 1); err != nil {
			t.Fatalf("AddRoute(%s,%s): %v", r[0], r[1], err)
		}
	}
	return g
}

func TestDFS_PreOrder(t *testing.T) {
	// A -> B -> D, A -> C; adjacency order decides the tie at A.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}},
	)

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	want := []string{"A", "B", "D", "C"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Parent["D"] != "B" || res.Parent["C"] != "A" {
		t.Errorf("Parent = %v; want D from B, C from A", res.Parent)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("root A must have no parent")
	}
}

func TestDFS_DirectedUnreachable(t *testing.T) {
	g := buildGraph(t,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"C", "A"}},
	)

	res, err := traverse.DFS(g, "A")
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if res.Visited["C"] {
		t.Errorf("C is only reachable against the edge direction; must stay unvisited")
	}
	want := []string{"A", "B"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestDFS_Forest(t *testing.T) {
	// Two components: A->B and C->D. Forest mode covers both, in
	// insertion order.
	g := buildGraph(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"C", "D"}},
	)

	res, err := traverse.DFS(g, "", traverse.WithForest())
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestDFS_OnDiscoverHook(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})

	var seen []string
	_, err := traverse.DFS(g, "A", traverse.WithOnDiscover(func(v *core.Vertex) error {
		seen = append(seen, v.Key())
		return nil
	}))
	if err != nil {
		t.Fatalf("DFS error: %v", err)
	}
	if !reflect.DeepEqual(seen, []string{"A", "B"}) {
		t.Errorf("hook order = %v; want [A B]", seen)
	}
}

func TestDFS_HookErrorAborts(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})

	boom := errors.New("boom")
	res, err := traverse.DFS(g, "A", traverse.WithOnDiscover(func(v *core.Vertex) error {
		if v.Key() == "B" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want wrapped boom", err)
	}
	if res.Visited["C"] {
		t.Errorf("walk must stop at the failing vertex")
	}
}

func TestDFS_Errors(t *testing.T) {
	if _, err := traverse.DFS(nil, "A"); !errors.Is(err, traverse.ErrGraphNil) {
		t.Errorf("nil graph: err = %v; want ErrGraphNil", err)
	}
	g := buildGraph(t, []string{"A"}, nil)
	if _, err := traverse.DFS(g, "Z"); !errors.Is(err, traverse.ErrStartNotFound) {
		t.Errorf("missing start: err = %v; want ErrStartNotFound", err)
	}
}
