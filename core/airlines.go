package core

import "github.com/tidwall/btree"

// lessAirline orders airlines by carrier code.
func lessAirline(a, b Airline) bool { return a.Code < b.Code }

// AirlineSet is a unique set of Airlines ordered by carrier code.
// It backs both the per-edge operating-airline labels and the global
// airline catalog. The zero value is not usable; call NewAirlineSet.
type AirlineSet struct {
	tr *btree.BTreeG[Airline]
}

// NewAirlineSet returns a set containing the given airlines,
// deduplicated by code.
func NewAirlineSet(airlines ...Airline) *AirlineSet {
	s := &AirlineSet{tr: btree.NewBTreeG(lessAirline)}
	for _, a := range airlines {
		s.tr.Set(a)
	}
	return s
}

// Insert adds a to the set, replacing any airline with the same code.
func (s *AirlineSet) Insert(a Airline) { s.tr.Set(a) }

// ByCode looks up an airline by its code.
func (s *AirlineSet) ByCode(code string) (Airline, bool) {
	return s.tr.Get(Airline{Code: code})
}

// Contains reports whether an airline with the given code is present.
func (s *AirlineSet) Contains(code string) bool {
	_, ok := s.ByCode(code)
	return ok
}

// Len returns the number of airlines in the set.
func (s *AirlineSet) Len() int { return s.tr.Len() }

// Ascend iterates the airlines in code order; fn returning false stops
// the iteration.
func (s *AirlineSet) Ascend(fn func(Airline) bool) { s.tr.Scan(fn) }

// Slice returns the airlines in code order.
func (s *AirlineSet) Slice() []Airline {
	out := make([]Airline, 0, s.tr.Len())
	s.tr.Scan(func(a Airline) bool {
		out = append(out, a)
		return true
	})
	return out
}

// Codes returns the airline codes in order.
func (s *AirlineSet) Codes() []string {
	out := make([]string, 0, s.tr.Len())
	s.tr.Scan(func(a Airline) bool {
		out = append(out, a.Code)
		return true
	})
	return out
}

// Clone returns an independent copy of the set. The underlying tree is
// copy-on-write, so cloning is cheap.
func (s *AirlineSet) Clone() *AirlineSet {
	return &AirlineSet{tr: s.tr.Copy()}
}

// Intersect returns a new set holding the airlines present in both s
// and other.
func (s *AirlineSet) Intersect(other *AirlineSet) *AirlineSet {
	out := NewAirlineSet()
	s.tr.Scan(func(a Airline) bool {
		if other.Contains(a.Code) {
			out.Insert(a)
		}
		return true
	})
	return out
}
