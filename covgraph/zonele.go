// File: zonele.go
// Role: Pluggable zone-inclusion test backing the covering relation
// ⊆ zone(m) under whatever extrapolation/
// abstraction is configured").

package covgraph

import "github.com/tchecker-go/tachecker/dbm"

// ZoneLE reports whether n's zone is included in m's zone under
// whichever abstraction the caller has configured.
type ZoneLE func(n, m *dbm.DBM) (bool, error)

// PlainZoneLE uses dbm.IsLE: plain zone inclusion, no abstraction.
func PlainZoneLE() ZoneLE {
	return func(n, m *dbm.DBM) (bool, error) { return dbm.IsLE(n, m) }
}

// ALUZoneLE uses the aLU-abstraction-aware preorder (dbm.IsALULe) with
// the given per-clock lower/upper bound vectors.
func ALUZoneLE(lowerBounds, upperBounds []int64) ZoneLE {
	return func(n, m *dbm.DBM) (bool, error) { return dbm.IsALULe(n, m, lowerBounds, upperBounds) }
}

// AMZoneLE uses the aM-abstraction-aware preorder (dbm.IsAMLe) with the
// given per-clock max-bound vector.
func AMZoneLE(maxBounds []int64) ZoneLE {
	return func(n, m *dbm.DBM) (bool, error) { return dbm.IsAMLe(n, m, maxBounds) }
}
