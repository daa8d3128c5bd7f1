// File: discretekey.go
// Role: Discrete-state bucket key for the node table,
// grounded on the composite-identity string-map idiom used by
// tasystem's locationByName/clockByName.

package covgraph

import (
	"strconv"
	"strings"

	"github.com/tchecker-go/tachecker/zonegraph"
)

// discreteKey returns a string uniquely determined by (vloc, intvars),
// and by nothing else — two states with the same discrete key are
// exactly the candidates the covering relation needs to compare.
func discreteKey(s zonegraph.State) string {
	var b strings.Builder
	for _, l := range s.Vloc {
		b.WriteString(strconv.Itoa(int(l)))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range s.IntVars {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
