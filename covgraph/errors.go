// File: errors.go
// Role: Sentinel errors for the covering graph and waiting stores
//.

package covgraph

import "errors"

// ErrUnknownNode is returned when an operation references a NodeID the
// graph never produced.
var ErrUnknownNode = errors.New("covgraph: unknown node id")

// ErrEmptyStore is returned by First/RemoveFirst on an empty waiting store.
var ErrEmptyStore = errors.New("covgraph: waiting store is empty")

// ErrNotInStore is returned by Remove when the node is not present.
var ErrNotInStore = errors.New("covgraph: node not present in waiting store")
