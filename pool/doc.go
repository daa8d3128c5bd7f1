// File: doc.go
// Role: Block-growable object arena, the allocator contract named by
// §5's "state/transition pools are block-allocated" and §6's run's
// block_size parameter.
//
// Package pool generalizes matrix.Dense's flat, contiguous-slice
// storage idiom from a fixed-size []float64 to an open-ended sequence
// of fixed-capacity blocks of any type. A Pool never reallocates or
// moves an element once allocated: Alloc returns a stable pointer into
// one of the pool's blocks, so callers may hold onto it for the
// lifetime of the run, exactly as the engine's vloc/vedge/zone objects
// must stay addressable across a whole exploration (§5, "shared
// resources").
package pool
