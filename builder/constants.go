// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Method names, used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCreate is the canonical name for Create.
	MethodCreate = "Create"
	// MethodBoundedDegree is the canonical name for the BoundedDegree constructor.
	MethodBoundedDegree = "BoundedDegree"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Bounded-degree defaults
//-----------------------------------------------------------------------------

// DefaultMaxWeight is the inclusive upper bound of generated edge weights.
const DefaultMaxWeight int64 = 10

// MinEdgeWeight is the smallest generated edge weight.
const MinEdgeWeight int64 = 1

// DefaultPrimaryCap is the degree ceiling checked against the lower endpoint i.
const DefaultPrimaryCap = 7

// DefaultSecondaryCapMin and DefaultSecondaryCapMax bound the per-pair
// threshold drawn for the higher endpoint j.
const (
	DefaultSecondaryCapMin = 2
	DefaultSecondaryCapMax = 3
)

//-----------------------------------------------------------------------------
// Fixture minima and probability bounds
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle without loops or multi-edges.
const MinCycleNodes = 3

// MinProbability and MaxProbability bound p in RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
