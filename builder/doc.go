// Package builder constructs the graphs fed to the MST engine: the
// bounded-degree random generator plus a few deterministic fixtures.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Create(n):                   n isolated nodes (ErrTooFewNodes if n <= 0).
//     – GenerateRandomEdges(g, ...): the bounded-degree pass over an existing graph.
//     – BuildGraph(n, opts, cons...): Create + constructors applied in order.
//   - Constructors (type Constructor):
//     – BoundedDegree():  the bounded-degree random pass.
//     – Path(), Cycle(), Complete(): deterministic fixtures over all n nodes.
//     – RandomSparse(p):   Erdős–Rényi G(n,p).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     RNG, weight function, weight ceiling, degree caps.
//   - Edge-weight distributions (WeightFn):
//     – UniformWeightFn:   uniform integer in [min,max].
//     – ConstantWeightFn:  fixed value.
//
// Bounded-degree generation
//
// For every unordered pair (i,j), i<j, visited with i ascending then j
// ascending, the generator draws a fresh threshold t uniformly from the
// secondary range [lo,hi] (default [2,3]) and adds the edge i-j, with a weight
// drawn from [1,maxWeight] (default 10), iff
//
//	deg[i] < primaryCap (default 7)  &&  deg[j] < t
//
// Both counters increment on insertion. It is a single forward pass: no
// retries, no repair. The result is not guaranteed to be connected and a node
// may end well below primaryCap when its later partners are already saturated;
// neither is an error. Since a node only gains edges as i while its degree is
// below primaryCap, and as j while it is below hi, every final degree is at
// most max(primaryCap, hi).
//
// Determinism
//
// Exactly one threshold draw per pair, and one weight draw per inserted edge,
// in the (i,j) order above. With WithSeed or WithRand the output is therefore a
// pure function of (n, options, seed). Without them a time-seeded source is
// created per call.
//
// Errors
//
// Argument errors (ErrNilGraph, ErrInvalidMaxWeight, ErrInvalidDegreeCap,
// ErrInvalidProbability, core.ErrTooFewNodes) all satisfy
// errors.Is(err, core.ErrInvalidArgument) and are reported before any
// mutation. Option constructors panic on nil functions or meaningless weight
// ranges; generation itself never panics.
package builder
