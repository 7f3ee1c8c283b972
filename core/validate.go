// File: validate.go
// Role: structural checks for any Adjacency (symmetry, loops, weights, ranges).

package core

import "fmt"

// Validate checks that a describes a well-formed undirected weighted graph:
//
//   - every neighbor id lies in [0, NumNodes)  (ErrNodeOutOfRange)
//   - no node lists itself                     (ErrSelfLoop)
//   - every weight is positive                 (ErrBadWeight)
//   - the mirrored entries match as multisets  (ErrAsymmetric)
//
// The first violation found (scanning u ascending) is returned.
// Complexity: O(V + E log E) time, O(E) space.
func Validate(a Adjacency) error {
	if IsNil(a) {
		return fmt.Errorf("Validate: nil adjacency: %w", ErrInvalidArgument)
	}
	n := a.NumNodes()

	// forward holds (u,v,w) with u<v seen from u; backward the same triples seen from v.
	var forward, backward []Edge
	for u := 0; u < n; u++ {
		list, err := a.Neighbors(u)
		if err != nil {
			return fmt.Errorf("Validate: node %d: %w", u, err)
		}
		for _, nb := range list {
			switch {
			case nb.To < 0 || nb.To >= n:
				return fmt.Errorf("Validate: %d→%d: n=%d: %w", u, nb.To, n, ErrNodeOutOfRange)
			case nb.To == u:
				return fmt.Errorf("Validate: %d→%d: %w", u, nb.To, ErrSelfLoop)
			case nb.Weight <= 0:
				return fmt.Errorf("Validate: %d→%d: w=%d: %w", u, nb.To, nb.Weight, ErrBadWeight)
			case u < nb.To:
				forward = append(forward, Edge{From: u, To: nb.To, Weight: nb.Weight})
			default:
				backward = append(backward, Edge{From: nb.To, To: u, Weight: nb.Weight})
			}
		}
	}

	if len(forward) != len(backward) {
		return fmt.Errorf("Validate: %d forward vs %d mirrored entries: %w",
			len(forward), len(backward), ErrAsymmetric)
	}
	SortEdges(forward)
	SortEdges(backward)
	for i := range forward {
		if forward[i] != backward[i] {
			return fmt.Errorf("Validate: entry %s has no mirror: %w", forward[i], ErrAsymmetric)
		}
	}

	return nil
}

// DegreeHistogram counts nodes per degree: h[d] is the number of nodes with degree d.
// Complexity: O(V).
func DegreeHistogram(a Adjacency) ([]int, error) {
	if IsNil(a) {
		return nil, fmt.Errorf("DegreeHistogram: nil adjacency: %w", ErrInvalidArgument)
	}
	var h []int
	for u := 0; u < a.NumNodes(); u++ {
		list, err := a.Neighbors(u)
		if err != nil {
			return nil, err
		}
		d := len(list)
		for len(h) <= d {
			h = append(h, 0)
		}
		h[d]++
	}

	return h, nil
}
