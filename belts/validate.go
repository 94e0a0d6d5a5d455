package belts

import (
	"fmt"
	"strings"
)

// reservedID reports whether a node ID would collide with a vertex the
// reduction synthesizes. Splitting a capped node `n` creates `n_IN` and
// `n_OUT`, so the suffixes are reserved along with the terminal names.
func reservedID(id string) bool {
	switch id {
	case superSource, superSink, freeHub:
		return true
	}

	return strings.HasSuffix(id, inSuffix) || strings.HasSuffix(id, outSuffix)
}

// Validate rejects malformed instances before any graph is built.
// It checks reference closure against the declared node list (when given),
// the reserved ID namespace, bound ordering, self-loops and sign
// constraints.
func (p *Problem) Validate() error {
	var declared map[string]struct{}
	if len(p.Nodes) > 0 {
		declared = make(map[string]struct{}, len(p.Nodes))
		for _, n := range p.Nodes {
			declared[n] = struct{}{}
		}
	}
	for _, n := range p.Nodes {
		if reservedID(n) {
			return fmt.Errorf("%w: %q", ErrReservedNodeID, n)
		}
	}
	known := func(id string) bool {
		if declared == nil {
			return true
		}
		_, ok := declared[id]

		return ok
	}

	for _, e := range p.Edges {
		if e.From == e.To {
			return fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}
		if reservedID(e.From) {
			return fmt.Errorf("%w: edge endpoint %q", ErrReservedNodeID, e.From)
		}
		if reservedID(e.To) {
			return fmt.Errorf("%w: edge endpoint %q", ErrReservedNodeID, e.To)
		}
		if !known(e.From) {
			return fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, e.From)
		}
		if !known(e.To) {
			return fmt.Errorf("%w: edge endpoint %q", ErrUnknownNode, e.To)
		}
		if e.Lo < 0 {
			return fmt.Errorf("%w: lo=%d on edge %s→%s", ErrNegativeQuantity, e.Lo, e.From, e.To)
		}
		if e.Hi != nil {
			if *e.Hi < 0 {
				return fmt.Errorf("%w: hi=%d on edge %s→%s", ErrNegativeQuantity, *e.Hi, e.From, e.To)
			}
			if e.Lo > *e.Hi {
				return fmt.Errorf("%w: [%d,%d] on edge %s→%s", ErrBoundsOrder, e.Lo, *e.Hi, e.From, e.To)
			}
		}
	}

	for node, c := range p.NodeCaps {
		if c < 0 {
			return fmt.Errorf("%w: node_cap=%d on %q", ErrNegativeQuantity, c, node)
		}
		if reservedID(node) {
			return fmt.Errorf("%w: node_cap on %q", ErrReservedNodeID, node)
		}
		if !known(node) {
			return fmt.Errorf("%w: node_cap on %q", ErrUnknownNode, node)
		}
	}

	for node, supply := range p.Sources {
		if supply < 0 {
			return fmt.Errorf("%w: supply=%d at %q", ErrNegativeQuantity, supply, node)
		}
		if reservedID(node) {
			return fmt.Errorf("%w: source %q", ErrReservedNodeID, node)
		}
		if !known(node) {
			return fmt.Errorf("%w: source %q", ErrUnknownNode, node)
		}
		if p.Sink != "" && node == p.Sink {
			return fmt.Errorf("%w: %q", ErrSinkIsSource, node)
		}
	}

	if p.Sink != "" {
		if reservedID(p.Sink) {
			return fmt.Errorf("%w: sink %q", ErrReservedNodeID, p.Sink)
		}
		if !known(p.Sink) {
			return fmt.Errorf("%w: sink %q", ErrUnknownNode, p.Sink)
		}
	}

	return nil
}
