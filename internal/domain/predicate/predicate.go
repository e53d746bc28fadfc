// Package predicate models a backend-agnostic boolean query as a tree of
// Leaf/And/Or nodes. Trees are built fresh per request and never shared or
// mutated; storage adapters translate them into their native query language
// preserving the boolean semantics exactly.
package predicate

import "encoding/json"

// Kind discriminates the node union.
type Kind int

const (
	// KindLeaf is a single field condition.
	KindLeaf Kind = iota
	// KindAnd requires all children to match.
	KindAnd
	// KindOr requires at least one child to match.
	KindOr
)

// Range is an inclusive numeric interval; nil boundaries are open.
type Range struct {
	GTE *float64
	LTE *float64
}

// Node is one node of the predicate tree. A leaf carries a field path plus
// exactly one of: a case-insensitive pattern, a numeric range, or an exact
// value. Field paths are opaque strings from the caller's schema.
type Node struct {
	kind     Kind
	field    string
	pattern  string
	rng      *Range
	exact    any
	hasExact bool
	children []Node
}

// Match creates a leaf matching field against a case-insensitive pattern.
func Match(field, pattern string) Node {
	return Node{kind: KindLeaf, field: field, pattern: pattern}
}

// Between creates a leaf constraining field to a numeric range.
func Between(field string, gte, lte *float64) Node {
	return Node{kind: KindLeaf, field: field, rng: &Range{GTE: gte, LTE: lte}}
}

// Equals creates a leaf requiring an exact field value.
func Equals(field string, value any) Node {
	return Node{kind: KindLeaf, field: field, exact: value, hasExact: true}
}

// And combines children conjunctively. A single child is returned as-is and
// an empty list yields a zero node (True reports false).
func And(children ...Node) Node {
	return combine(KindAnd, children)
}

// Or combines children disjunctively, with the same collapsing rules as And.
func Or(children ...Node) Node {
	return combine(KindOr, children)
}

func combine(kind Kind, children []Node) Node {
	present := make([]Node, 0, len(children))
	for _, c := range children {
		if c.True() {
			present = append(present, c)
		}
	}
	switch len(present) {
	case 0:
		return Node{kind: kind}
	case 1:
		return present[0]
	}
	return Node{kind: kind, children: present}
}

// True reports whether the node constrains anything at all.
func (n Node) True() bool {
	return n.kind == KindLeaf || len(n.children) > 0
}

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.kind }

// Field returns the leaf field path.
func (n Node) Field() string { return n.field }

// Pattern returns the leaf pattern ("" for range/exact leaves).
func (n Node) Pattern() string { return n.pattern }

// NumRange returns the leaf numeric range, or nil.
func (n Node) NumRange() *Range { return n.rng }

// ExactValue returns the leaf exact value and whether one is set.
func (n Node) ExactValue() (any, bool) { return n.exact, n.hasExact }

// Children returns the composite node's children.
func (n Node) Children() []Node { return n.children }

// Leaves counts the leaf nodes in the tree.
func (n Node) Leaves() int {
	if n.kind == KindLeaf {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += c.Leaves()
	}
	return total
}

// MarshalJSON renders the tree for caller-side transparency: leaves as
// {"field", "pattern"|"gte"/"lte"|"equals"}, composites as {"and": [...]}
// or {"or": [...]}.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n Node) toJSON() any {
	switch n.kind {
	case KindLeaf:
		leaf := map[string]any{"field": n.field}
		switch {
		case n.rng != nil:
			if n.rng.GTE != nil {
				leaf["gte"] = *n.rng.GTE
			}
			if n.rng.LTE != nil {
				leaf["lte"] = *n.rng.LTE
			}
		case n.hasExact:
			leaf["equals"] = n.exact
		default:
			leaf["pattern"] = n.pattern
		}
		return leaf
	case KindAnd, KindOr:
		key := "and"
		if n.kind == KindOr {
			key = "or"
		}
		children := make([]any, len(n.children))
		for i, c := range n.children {
			children[i] = c.toJSON()
		}
		return map[string]any{key: children}
	}
	return nil
}
