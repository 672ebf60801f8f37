// Package hierarchy buckets child records under parent records by a parent reference.
package hierarchy

// Group is one parent with its children in input order.
type Group[P, C any] struct {
	Parent   P   `json:"parent"`
	Children []C `json:"children"`
}

// Result partitions the children: every child is in exactly one group or in Unassigned.
type Result[P, C any] struct {
	Groups     []Group[P, C] `json:"groups"`
	Unassigned []C           `json:"unassigned"`
}

// Build groups children under parents. Groups follow the order of parents. A child whose
// ref is nil or names no known parent goes to Unassigned.
func Build[P, C any, K comparable](parents []P, children []C, key func(P) K, ref func(C) *K) Result[P, C] {
	res := Result[P, C]{
		Groups:     make([]Group[P, C], len(parents)),
		Unassigned: []C{},
	}

	index := make(map[K]int, len(parents))
	for i, p := range parents {
		res.Groups[i] = Group[P, C]{Parent: p, Children: []C{}}
		k := key(p)
		// first parent wins on duplicate keys
		if _, dup := index[k]; !dup {
			index[k] = i
		}
	}

	for _, c := range children {
		r := ref(c)
		if r == nil {
			res.Unassigned = append(res.Unassigned, c)
			continue
		}
		i, ok := index[*r]
		if !ok {
			res.Unassigned = append(res.Unassigned, c)
			continue
		}
		res.Groups[i].Children = append(res.Groups[i].Children, c)
	}
	return res
}

// NonEmpty drops groups without children.
func (r Result[P, C]) NonEmpty() []Group[P, C] {
	out := make([]Group[P, C], 0, len(r.Groups))
	for _, g := range r.Groups {
		if len(g.Children) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// Size is the number of children across all groups and Unassigned.
func (r Result[P, C]) Size() int {
	n := len(r.Unassigned)
	for _, g := range r.Groups {
		n += len(g.Children)
	}
	return n
}
