package types

// Dependency is one hop of the requirement graph as seen from an
// element: the identifier of the element on the other end of the edge
// and the edge's label (e.g. "rig", "tex").
//
// The store records direct edges only. It never walks the graph
// transitively and gives no acyclicity guarantee; callers that iterate
// must guard against cycles themselves.
type Dependency struct {
	Identifier string
	Label      string
}
