package domain

// ViewFileExt is the file extension of view definitions.
const ViewFileExt = ".yaml"

// ControllerType names the controller a view definition binds to, e.g. "trade.offer".
// An empty ControllerType means the view has no controller.
type ControllerType string

// Resource is the concrete location a ViewID resolved to.
type Resource struct {
	ID   ViewID
	Path string
}

// Node is a single element of a view tree.
type Node struct {
	Kind     string
	ID       string
	Text     string
	Props    map[string]string
	Children []*Node
}

// Walk visits n and all of its descendants depth-first. It stops early if fn
// returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given element ID.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// View is a constructed view: the tree built from a definition plus the
// controller type it declares.
type View struct {
	ID         ViewID
	Title      string
	Controller ControllerType
	Root       *Node
	// Digest is the xxhash of the definition source.
	Digest uint64
}

// CacheEntry pairs a constructed view with its controller instance.
// Entries are shared between the view cache and every caller holding one.
type CacheEntry struct {
	View       *View
	Controller any
}
