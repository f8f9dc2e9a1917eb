package render

// Attr is a single attribute on a tree node. Attributes are kept as an
// ordered slice so serialization is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element of the rendered visual tree. The tree carries no
// behavior; event wiring is the presentation layer's concern.
type Node struct {
	Tag      string
	Class    string
	Text     string
	Attrs    []Attr
	Children []*Node
}

// el creates an element node with the given tag and class.
func el(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

// text creates an element node holding text content.
func text(tag, class, content string) *Node {
	return &Node{Tag: tag, Class: class, Text: content}
}

// Find returns the first node in the tree with the given class, or nil.
func (n *Node) Find(class string) *Node {
	if n == nil {
		return nil
	}
	if n.Class == class {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}
