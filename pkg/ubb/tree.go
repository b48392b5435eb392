// tree.go implements the node arena built by the scanner and walked by the renderers.
package ubb

import "fmt"

// NodeID addresses a node inside its Tree.
type NodeID int32

// NoNode marks the absence of a node.
const NoNode NodeID = -1

// NodeType discriminates the node variants.
type NodeType int

const (
	RootNode NodeType = iota
	TextNode
	ElementNode
)

type node struct {
	kind     Kind
	attr     string // element attribute, verbatim
	text     string // text value
	verbatim bool   // text that must not be bracket-escaped on canonical output
	parent   NodeID
	children []NodeID
}

// Tree owns every node of one parsed document. Nodes refer to their parent by
// index, so the tree stays acyclic and a node can be attached only once.
type Tree struct {
	nodes []node

	// Warnings describes the recoveries performed while building the tree.
	Warnings []string
	// Abandoned counts open elements that were closed for good because the
	// tag opened after them could not hold them. Their formatting is lost for
	// the text that follows.
	Abandoned int
}

// NewTree returns a tree holding only its root.
func NewTree() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, node{kind: KindRoot, parent: NoNode})
	return t
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes ever allocated, reachable or not.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NewText allocates a parentless text node.
func (t *Tree) NewText(value string) NodeID {
	return t.alloc(node{kind: KindText, text: value, parent: NoNode})
}

// newVerbatim allocates a text node that the canonicalizer emits unescaped.
func (t *Tree) newVerbatim(value string) NodeID {
	return t.alloc(node{kind: KindText, text: value, verbatim: true, parent: NoNode})
}

// NewElement allocates a parentless element node. Attributes are dropped for
// kinds that do not accept one.
func (t *Tree) NewElement(kind Kind, attr string) NodeID {
	if !kind.IsTag() {
		panic(fmt.Sprintf("ubb: %s is not an element kind", kind))
	}
	if !RuleFor(kind).AcceptsAttribute {
		attr = ""
	}
	return t.alloc(node{kind: kind, attr: attr, parent: NoNode})
}

func (t *Tree) alloc(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Append attaches child as the last child of parent and returns parent.
// Appending NoNode is a no-op. Attaching a node that already has a parent, the
// root, or anything below a text node is a programming error and panics.
func (t *Tree) Append(parent, child NodeID) NodeID {
	if child == NoNode {
		return parent
	}
	p, c := t.get(parent), t.get(child)
	if c.parent != NoNode || child == t.Root() || child == parent {
		panic(fmt.Sprintf("ubb: node %d (%s) already has a parent", child, c.kind))
	}
	if p.kind == KindText {
		panic(fmt.Sprintf("ubb: cannot append node %d to text node %d", child, parent))
	}
	p.children = append(p.children, child)
	c.parent = parent
	return parent
}

// Clone returns a fresh parentless copy of id without its children.
func (t *Tree) Clone(id NodeID) NodeID {
	n := *t.get(id)
	if n.kind == KindRoot {
		panic("ubb: cannot clone the root")
	}
	n.parent = NoNode
	n.children = nil
	return t.alloc(n)
}

// CloneDeep returns a fresh parentless copy of id and its whole subtree.
func (t *Tree) CloneDeep(id NodeID) NodeID {
	c := t.Clone(id)
	for _, child := range t.get(id).children {
		t.Append(c, t.CloneDeep(child))
	}
	return c
}

// DeepestChild follows last children down from id and returns the node at
// the bottom, which is id itself when it has no children.
func (t *Tree) DeepestChild(id NodeID) NodeID {
	for {
		kids := t.get(id).children
		if len(kids) == 0 {
			return id
		}
		id = kids[len(kids)-1]
	}
}

// Type reports which variant id is.
func (t *Tree) Type(id NodeID) NodeType {
	switch t.get(id).kind {
	case KindRoot:
		return RootNode
	case KindText:
		return TextNode
	default:
		return ElementNode
	}
}

// IsRoot reports whether id is the root.
func (t *Tree) IsRoot(id NodeID) bool {
	return t.get(id).kind == KindRoot
}

// Kind returns the kind of id.
func (t *Tree) Kind(id NodeID) Kind {
	return t.get(id).kind
}

// Attr returns the verbatim attribute of an element.
func (t *Tree) Attr(id NodeID) string {
	return t.get(id).attr
}

// Text returns the value of a text node.
func (t *Tree) Text(id NodeID) string {
	return t.get(id).text
}

// Parent returns the parent of id, or NoNode for the root and detached nodes.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.get(id).parent
}

// Children returns the children of id in order. The slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.get(id).children
}

func (t *Tree) isVerbatim(id NodeID) bool {
	return t.get(id).verbatim
}

func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("ubb: node %d out of range", id))
	}
	return &t.nodes[id]
}

func (t *Tree) warn(format string, args ...interface{}) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}
