// rich.go joins an externally built rich-content tree into UBB text.
package ubb

import "strings"

// RichNode is one node of a tree describing rich content whose semantics
// (bold, links, lists, line breaks) were already decided by whoever built it.
//
// Kind is KindText for text leaves, a tag kind for formatted content, and
// KindRoot for grouping nodes that emit no tag. Prefix and Suffix are emitted
// verbatim outside the node's tags; builders use them for line breaks.
type RichNode struct {
	Kind     Kind
	Attr     string
	Text     string
	Prefix   string
	Suffix   string
	Children []*RichNode
}

// NewRichText returns a text leaf.
func NewRichText(text string) *RichNode {
	return &RichNode{Kind: KindText, Text: text}
}

// NewRichElement returns a node of the given kind holding children.
func NewRichElement(kind Kind, attr string, children ...*RichNode) *RichNode {
	return &RichNode{Kind: kind, Attr: attr, Children: children}
}

// Append adds children to n and returns n.
func (n *RichNode) Append(children ...*RichNode) *RichNode {
	n.Children = append(n.Children, children...)
	return n
}

// FromRich renders a rich tree as UBB text by concatenating every node's
// prefix, opening tag, escaped text, children, closing tag and suffix. The
// tree is trusted to be well nested, so no repair happens here.
func FromRich(n *RichNode) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	writeRich(&sb, n)
	return sb.String()
}

func writeRich(sb *strings.Builder, n *RichNode) {
	open, close := richTags(n)
	sb.WriteString(n.Prefix)
	sb.WriteString(open)
	if n.Kind == KindText {
		sb.WriteString(Escape(n.Text))
	}
	for _, c := range n.Children {
		writeRich(sb, c)
	}
	sb.WriteString(close)
	sb.WriteString(n.Suffix)
}

// richTags returns the opening and closing text for a node. Lists put their
// items on their own lines.
func richTags(n *RichNode) (open, close string) {
	if !n.Kind.IsTag() {
		return "", ""
	}
	name := n.Kind.String()
	attr := ""
	if RuleFor(n.Kind).AcceptsAttribute {
		attr = Escape(n.Attr)
	}
	open = "[" + name + attr + "]"
	close = "[/" + name + "]"
	switch n.Kind {
	case KindUnorderedList, KindOrderedList:
		open += "\n"
		close = "\n" + close
	}
	return open, close
}
