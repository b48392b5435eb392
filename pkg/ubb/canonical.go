// canonical.go renders a tree back to well-formed UBB.
package ubb

import "strings"

// RenderUBB renders t as UBB text. Since the tree already obeys the grammar,
// the output is well-formed and correctly nested, and scanning it again
// yields the same output.
func RenderUBB(t *Tree) string {
	var sb strings.Builder
	writeUBB(&sb, t, t.Root())
	return sb.String()
}

func writeUBB(sb *strings.Builder, t *Tree, id NodeID) {
	switch t.Type(id) {
	case TextNode:
		if t.isVerbatim(id) {
			sb.WriteString(t.Text(id))
		} else {
			sb.WriteString(Escape(t.Text(id)))
		}
	case RootNode:
		for _, c := range t.Children(id) {
			writeUBB(sb, t, c)
		}
	case ElementNode:
		name := t.Kind(id).String()
		sb.WriteString("[")
		sb.WriteString(name)
		sb.WriteString(Escape(t.Attr(id)))
		sb.WriteString("]")
		for _, c := range t.Children(id) {
			writeUBB(sb, t, c)
		}
		sb.WriteString("[/")
		sb.WriteString(name)
		sb.WriteString("]")
	}
}
