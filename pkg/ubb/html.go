// html.go renders a tree as an HTML fragment.
package ubb

import "strings"

// lineBreakHTML is what a newline renders to; list renderers split on it.
const lineBreakHTML = "<br/>"

// htmlFormatter renders one element given its already rendered children.
type htmlFormatter func(t *Tree, id NodeID, inner string, s *Settings) string

// htmlFormatters is indexed by kind; every tag kind must have an entry.
var htmlFormatters = [kindCount]htmlFormatter{
	KindBold: func(_ *Tree, _ NodeID, inner string, _ *Settings) string {
		return "<b>" + inner + "</b>"
	},
	KindItalic: func(_ *Tree, _ NodeID, inner string, _ *Settings) string {
		return "<i>" + inner + "</i>"
	},
	KindColor: func(t *Tree, id NodeID, inner string, _ *Settings) string {
		return `<span style="color:` + escapeHTML(colorValue(t.Attr(id))) + `;">` + inner + "</span>"
	},
	KindLink:       formatLink,
	KindImage:      formatImage,
	KindVideo:      formatFlash,
	KindFlash:      formatFlash,
	KindBlockquote: wrap("<blockquote>", "</blockquote>"),
	KindUnorderedList: func(_ *Tree, _ NodeID, inner string, _ *Settings) string {
		return formatList("ul", inner)
	},
	KindOrderedList: func(_ *Tree, _ NodeID, inner string, _ *Settings) string {
		return formatList("ol", inner)
	},
	KindRef: wrap(`<div class="ubb-ref">`, "</div>"),
}

func init() {
	for _, k := range Kinds() {
		if htmlFormatters[k] == nil {
			panic("ubb: no html formatter for " + k.String())
		}
	}
}

func wrap(open, close string) htmlFormatter {
	return func(_ *Tree, _ NodeID, inner string, _ *Settings) string {
		return open + inner + close
	}
}

// formatLink uses the attribute as href. Without one, the href is taken from
// the link's own text, e.g. [link]http://x/[bold]1[/bold][/link].
func formatLink(t *Tree, id NodeID, inner string, _ *Settings) string {
	href := hrefValue(t.Attr(id))
	if t.Attr(id) == "" {
		var sb strings.Builder
		for _, c := range t.Children(id) {
			if t.Type(c) == TextNode {
				sb.WriteString(t.Text(c))
			}
		}
		href = sb.String()
	}
	return `<a href="` + escapeHTML(href) + `">` + inner + "</a>"
}

func formatImage(_ *Tree, _ NodeID, inner string, _ *Settings) string {
	if inner == "" {
		return ""
	}
	return `<img src="` + inner + `"/>`
}

func formatFlash(_ *Tree, _ NodeID, inner string, s *Settings) string {
	if inner == "" {
		return ""
	}
	return `<img class="ubb-flash" data-src="` + inner + `" src="` + escapeHTML(s.FlashImage) +
		`" width="480" height="400"/>`
}

// formatList turns line-separated content into list items, dropping one empty
// leading and one empty trailing segment.
func formatList(tag, inner string) string {
	items := strings.Split(inner, lineBreakHTML)
	if len(items) > 0 && items[0] == "" {
		items = items[1:]
	}
	if len(items) > 0 && items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	return "<" + tag + "><li>" + strings.Join(items, "</li><li>") + "</li></" + tag + ">"
}

// htmlRenderer carries the per-traversal newline suppression flag.
type htmlRenderer struct {
	tree     *Tree
	settings *Settings
	noBreak  bool // the last rendered node was a block; swallow one newline
}

// RenderHTML renders t as an HTML fragment.
func RenderHTML(t *Tree, s Settings) string {
	r := &htmlRenderer{tree: t, settings: &s}
	return r.render(t.Root())
}

func (r *htmlRenderer) render(id NodeID) string {
	t := r.tree
	switch t.Type(id) {
	case TextNode:
		return r.renderText(id)
	case RootNode:
		return r.renderChildren(id)
	case ElementNode:
		inner := r.renderChildren(id)
		kind := t.Kind(id)
		r.noBreak = RuleFor(kind).IsBlock
		return htmlFormatters[kind](t, id, inner, r.settings)
	}
	return ""
}

func (r *htmlRenderer) renderChildren(id NodeID) string {
	var sb strings.Builder
	for _, c := range r.tree.Children(id) {
		sb.WriteString(r.render(c))
	}
	return sb.String()
}

func (r *htmlRenderer) renderText(id NodeID) string {
	value := r.tree.Text(id)
	if value == "\n" {
		if r.noBreak {
			r.noBreak = false
			return ""
		}
		return lineBreakHTML
	}
	r.noBreak = false
	return escapeHTML(value)
}
