// html.go reads HTML fragments into rich trees.
package richtext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

// blockTags are the elements whose default display opens a block box.
var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Caption: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Tbody: true, atom.Tfoot: true, atom.Thead: true, atom.Tr: true, atom.Ul: true,
}

// replacedTags are inline elements that render like a piece of text.
var replacedTags = map[atom.Atom]bool{
	atom.Img: true, atom.Object: true, atom.Button: true,
	atom.Textarea: true, atom.Input: true, atom.Select: true,
}

// skippedTags never render visible text.
var skippedTags = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true,
	atom.Template: true, atom.Title: true, atom.Noscript: true,
}

// refClasses mark a quoted reference block.
var refClasses = []string{"ubb-ref", "gui-ubb-ref"}

// FromHTML reads an HTML fragment into a rich tree ready for ubb.FromRich.
//
// Formatting is detected from tag names and inline styles: b, strong and
// font-weight for bold, i, em and font-style for italic, font color and style
// color for color. Line breaks follow the block structure of the fragment.
func FromHTML(r io.Reader, s ubb.Settings) (*ubb.RichNode, error) {
	nodes, err := html.ParseFragment(r, &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	// Reattach the fragment so top-level nodes keep their siblings.
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	rd := &htmlReader{
		settings:     s,
		defaultColor: strings.ToLower(ubb.NormalizeColor(s.DefaultColor)),
		linkColor:    strings.ToLower(ubb.NormalizeColor(s.LinkDefaultColor)),
	}
	root := ubb.NewRichElement(ubb.KindRoot, "")
	rd.lines.push()
	rd.readChildren(body, root, style{})
	rd.lines.pop()
	return root, nil
}

type htmlReader struct {
	settings     ubb.Settings
	defaultColor string
	linkColor    string
	lines        lineTracker
}

func (r *htmlReader) readChildren(n *html.Node, into *ubb.RichNode, st style) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := r.read(c, st); child != nil {
			into.Append(child)
		}
	}
}

func (r *htmlReader) read(n *html.Node, st style) *ubb.RichNode {
	switch n.Type {
	case html.TextNode:
		return r.readText(n, st)
	case html.ElementNode:
		return r.readElement(n, st)
	}
	return nil
}

func (r *htmlReader) readText(n *html.Node, st style) *ubb.RichNode {
	if collapsible(n) {
		return nil
	}
	text := normalizeText(n.Data, r.settings)
	if text == "" {
		return nil
	}

	inLink := n.Parent != nil && n.Parent.DataAtom == atom.A
	leaf := st.wrap(ubb.NewRichText(text), r.visibleColor(st.color, inLink))
	r.lines.see(textEvent(text, r.settings), leaf)
	return leaf
}

// visibleColor returns the color to tag text with, or "" when the text
// already shows in the default color for its context.
func (r *htmlReader) visibleColor(color string, inLink bool) string {
	c := strings.ToLower(ubb.NormalizeColor(color))
	if c == "" || c == r.defaultColor || (inLink && c == r.linkColor) {
		return ""
	}
	return c
}

func (r *htmlReader) readElement(n *html.Node, st style) *ubb.RichNode {
	if skippedTags[n.DataAtom] {
		return nil
	}

	node := ubb.NewRichElement(ubb.KindRoot, "")
	block := blockTags[n.DataAtom]
	if block {
		r.lines.push()
	}
	r.readChildren(n, node, inherit(n, st))
	if block {
		r.lines.pop()
	}

	switch {
	case n.DataAtom == atom.Br:
		r.lines.see(eventBreak, node)
	case block && hasContent(n):
		r.lines.see(eventBlock, node)
	case block:
		r.lines.see(eventBreak, node)
	case replacedTags[n.DataAtom]:
		r.lines.see(eventText, node)
	default:
		r.lines.see(eventInline, node)
	}

	tagElement(n, node)
	return node
}

// tagElement gives node the UBB tag its element maps to, if any.
func tagElement(n *html.Node, node *ubb.RichNode) {
	switch n.DataAtom {
	case atom.A:
		if href := attr(n, "href"); href != "" {
			node.Kind, node.Attr = ubb.KindLink, ubb.LinkAttr(href)
		}
	case atom.Img:
		if src := attr(n, "data-src"); src != "" {
			node.Kind = ubb.KindVideo
			node.Append(ubb.NewRichText(src))
		} else if src := attr(n, "src"); src != "" {
			node.Kind = ubb.KindImage
			node.Append(ubb.NewRichText(src))
		}
	case atom.Blockquote:
		node.Kind = ubb.KindBlockquote
	case atom.Ul:
		node.Kind = ubb.KindUnorderedList
	case atom.Ol:
		node.Kind = ubb.KindOrderedList
	case atom.Div:
		if hasClass(n, refClasses...) {
			node.Kind = ubb.KindRef
		}
	}
}

// inherit returns the formatting that n passes on to its descendants.
func inherit(n *html.Node, st style) style {
	switch n.DataAtom {
	case atom.B, atom.Strong, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		st.bold = true
	case atom.I, atom.Em, atom.Cite, atom.Var, atom.Dfn, atom.Address:
		st.italic = true
	case atom.A:
		// Links show in the link color unless styled otherwise.
		st.color = ""
	case atom.Font:
		if c := attr(n, "color"); c != "" {
			st.color = c
		}
	}

	decls, err := styleDeclarations(attr(n, "style"))
	if err != nil {
		return st
	}
	for _, d := range decls {
		value := strings.ToLower(strings.TrimSpace(d.Value))
		switch strings.ToLower(d.Property) {
		case "font-weight":
			st.bold = isBold(value)
		case "font-style":
			st.italic = value == "italic" || value == "oblique"
		case "color":
			st.color = value
		}
	}
	return st
}

// styleDeclarations parses an inline style attribute. douceur drops the value
// of a final declaration that is not terminated, so one is always added.
func styleDeclarations(style string) ([]*css.Declaration, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil, nil
	}
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	return parser.ParseDeclarations(style)
}

func isBold(weight string) bool {
	if n, err := strconv.Atoi(weight); err == nil {
		return n > 400
	}
	return weight == "bold" || weight == "bolder"
}

// collapsible reports whether n is white space between block boundaries,
// which browsers do not render.
func collapsible(n *html.Node) bool {
	if strings.TrimSpace(n.Data) != "" {
		return false
	}
	isBoundary := func(s *html.Node) bool {
		return s == nil || (s.Type == html.ElementNode && blockTags[s.DataAtom])
	}
	return isBoundary(n.PrevSibling) && isBoundary(n.NextSibling)
}

// hasContent reports whether a block would take up height when rendered.
func hasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return true
			}
		case html.ElementNode:
			if skippedTags[c.DataAtom] {
				continue
			}
			if replacedTags[c.DataAtom] || c.DataAtom == atom.Br || c.DataAtom == atom.Hr || hasContent(c) {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, classes ...string) bool {
	for _, have := range strings.Fields(attr(n, "class")) {
		for _, want := range classes {
			if have == want {
				return true
			}
		}
	}
	return false
}
