package richtext

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

// markdownParser is a goldmark parser configured for UBB conversion.
var markdownParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
)

// FromMarkdown reads Markdown into a rich tree ready for ubb.FromRich.
func FromMarkdown(source []byte, s ubb.Settings) *ubb.RichNode {
	root := ubb.NewRichElement(ubb.KindRoot, "")
	if len(source) == 0 {
		return root
	}

	doc := markdownParser.Parser().Parse(text.NewReader(source))
	r := &markdownReader{source: source, settings: s}
	r.lines.push()
	r.readChildren(doc, root, style{})
	r.lines.pop()
	return root
}

// ToMarkdown converts UBB text to Markdown by way of HTML.
func ToMarkdown(ubbText string, s ubb.Settings) (string, error) {
	if ubbText == "" {
		return "", nil
	}
	return MarkdownFromHTML(ubb.New(s).ToHTML(ubbText).Output)
}

// MarkdownFromHTML converts rendered HTML to Markdown.
func MarkdownFromHTML(html string) (string, error) {
	if html == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert html to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// markdownReader holds state during AST conversion.
type markdownReader struct {
	source   []byte
	settings ubb.Settings
	lines    lineTracker
}

func (r *markdownReader) readChildren(n ast.Node, into *ubb.RichNode, st style) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		r.read(child, into, st)
	}
}

// read converts one AST node, appending the result to into.
func (r *markdownReader) read(n ast.Node, into *ubb.RichNode, st style) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *extast.Table, *extast.TableHeader, *extast.TableRow:
		into.Append(r.block(node, ubb.KindRoot, st))
	case *ast.Heading:
		st.bold = true
		into.Append(r.block(node, ubb.KindRoot, st))
	case *ast.Blockquote:
		into.Append(r.block(node, ubb.KindBlockquote, st))
	case *ast.List:
		kind := ubb.KindUnorderedList
		if node.IsOrdered() {
			kind = ubb.KindOrderedList
		}
		into.Append(r.block(node, kind, st))
	case *ast.ListItem:
		into.Append(r.block(node, ubb.KindRoot, st))
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		into.Append(r.codeBlock(node))
	case *ast.ThematicBreak:
		rule := ubb.NewRichElement(ubb.KindRoot, "")
		r.lines.see(eventBlock, rule)
		into.Append(rule)
	case *ast.HTMLBlock, *ast.RawHTML:
		// Raw HTML is dropped.
	case *extast.TableCell:
		cell := ubb.NewRichElement(ubb.KindRoot, "")
		if node.PreviousSibling() != nil {
			cell.Prefix = " "
		}
		r.readChildren(node, cell, st)
		r.lines.see(eventInline, cell)
		into.Append(cell)
	case *ast.Text:
		value := string(node.Segment.Value(r.source))
		if node.SoftLineBreak() {
			if r.settings.KeepNewLine {
				value += "\n"
			} else {
				value += " "
			}
		}
		r.text(value, into, st)
		if node.HardLineBreak() {
			br := ubb.NewRichElement(ubb.KindRoot, "")
			r.lines.see(eventBreak, br)
			into.Append(br)
		}
	case *ast.String:
		r.text(string(node.Value), into, st)
	case *ast.CodeSpan:
		var sb strings.Builder
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				sb.Write(t.Segment.Value(r.source))
			}
		}
		r.text(sb.String(), into, st)
	case *ast.Emphasis:
		if node.Level == 2 {
			st.bold = true
		} else {
			st.italic = true
		}
		r.readChildren(node, into, st)
	case *ast.Link:
		link := ubb.NewRichElement(ubb.KindLink, ubb.LinkAttr(string(node.Destination)))
		r.readChildren(node, link, st)
		r.lines.see(eventInline, link)
		into.Append(link)
	case *ast.AutoLink:
		link := ubb.NewRichElement(ubb.KindLink, ubb.LinkAttr(string(node.URL(r.source))))
		r.text(string(node.Label(r.source)), link, st)
		r.lines.see(eventInline, link)
		into.Append(link)
	case *ast.Image:
		img := ubb.NewRichElement(ubb.KindImage, "", ubb.NewRichText(string(node.Destination)))
		r.lines.see(eventText, img)
		into.Append(img)
	default:
		// Strikethrough and anything else unknown keep their content only.
		r.readChildren(n, into, st)
	}
}

// block reads n as its own block box. A block without content counts as a
// line break.
func (r *markdownReader) block(n ast.Node, kind ubb.Kind, st style) *ubb.RichNode {
	node := ubb.NewRichElement(kind, "")
	r.lines.push()
	r.readChildren(n, node, st)
	r.lines.pop()
	if len(node.Children) > 0 {
		r.lines.see(eventBlock, node)
	} else {
		r.lines.see(eventBreak, node)
	}
	return node
}

func (r *markdownReader) codeBlock(n ast.Node) *ubb.RichNode {
	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(r.source))
	}
	node := ubb.NewRichElement(ubb.KindRoot, "", ubb.NewRichText(strings.TrimSuffix(code.String(), "\n")))
	r.lines.see(eventBlock, node)
	return node
}

func (r *markdownReader) text(value string, into *ubb.RichNode, st style) {
	value = normalizeText(value, r.settings)
	if value == "" {
		return
	}
	leaf := st.wrap(ubb.NewRichText(value), "")
	r.lines.see(textEvent(value, r.settings), leaf)
	into.Append(leaf)
}
