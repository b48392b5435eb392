package ubb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyInput(t *testing.T) {
	tree := Parse("")
	assert.Empty(t, tree.Children(tree.Root()))
	assert.Empty(t, tree.Warnings)
}

func TestParse_PlainText(t *testing.T) {
	tree := Parse("Hello world")
	kids := tree.Children(tree.Root())
	require.Len(t, kids, 1)
	assert.Equal(t, TextNode, tree.Type(kids[0]))
	assert.Equal(t, "Hello world", tree.Text(kids[0]))
}

func TestParse_Tag(t *testing.T) {
	tree := Parse("a[bold]b[/bold]c")
	kids := tree.Children(tree.Root())
	require.Len(t, kids, 3)
	assert.Equal(t, "a", tree.Text(kids[0]))
	assert.Equal(t, KindBold, tree.Kind(kids[1]))
	assert.Equal(t, "c", tree.Text(kids[2]))

	inner := tree.Children(kids[1])
	require.Len(t, inner, 1)
	assert.Equal(t, "b", tree.Text(inner[0]))
}

func TestParse_Attributes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		attr  string
	}{
		{"color", "[color=#ff0000]x[/color]", KindColor, "=#ff0000"},
		{"link href", "[link href=http://x]t[/link]", KindLink, " href=http://x"},
		{"alias keeps attribute", "[url href=http://x]t[/url]", KindLink, " href=http://x"},
		{"escaped bracket in attribute", `[link href=a\]b]t[/link]`, KindLink, " href=a]b"},
		{"no attribute", "[link]t[/link]", KindLink, ""},
		{"attribute dropped for bold", "[bold junk]t[/bold]", KindBold, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Parse(tt.input)
			kids := tree.Children(tree.Root())
			require.Len(t, kids, 1)
			assert.Equal(t, tt.kind, tree.Kind(kids[0]))
			assert.Equal(t, tt.attr, tree.Attr(kids[0]))
		})
	}
}

func TestParse_Escapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"escaped open", `\[bold]`, "[bold]"},
		{"escaped both", `\[bold\]`, "[bold]"},
		{"backslash before letter is dropped", `a\b`, "ab"},
		{"trailing backslash is dropped", `abc\`, "abc"},
		{"double backslash", `\\[x]`, "[x]"},
		{"stray close bracket", "a]b", "a]b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Parse(tt.input)
			kids := tree.Children(tree.Root())
			require.Len(t, kids, 1)
			assert.Equal(t, TextNode, tree.Type(kids[0]))
			assert.Equal(t, tt.want, tree.Text(kids[0]))
		})
	}
}

func TestParse_UnknownTagIsText(t *testing.T) {
	tree := Parse("[foo]bar[/foo]")
	var texts []string
	for _, id := range tree.Children(tree.Root()) {
		require.Equal(t, TextNode, tree.Type(id))
		texts = append(texts, tree.Text(id))
	}
	assert.Equal(t, []string{"[foo]", "bar", "[/foo]"}, texts)
	assert.Contains(t, tree.Warnings, "unknown tag: [foo]")
}

func TestParse_CarriageReturns(t *testing.T) {
	tree := Parse("a\r\nb")
	kids := tree.Children(tree.Root())
	require.Len(t, kids, 3)
	assert.Equal(t, "a", tree.Text(kids[0]))
	assert.Equal(t, "\n", tree.Text(kids[1]))
	assert.Equal(t, "b", tree.Text(kids[2]))
}

func TestParse_AutoClose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "close reopens inner tag",
			input: "[bold][italic]x[/bold]y[/italic]",
			want:  "[bold][italic]x[/italic][/bold][italic]y[/italic]",
		},
		{
			name:  "close keeps attribute of reopened tag",
			input: "[bold]x[color=#f00]y[/bold]z[/color]",
			want:  "[bold]x[color=#f00]y[/color][/bold][color=#f00]z[/color]",
		},
		{
			name:  "close reopens a chain",
			input: "[bold][italic][color=red]x[/bold]y",
			want:  "[bold][italic][color=red]x[/color][/italic][/bold][italic][color=red]y[/color][/italic]",
		},
		{
			name:  "unclosed tag is closed at the end",
			input: "[bold]unclosed",
			want:  "[bold]unclosed[/bold]",
		},
		{
			name:  "stray close is ignored",
			input: "a[/bold]b",
			want:  "ab",
		},
		{
			name:  "stray close inside a tag is ignored",
			input: "[bold]a[/italic]b[/bold]",
			want:  "[bold]ab[/bold]",
		},
		{
			name:  "block inside inline reopens the inline inside the block",
			input: "[bold]a[blockquote]b[/blockquote]c[/bold]",
			want:  "[bold]a[/bold][blockquote][bold]b[/bold][/blockquote][bold]c[/bold]",
		},
		{
			name:  "disallowed everywhere lands under root",
			input: "[image]x[ul]y[/ul]",
			want:  "[image]x[/image][ul][image]y[/image][/ul][image][/image]",
		},
		{
			name:  "chain the new tag cannot hold is abandoned",
			input: "[ul][image]a[ref]b[/ref][/ul]",
			want:  "[ul][image]a[/image][ref]b[/ref][/ul]",
		},
		{
			name:  "media reopened inside inline",
			input: "[image][bold]x[/bold][/image]",
			want:  "[image][/image][bold][image]x[/image][/bold][image][/image]",
		},
		{
			name:  "nested tags of the same kind",
			input: "[bold]a[bold]b[/bold]c[/bold]",
			want:  "[bold]a[bold]b[/bold]c[/bold]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderUBB(Parse(tt.input)))
		})
	}
}

func TestParse_LineBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"root keeps newlines", "a\nb", "a\nb"},
		{"inline is closed around newline", "[bold]a\nb[/bold]", "[bold]a[/bold]\n[bold]b[/bold]"},
		{"block keeps newlines", "[blockquote]a\nb[/blockquote]", "[blockquote]a\nb[/blockquote]"},
		{"newline hoisted to nearest block", "[blockquote][bold]a\nb[/bold][/blockquote]", "[blockquote][bold]a[/bold]\n[bold]b[/bold][/blockquote]"},
		{"ref forbids newlines", "[ref]a\nb[/ref]", "[ref]a[/ref]\n[ref]b[/ref]"},
		{"list items", "[ul]\na\nb\n[/ul]", "[ul]\na\nb\n[/ul]"},
		{"newline ends bracket run", "[bold\nx", "\\[bold\nx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderUBB(Parse(tt.input)))
		})
	}
}

func TestParse_CursorAfterAbandonedChain(t *testing.T) {
	tree := Parse("[ul][image]a[ref]b")
	ul := tree.Children(tree.Root())[0]
	kids := tree.Children(ul)
	require.Len(t, kids, 2)
	assert.Equal(t, KindImage, tree.Kind(kids[0]))
	assert.Equal(t, KindRef, tree.Kind(kids[1]))

	// text after the ref lands in the ref, the image is not reopened
	refKids := tree.Children(kids[1])
	require.Len(t, refKids, 1)
	assert.Equal(t, "b", tree.Text(refKids[0]))
	assert.Contains(t, tree.Warnings, "[ref] is not allowed inside [image]: closed without reopening")
}

func TestParse_Warnings(t *testing.T) {
	tree := Parse("[bold][italic]x[/bold]y[/italic][/color]")
	assert.Equal(t, []string{
		"[/bold] closed [italic] early: reopened after it",
		"stray close tag: [/color]",
	}, tree.Warnings)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		wantOK  bool
		kind    Kind
		close   bool
		attr    string
		tagName string
	}{
		{"open", "[bold", true, KindBold, false, "", "bold"},
		{"close", "[/bold", true, KindBold, true, "", "bold"},
		{"close ignores trailing text", "[/bold junk", true, KindBold, true, "", "bold"},
		{"attribute", "[color=#fff", true, KindColor, false, "=#fff", "color"},
		{"name stops at digit", "[bold1", true, KindBold, false, "1", "bold"},
		{"longer name is unknown", "[bolder", false, 0, false, "", "bolder"},
		{"empty", "[", false, 0, false, "", ""},
		{"slash only", "[/", false, 0, false, "", ""},
		{"leading space", "[ bold", false, 0, false, "", ""},
		{"not a bracket run", "bold", false, 0, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ok := parseTag(tt.buf)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.tagName, tag.name)
			if tt.wantOK {
				assert.Equal(t, tt.kind, tag.kind)
				assert.Equal(t, tt.close, tag.close)
				assert.Equal(t, tt.attr, tag.attr)
			}
		})
	}
}
