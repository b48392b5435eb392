package ubb

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"already canonical", "[bold]x[/bold]", "[bold]x[/bold]"},
		{"auto close", "[bold][italic]x[/bold]y[/italic]", "[bold][italic]x[/italic][/bold][italic]y[/italic]"},
		{"unmatched close", "a[/bold]b", "ab"},
		{"unknown tag verbatim", "[foo]bar[/foo]", "[foo]bar[/foo]"},
		{"empty brackets verbatim", "a[]b", "a[]b"},
		{"names are lowercased", "[BOLD]x[/Bold]", "[bold]x[/bold]"},
		{"alias is renamed", "[url href=http://x]t[/URL]", "[link href=http://x]t[/link]"},
		{"escaped tag stays escaped", `\[bold\]`, `\[bold\]`},
		{"escaped open only", `\[bold]`, `\[bold\]`},
		{"stray close bracket gets escaped", "a]b", `a\]b`},
		{"unterminated bracket gets escaped", "x[bold", `x\[bold`},
		{"escaped unknown bracket run", `[fo\]o]`, `\[fo\]o\]`},
		{"attribute brackets are escaped", `[link href=a\]b]t[/link]`, `[link href=a\]b]t[/link]`},
		{"attribute dropped", "[bold junk]x[/bold]", "[bold]x[/bold]"},
		{"backslashes are consumed", `a\b`, "ab"},
		{"unclosed", "[ul]\na", "[ul]\na[/ul]"},
		{"crlf", "[blockquote]a\r\nb[/blockquote]", "[blockquote]a\nb[/blockquote]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fix(tt.input))
		})
	}
}

// fragments are glued together to produce arbitrary, mostly malformed markup.
var fragments = []string{
	"[bold]", "[/bold]", "[italic]", "[/italic]", "[color=#fff]", "[/color]",
	"[link href=h]", "[url]", "[/link]", "[/url]", "[image]", "[/image]", "[video]",
	"[flash]", "[blockquote]", "[/blockquote]", "[ul]", "[/ul]", "[ol]", "[/ol]",
	"[ref]", "[/ref]", "[foo]", "[/foo]", "[", "]", "[/", "\\", "\\[", "\\]",
	"\n", "\r\n", "x", "yz", " ", "[BOLD]", "[bold junk]", "[color", "=", "é",
}

func randomMarkup(rng *rand.Rand) string {
	var sb strings.Builder
	n := rng.Intn(40)
	for i := 0; i < n; i++ {
		sb.WriteString(fragments[rng.Intn(len(fragments))])
	}
	return sb.String()
}

// assertGrammatical checks every parent/child pair and newline placement.
func assertGrammatical(t *testing.T, tree *Tree, id NodeID, input string) {
	t.Helper()
	for _, c := range tree.Children(id) {
		switch tree.Type(c) {
		case TextNode:
			if strings.Contains(tree.Text(c), "\n") {
				require.Equal(t, "\n", tree.Text(c), "input %q", input)
				require.True(t, RuleFor(tree.Kind(id)).AllowsLineBreak, "newline under %s for input %q", tree.Kind(id), input)
			}
		case ElementNode:
			require.True(t, tree.Kind(id).CanContain(tree.Kind(c)), "%s under %s for input %q", tree.Kind(c), tree.Kind(id), input)
			require.Equal(t, id, tree.Parent(c))
			assertGrammatical(t, tree, c, input)
		default:
			t.Fatalf("root below %d for input %q", id, input)
		}
	}
}

func TestFix_Totality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		input := randomMarkup(rng)
		require.NotPanics(t, func() {
			tree := Parse(input)
			assertGrammatical(t, tree, tree.Root(), input)
			RenderUBB(tree)
			RenderHTML(tree, DefaultSettings())
		}, "input %q", input)
	}
}

func TestFix_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		input := randomMarkup(rng)
		once := Fix(input)
		assert.Equal(t, once, Fix(once), "input %q", input)
	}
}

func TestFix_CanonicalOutputNeedsNoRepair(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		input := randomMarkup(rng)
		tree := Parse(Fix(input))
		for _, w := range tree.Warnings {
			assert.True(t, strings.HasPrefix(w, "unknown tag"), "input %q produced %q", input, w)
		}
	}
}

func TestRenderUBB_EscapeRoundTrip(t *testing.T) {
	texts := []string{
		"[bold]",
		"a[b]c",
		"]]][[[",
		"[/italic] and [color=red]",
		"[foo]",
		"plain",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			tree := NewTree()
			tree.Append(tree.Root(), tree.NewText(text))

			out := RenderUBB(tree)
			back := Parse(out)
			kids := back.Children(back.Root())
			require.Len(t, kids, 1)
			assert.Equal(t, TextNode, back.Type(kids[0]))
			assert.Equal(t, text, back.Text(kids[0]))
		})
	}
}

func TestRenderUBB_Tree(t *testing.T) {
	tree := NewTree()
	quote := tree.NewElement(KindBlockquote, "")
	color := tree.NewElement(KindColor, "=#00f")
	tree.Append(tree.Root(), quote)
	tree.Append(quote, color)
	tree.Append(color, tree.NewText("x[y]"))
	tree.Append(quote, tree.NewText("\n"))

	assert.Equal(t, `[blockquote][color=#00f]x\[y\][/color]`+"\n"+`[/blockquote]`, RenderUBB(tree))
}
