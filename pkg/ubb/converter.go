// Package ubb converts forum markup written with bracket tags ([bold]...[/bold])
// to HTML and back, and repairs malformed markup into well-formed UBB.
//
// Conversion never fails on malformed input: scanning always produces a tree
// whose nesting obeys the tag grammar, and both renderers work from that tree.
package ubb

// Converter bundles settings with the conversion entry points. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	settings Settings
}

// New returns a converter using s.
func New(s Settings) *Converter {
	return &Converter{settings: s}
}

// Settings returns the converter's settings.
func (c *Converter) Settings() Settings {
	return c.settings
}

// Result is the outcome of a conversion along with the recoveries made.
// Abandoned is non-zero when formatting was closed and not carried over to
// the text after it, so the output no longer formats that text as written.
type Result struct {
	Output    string
	Warnings  []string
	Abandoned int
}

// ToHTML converts UBB text to an HTML fragment.
func (c *Converter) ToHTML(input string) Result {
	t := Parse(input)
	return Result{Output: RenderHTML(t, c.settings), Warnings: t.Warnings, Abandoned: t.Abandoned}
}

// Fix rewrites UBB text as well-formed, correctly nested UBB. Repairs keep
// the formatting of every text run except where Result.Abandoned counts a
// dropped element.
func (c *Converter) Fix(input string) Result {
	t := Parse(input)
	return Result{Output: RenderUBB(t), Warnings: t.Warnings, Abandoned: t.Abandoned}
}

// FromRich converts an already built rich-content tree to UBB text.
func (c *Converter) FromRich(n *RichNode) string {
	return FromRich(n)
}

// ToHTML converts UBB text to HTML with default settings.
func ToHTML(input string) string {
	return RenderHTML(Parse(input), DefaultSettings())
}

// Fix canonicalizes UBB text.
func Fix(input string) string {
	return RenderUBB(Parse(input))
}
