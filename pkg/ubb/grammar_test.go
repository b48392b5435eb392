package ubb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Kind
		wantOK bool
	}{
		{"lowercase", "bold", KindBold, true},
		{"uppercase", "BOLD", KindBold, true},
		{"mixed case", "BlockQuote", KindBlockquote, true},
		{"alias", "url", KindLink, true},
		{"alias uppercase", "URL", KindLink, true},
		{"list", "ul", KindUnorderedList, true},
		{"unknown", "foo", 0, false},
		{"pseudo kind text", "#text", 0, false},
		{"pseudo kind root", "#root", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKind_CanContain(t *testing.T) {
	tests := []struct {
		parent Kind
		child  Kind
		want   bool
	}{
		{KindRoot, KindRef, true},
		{KindRoot, KindBlockquote, true},
		{KindBold, KindItalic, true},
		{KindBold, KindBold, true},
		{KindBold, KindImage, true},
		{KindBold, KindVideo, false},
		{KindBold, KindBlockquote, false},
		{KindItalic, KindUnorderedList, false},
		{KindLink, KindColor, true},
		{KindImage, KindBold, false},
		{KindRef, KindBold, false},
		{KindBlockquote, KindRef, true},
		{KindUnorderedList, KindOrderedList, true},
		{KindOrderedList, KindVideo, true},
	}

	for _, tt := range tests {
		t.Run(tt.parent.String()+"/"+tt.child.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.parent.CanContain(tt.child))
		})
	}
}

func TestRuleFor(t *testing.T) {
	color := RuleFor(KindColor)
	assert.Equal(t, "color", color.Name)
	assert.True(t, color.AcceptsAttribute)
	assert.Equal(t, ChildrenSet, color.Children)
	assert.ElementsMatch(t, []Kind{KindBold, KindItalic, KindColor, KindLink, KindImage}, color.AllowedChildren())
	assert.False(t, color.AllowsLineBreak)
	assert.False(t, color.IsBlock)

	quote := RuleFor(KindBlockquote)
	assert.Equal(t, ChildrenAll, quote.Children)
	assert.True(t, quote.AllowsLineBreak)
	assert.True(t, quote.IsBlock)
	assert.False(t, quote.AcceptsAttribute)

	ref := RuleFor(KindRef)
	assert.Equal(t, ChildrenNone, ref.Children)
	assert.False(t, ref.AllowsLineBreak)
	assert.True(t, ref.IsBlock)

	assert.Equal(t, ChildrenNone, RuleFor(KindImage).Children)
	assert.Equal(t, Rule{}, RuleFor(kindCount))
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, int(kindCount)-2)
	for _, k := range kinds {
		assert.True(t, k.IsTag(), k.String())
		assert.NotNil(t, htmlFormatters[k], k.String())
	}
	assert.False(t, KindRoot.IsTag())
	assert.False(t, KindText.IsTag())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bold", KindBold.String())
	assert.Equal(t, "link", KindLink.String())
	assert.Equal(t, "#text", KindText.String())
	assert.Equal(t, "#root", KindRoot.String())
	assert.Equal(t, "kind(200)", Kind(200).String())
}

func TestAliases(t *testing.T) {
	assert.Equal(t, []string{"url"}, Aliases(KindLink))
	assert.Empty(t, Aliases(KindBold))
}
