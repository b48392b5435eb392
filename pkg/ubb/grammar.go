// grammar.go defines the tag kinds and the containment grammar that drives tree building.
package ubb

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies a node kind. The set is closed: adding a tag means adding a
// constant here and a row to definitions.
type Kind uint8

const (
	KindRoot Kind = iota // tree root, never rendered
	KindText             // leaf text
	KindBold
	KindItalic
	KindColor
	KindLink
	KindImage
	KindVideo
	KindFlash
	KindBlockquote
	KindUnorderedList
	KindOrderedList
	KindRef

	kindCount
)

// ChildPolicy describes which element kinds a tag may directly contain.
type ChildPolicy int

const (
	ChildrenNone ChildPolicy = iota // no element children, text only
	ChildrenAll                     // any element
	ChildrenSet                     // only the kinds listed in Rule.allowed
)

// Rule is the grammar entry for one tag kind.
type Rule struct {
	Name             string
	AcceptsAttribute bool
	Children         ChildPolicy
	AllowsLineBreak  bool
	IsBlock          bool

	allowed [kindCount]bool
}

// definition is the human-authored form of a Rule.
// contains is "" (nothing), "*" (anything) or a comma list of tag names.
type definition struct {
	kind      Kind
	name      string
	contains  string
	attribute bool
	lineBreak bool
	block     bool
}

const inlineChildren = "bold,italic,color,link,image"

var definitions = [...]definition{
	{kind: KindBold, name: "bold", contains: inlineChildren},
	{kind: KindItalic, name: "italic", contains: inlineChildren},
	{kind: KindColor, name: "color", contains: inlineChildren, attribute: true},
	{kind: KindLink, name: "link", contains: inlineChildren, attribute: true},
	{kind: KindImage, name: "image"},
	{kind: KindVideo, name: "video"},
	{kind: KindFlash, name: "flash"},
	{kind: KindBlockquote, name: "blockquote", contains: "*", lineBreak: true, block: true},
	{kind: KindUnorderedList, name: "ul", contains: "*", lineBreak: true, block: true},
	{kind: KindOrderedList, name: "ol", contains: "*", lineBreak: true, block: true},
	{kind: KindRef, name: "ref", block: true},
}

// aliases maps alternate spellings to a registered tag name.
var aliases = map[string]string{
	"url": "link",
}

var (
	grammar [kindCount]Rule
	byName  = make(map[string]Kind, len(definitions)+len(aliases))
)

func init() {
	grammar[KindRoot] = Rule{Name: "#root", Children: ChildrenAll, AllowsLineBreak: true}
	grammar[KindText] = Rule{Name: "#text"}

	for _, d := range definitions {
		byName[d.name] = d.kind
	}
	for alias, name := range aliases {
		byName[alias] = byName[name]
	}

	for _, d := range definitions {
		r := Rule{
			Name:             d.name,
			AcceptsAttribute: d.attribute,
			AllowsLineBreak:  d.lineBreak,
			IsBlock:          d.block,
		}
		switch d.contains {
		case "":
			r.Children = ChildrenNone
		case "*":
			r.Children = ChildrenAll
		default:
			r.Children = ChildrenSet
			for _, name := range strings.Split(d.contains, ",") {
				k, ok := byName[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					panic("ubb: grammar for " + d.name + " names unknown tag " + name)
				}
				r.allowed[k] = true
			}
		}
		grammar[d.kind] = r
	}

	for k := KindBold; k < kindCount; k++ {
		if grammar[k].Name == "" {
			panic("ubb: no grammar definition for kind " + k.String())
		}
	}
}

// Lookup resolves a tag name case-insensitively. ok is false for names that
// are not registered tags.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[strings.ToLower(name)]
	return k, ok
}

// Kinds returns all tag kinds in registration order, excluding the pseudo-kinds.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(definitions))
	for _, d := range definitions {
		kinds = append(kinds, d.kind)
	}
	return kinds
}

// Aliases returns the alternate names that resolve to k, sorted.
func Aliases(k Kind) []string {
	var names []string
	for alias, name := range aliases {
		if byName[name] == k {
			names = append(names, alias)
		}
	}
	sort.Strings(names)
	return names
}

// RuleFor returns the grammar rule of k.
func RuleFor(k Kind) Rule {
	if k >= kindCount {
		return Rule{}
	}
	return grammar[k]
}

// String returns the tag name of k.
func (k Kind) String() string {
	if k >= kindCount || grammar[k].Name == "" {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return grammar[k].Name
}

// IsTag reports whether k is a real tag rather than a pseudo-kind.
func (k Kind) IsTag() bool {
	return k > KindText && k < kindCount
}

// CanContain reports whether a parent of kind k may directly contain a child
// element of kind child. The root contains anything.
func (k Kind) CanContain(child Kind) bool {
	if k == KindRoot {
		return true
	}
	r := RuleFor(k)
	switch r.Children {
	case ChildrenAll:
		return true
	case ChildrenSet:
		return r.allowed[child]
	default:
		return false
	}
}

// AllowedChildren lists the kinds k may contain when its policy is a set.
func (r Rule) AllowedChildren() []Kind {
	var kinds []Kind
	for k, ok := range r.allowed {
		if ok {
			kinds = append(kinds, Kind(k))
		}
	}
	return kinds
}
