// Package richtext reads rich content (HTML fragments, Markdown) into
// ubb.RichNode trees and converts UBB onward to Markdown and safe HTML.
package richtext

import (
	"regexp"
	"strings"

	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

// lineState is what a block box last emitted.
type lineState uint8

const (
	lineNothing lineState = iota
	lineText              // text or an inline-block element
	lineBreak             // a <br>, or a block without content
	lineBlock             // a block with content
)

// event is the kind of content arriving in the current block box.
type event uint8

const (
	eventText event = iota + 1
	eventBreak
	eventBlock
	eventTextNewline // text ending in a kept newline
	eventInline
)

// needsNewline[state][event] reports whether a newline must separate the
// previous node from the arriving one.
var needsNewline = [4][6]bool{
	lineNothing: {},
	lineText:    {eventBlock: true},
	lineBreak:   {eventText: true, eventBreak: true, eventBlock: true, eventTextNewline: true},
	lineBlock:   {eventText: true, eventBreak: true, eventBlock: true, eventTextNewline: true},
}

// lineTracker places newlines between the nodes of nested block boxes. Each
// box keeps its own state and the last node seen in it; a newline goes into
// that node's suffix so it never lands inside a tag.
type lineTracker struct {
	states []lineState
	last   []*ubb.RichNode
}

func (l *lineTracker) push() {
	l.states = append(l.states, lineNothing)
	l.last = append(l.last, nil)
}

func (l *lineTracker) pop() {
	l.states = l.states[:len(l.states)-1]
	l.last = l.last[:len(l.last)-1]
}

func (l *lineTracker) see(ev event, n *ubb.RichNode) {
	i := len(l.states) - 1
	if prev := l.last[i]; prev != nil && needsNewline[l.states[i]][ev] {
		prev.Suffix += "\n"
	}
	switch ev {
	case eventText:
		l.states[i] = lineText
	case eventBreak:
		l.states[i] = lineBreak
	case eventBlock:
		l.states[i] = lineBlock
	case eventTextNewline:
		l.states[i] = lineNothing
	}
	l.last[i] = n
}

// style is the inherited character formatting applied to text leaves.
type style struct {
	bold   bool
	italic bool
	color  string
}

// wrap nests a leaf in the tags for its formatting, color outermost.
func (s style) wrap(leaf *ubb.RichNode, color string) *ubb.RichNode {
	n := leaf
	if s.bold {
		n = ubb.NewRichElement(ubb.KindBold, "", n)
	}
	if s.italic {
		n = ubb.NewRichElement(ubb.KindItalic, "", n)
	}
	if color != "" {
		n = ubb.NewRichElement(ubb.KindColor, ubb.ColorAttr(color), n)
	}
	return n
}

var whiteSpaceRun = regexp.MustCompile(`\s{2,}`)

// normalizeText applies the newline and white space settings to raw text.
func normalizeText(text string, s ubb.Settings) string {
	if !s.KeepNewLine {
		text = strings.ReplaceAll(text, "\n", "")
	}
	if !s.KeepWhiteSpace {
		text = strings.TrimSpace(whiteSpaceRun.ReplaceAllString(text, " "))
	}
	return text
}

// textEvent classifies a normalized text leaf.
func textEvent(text string, s ubb.Settings) event {
	if s.KeepNewLine && strings.HasSuffix(text, "\n") {
		return eventTextNewline
	}
	return eventText
}
