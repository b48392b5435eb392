// builder.go places scanned tags and line breaks into the tree, auto-closing and
// reopening elements so that every parent/child pair obeys the grammar.
package ubb

// builder holds the insertion cursor while a tree is being scanned.
type builder struct {
	tree   *Tree
	cursor NodeID
}

func newBuilder(t *Tree) *builder {
	return &builder{tree: t, cursor: t.Root()}
}

// climb walks up from the cursor until it reaches the root or a node for which
// stop returns true. Every element passed over is cloned into a reopen chain:
// the first skipped node becomes the innermost clone and each further ancestor
// wraps the chain built so far. It returns the node it stopped at and the
// outermost clone of the chain, or NoNode when nothing was skipped.
func (b *builder) climb(stop func(NodeID) bool) (at, chain NodeID) {
	t := b.tree
	at, chain = b.cursor, NoNode
	for !t.IsRoot(at) && !stop(at) {
		c := t.Clone(at)
		if chain != NoNode {
			t.Append(c, chain)
		}
		chain = c
		at = t.Parent(at)
	}
	return at, chain
}

// text appends a text node under the cursor.
func (b *builder) text(value string) {
	if value == "" {
		return
	}
	b.tree.Append(b.cursor, b.tree.NewText(value))
}

// verbatim appends unrecognized bracket text under the cursor.
func (b *builder) verbatim(value string, name string) {
	if name != "" {
		b.tree.warn("unknown tag: [%s]", name)
	}
	b.tree.Append(b.cursor, b.tree.newVerbatim(value))
}

// open places a freshly created element. Open elements that may not contain it
// are closed; if tag may contain them they are reopened inside it so that
// following text keeps their formatting. Otherwise they are dropped.
func (b *builder) open(tag NodeID) {
	t := b.tree
	kind := t.Kind(tag)
	at, chain := b.climb(func(n NodeID) bool {
		return t.Kind(n).CanContain(kind)
	})

	t.Append(at, tag)
	switch {
	case chain == NoNode:
		b.cursor = tag
	case kind.CanContain(t.Kind(chain)):
		t.warn("[%s] is not allowed inside [%s]: closed and reopened inside it", kind, t.Kind(chain))
		t.Append(tag, chain)
		b.cursor = t.DeepestChild(chain)
	default:
		t.warn("[%s] is not allowed inside [%s]: closed without reopening", kind, t.Kind(chain))
		t.Abandoned++
		b.cursor = tag
	}
}

// close ends the nearest open element of kind. Elements that were opened
// inside it and are still open get reopened right after it. A close without a
// matching open element is ignored.
func (b *builder) close(kind Kind) {
	t := b.tree
	at, chain := b.climb(func(n NodeID) bool {
		return t.Kind(n) == kind
	})
	if t.IsRoot(at) {
		t.warn("stray close tag: [/%s]", kind)
		return
	}

	parent := t.Parent(at)
	if chain == NoNode {
		b.cursor = parent
		return
	}
	t.warn("[/%s] closed [%s] early: reopened after it", kind, t.Kind(chain))
	t.Append(parent, chain)
	b.cursor = t.DeepestChild(chain)
}

// lineBreak hoists a newline to the nearest element that allows one and
// reopens whatever had to be closed to get there.
func (b *builder) lineBreak() {
	t := b.tree
	at, chain := b.climb(func(n NodeID) bool {
		return RuleFor(t.Kind(n)).AllowsLineBreak
	})

	t.Append(at, t.NewText("\n"))
	if chain == NoNode {
		b.cursor = at
		return
	}
	t.Append(at, chain)
	b.cursor = t.DeepestChild(chain)
}
