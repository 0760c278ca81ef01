package docopt

import (
	"hash/fnv"
	"strconv"

	"github.com/bradfitz/iter"
)

// pattern is implemented by every node of a parsed usage tree: the leaves
// (Argument, Command, Option) and the branches (Required, Optional,
// OptionsShortcut, OneOrMore, Either). All matching happens against a
// residual slice of argv-derived leaves, so match, unlike the rest of the
// capability set, never needs to know whether it is a leaf or a branch on
// the other side of the call.
type pattern interface {
	// match attempts to consume entries of left (not necessarily a prefix)
	// that satisfy this pattern, folding whatever it consumes into collected. On success it
	// returns the residual left and the updated collected. On failure the
	// two returned slices are exactly the ones passed in, untouched.
	match(left, collected []*leaf) (ok bool, newLeft, newCollected []*leaf)

	// flatten returns every node in this subtree for which keep returns
	// true, not descending past any node keep accepts.
	flatten(keep func(pattern) bool) []pattern

	// collectLeaves appends every leaf reachable from this node, in the
	// tree's left-to-right order.
	collectLeaves(out *[]*leaf)

	// name is the canonical key used in the result map. Branches never
	// have one; calling it on a branch is a programming error.
	name() string

	// hasValue reports whether the node carries a non-empty Value. Always
	// false for branches.
	hasValue() bool

	// hash is a structural hash used to identify equivalent nodes during
	// canonicalization: equal hash plus equal fields means equal node.
	hash() uint64
}

type leafKind int

const (
	leafArgument leafKind = iota
	leafCommand
	leafOption
)

// leaf is Argument, Command, or Option, depending on kind. It plays two
// roles: a node in the compiled pattern tree (declaring what may be
// supplied), and a token produced by parsing argv (carrying what was
// actually supplied). Only Argument and Option ever appear in the second
// role; argv parsing never manufactures a Command.
type leaf struct {
	kind  leafKind
	nm    string // Argument / Command canonical name
	value Value

	short    string // Option only, e.g. "-x"; "" if none
	long     string // Option only, e.g. "--xxx"; "" if none
	argCount int    // Option only: 0 or 1
}

func newArgument(name string, value Value) *leaf {
	return &leaf{kind: leafArgument, nm: name, value: value}
}

func newCommand(name string) *leaf {
	return &leaf{kind: leafCommand, nm: name, value: BoolValue(false)}
}

func newOption(short, long string, argCount int, value Value) *leaf {
	// Mirrors the reference's Option constructor: a valueless flag
	// defaults to Bool(false), but a valueless option-with-argument
	// defaults to Empty rather than a nonsensical Bool(false).
	if argCount != 0 && value.Kind() == KindBool && !value.Bool() {
		value = EmptyValue()
	}
	return &leaf{kind: leafOption, short: short, long: long, argCount: argCount, value: value}
}

// name is the long synonym if present, else the short one; for Argument
// and Command it is the literal declared name.
func (l *leaf) name() string {
	if l.kind == leafOption {
		if l.long != "" {
			return l.long
		}
		return l.short
	}
	return l.nm
}

func (l *leaf) hasValue() bool { return !l.value.IsEmpty() }

func (l *leaf) flatten(keep func(pattern) bool) []pattern {
	if keep(l) {
		return []pattern{l}
	}
	return nil
}

func (l *leaf) collectLeaves(out *[]*leaf) { *out = append(*out, l) }

func (l *leaf) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(l.kind)})
	h.Write([]byte{0})
	h.Write([]byte(l.nm))
	h.Write([]byte{0})
	h.Write([]byte(l.short))
	h.Write([]byte{0})
	h.Write([]byte(l.long))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(l.argCount)))
	return h.Sum64()
}

// equivalent reports structural identity as used by option-set-difference
// and by the [options] shortcut de-duplication: same short/long/argcount.
func (l *leaf) equivalent(o *leaf) bool {
	return l.kind == o.kind && l.short == o.short && l.long == o.long && l.argCount == o.argCount
}

// singleMatch is the leaf-kind-specific half of matching: find the index
// in left of the entry (if any) that satisfies this pattern node, and
// build the leaf that should be recorded as matched.
func (l *leaf) singleMatch(left []*leaf) (int, *leaf) {
	switch l.kind {
	case leafArgument:
		for i, cand := range left {
			if cand.kind == leafArgument {
				return i, newArgument(l.nm, cand.value)
			}
		}
	case leafCommand:
		// Only the first positional-shaped candidate is ever considered;
		// options ahead of it are skipped, but a non-matching positional
		// still stops the search.
		for _, cand := range left {
			if cand.kind != leafArgument {
				continue
			}
			i := indexOf(left, cand)
			if cand.value.Kind() == KindString && cand.value.RawString() == l.nm {
				matched := newCommand(l.nm)
				matched.value = BoolValue(true)
				return i, matched
			}
			return -1, nil
		}
	case leafOption:
		for i, cand := range left {
			if cand.kind == leafOption && cand.name() == l.name() {
				return i, cand
			}
		}
	}
	return -1, nil
}

func indexOf(haystack []*leaf, needle *leaf) int {
	for i, l := range haystack {
		if l == needle {
			return i
		}
	}
	return -1
}

type branchKind int

const (
	branchRequired branchKind = iota
	branchOptional
	branchOptionsShortcut
	branchOneOrMore
	branchEither
)

// branch is Required, Optional, OptionsShortcut, OneOrMore, or Either,
// depending on kind.
type branch struct {
	kind     branchKind
	children []pattern
}

func newRequired(children ...pattern) *branch { return &branch{kind: branchRequired, children: children} }
func newOptional(children ...pattern) *branch { return &branch{kind: branchOptional, children: children} }
func newOptionsShortcut() *branch             { return &branch{kind: branchOptionsShortcut} }
func newOneOrMore(child pattern) *branch      { return &branch{kind: branchOneOrMore, children: []pattern{child}} }
func newEither(children ...pattern) *branch   { return &branch{kind: branchEither, children: children} }

func (b *branch) name() string    { panic("docopt: name() called on a branch pattern") }
func (b *branch) hasValue() bool  { return false }

func (b *branch) flatten(keep func(pattern) bool) []pattern {
	if keep(b) {
		return []pattern{b}
	}
	var ret []pattern
	for _, c := range b.children {
		ret = append(ret, c.flatten(keep)...)
	}
	return ret
}

func (b *branch) collectLeaves(out *[]*leaf) {
	for _, c := range b.children {
		c.collectLeaves(out)
	}
}

func (b *branch) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(b.kind)})
	for _, c := range b.children {
		var buf [8]byte
		v := c.hash()
		for i := range iter.N(8) {
			buf[i] = byte(v >> (8 * uint(i)))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}
