package docopt

import "strings"

// canonicalize implements §4.5: a post-order structural-sharing pass so
// every occurrence of the same option across alternatives shares one leaf
// instance, followed by the repeating-argument fix that promotes counted
// flags and list-valued arguments wherever a leaf recurs within any
// flattened alternative.
func canonicalize(tree *branch) {
	shareIdentities(tree, map[uint64]pattern{})
	fixRepeatingArguments(tree)
}

// shareIdentities walks b's children post-order, replacing any child whose
// structural hash has already been seen with the previously-seen instance.
func shareIdentities(b *branch, seen map[uint64]pattern) {
	for i, child := range b.children {
		if cb, ok := child.(*branch); ok {
			shareIdentities(cb, seen)
		}
		h := child.hash()
		if existing, ok := seen[h]; ok {
			b.children[i] = existing
		} else {
			seen[h] = b.children[i]
		}
	}
}

// transformToSequences enumerates the flat, Either-free, OneOrMore-free
// child sequences that could arise from children, per §4.5's transform
// algorithm.
func transformToSequences(children []pattern) [][]pattern {
	groups := [][]pattern{append([]pattern{}, children...)}
	var result [][]pattern

	for len(groups) > 0 {
		cur := groups[0]
		groups = groups[1:]

		idx := -1
		for i, p := range cur {
			if _, ok := p.(*branch); ok {
				idx = i
				break
			}
		}
		if idx == -1 {
			result = append(result, cur)
			continue
		}

		child := cur[idx].(*branch)
		rest := make([]pattern, 0, len(cur)-1)
		rest = append(rest, cur[:idx]...)
		rest = append(rest, cur[idx+1:]...)

		switch child.kind {
		case branchEither:
			for _, alt := range child.children {
				grp := make([]pattern, 0, 1+len(rest))
				grp = append(grp, alt)
				grp = append(grp, rest...)
				groups = append(groups, grp)
			}
		case branchOneOrMore:
			grp := make([]pattern, 0, 2*len(child.children)+len(rest))
			grp = append(grp, child.children...)
			grp = append(grp, child.children...)
			grp = append(grp, rest...)
			groups = append(groups, grp)
		default: // Required, Optional, OptionsShortcut
			grp := make([]pattern, 0, len(child.children)+len(rest))
			grp = append(grp, child.children...)
			grp = append(grp, rest...)
			groups = append(groups, grp)
		}
	}

	return result
}

// fixRepeatingArguments promotes any leaf that recurs (by structural hash)
// within a flattened alternative into counter or list accumulation mode,
// per §4.5.
func fixRepeatingArguments(tree *branch) {
	for _, seq := range transformToSequences(tree.children) {
		groups := map[uint64][]pattern{}
		for _, p := range seq {
			h := p.hash()
			groups[h] = append(groups[h], p)
		}
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}
			l, ok := group[0].(*leaf)
			if !ok {
				continue
			}
			switch l.kind {
			case leafCommand:
				l.value = IntValue(0)
			case leafArgument:
				promoteToList(l)
			case leafOption:
				if l.argCount > 0 {
					promoteToList(l)
				} else {
					l.value = IntValue(0)
				}
			}
		}
	}
}

func promoteToList(l *leaf) {
	var items []string
	if l.value.Kind() == KindString {
		items = strings.Fields(l.value.RawString())
	}
	if l.value.Kind() != KindList {
		l.value = ListValue(items...)
	}
}
