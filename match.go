package docopt

// match on a leaf finds a single consuming token in left (via singleMatch)
// and, on success, folds it into collected using the accumulation rule
// implied by this pattern's declared value: a counter for Int-valued
// leaves (repeated flags/commands), a list for List-valued leaves
// (repeated arguments/options-with-arguments), or a plain append
// otherwise.
func (l *leaf) match(left, collected []*leaf) (bool, []*leaf, []*leaf) {
	idx, matched := l.singleMatch(left)
	if matched == nil {
		return false, left, collected
	}

	newLeft := make([]*leaf, 0, len(left)-1)
	newLeft = append(newLeft, left[:idx]...)
	newLeft = append(newLeft, left[idx+1:]...)

	return true, newLeft, accumulate(l, matched, collected)
}

// accumulate implements §4.6's merge-into-collected rule.
func accumulate(declared, matched *leaf, collected []*leaf) []*leaf {
	sameNameIndex := -1
	for i, c := range collected {
		if c.name() == declared.name() {
			sameNameIndex = i
			break
		}
	}

	switch declared.value.Kind() {
	case KindInt:
		if sameNameIndex == -1 {
			out := append(cloneLeaves(collected), cloneWithValue(matched, IntValue(1)))
			return out
		}
		existing := collected[sameNameIndex]
		var next Value
		if existing.value.Kind() == KindInt {
			next = IntValue(existing.value.Int() + 1)
		} else {
			next = IntValue(1)
		}
		out := cloneLeaves(collected)
		out[sameNameIndex] = cloneWithValue(existing, next)
		return out

	case KindList:
		var newItems []string
		switch matched.value.Kind() {
		case KindString:
			newItems = []string{matched.value.RawString()}
		case KindList:
			newItems = matched.value.List()
		}
		if sameNameIndex == -1 {
			out := append(cloneLeaves(collected), cloneWithValue(matched, ListValue(newItems...)))
			return out
		}
		existing := collected[sameNameIndex]
		var merged []string
		if existing.value.Kind() == KindList {
			merged = append(merged, existing.value.List()...)
		}
		merged = append(merged, newItems...)
		out := cloneLeaves(collected)
		out[sameNameIndex] = cloneWithValue(existing, ListValue(merged...))
		return out

	default:
		return append(cloneLeaves(collected), matched)
	}
}

func cloneLeaves(in []*leaf) []*leaf {
	out := make([]*leaf, len(in))
	copy(out, in)
	return out
}

func cloneWithValue(l *leaf, v Value) *leaf {
	cp := *l
	cp.value = v
	return &cp
}

// match on a branch dispatches to the semantics of its kind. Every case
// works on local (left, collected) copies and commits to the return values
// only on success, so a failed attempt never mutates the caller's state
// (the slices passed in are never written through; new slices are
// allocated for every mutation).
func (b *branch) match(left, collected []*leaf) (bool, []*leaf, []*leaf) {
	switch b.kind {
	case branchRequired:
		l, c := left, collected
		for _, child := range b.children {
			ok, nl, nc := child.match(l, c)
			if !ok {
				return false, left, collected
			}
			l, c = nl, nc
		}
		return true, l, c

	case branchOptional, branchOptionsShortcut:
		l, c := left, collected
		for _, child := range b.children {
			if ok, nl, nc := child.match(l, c); ok {
				l, c = nl, nc
			}
		}
		return true, l, c

	case branchOneOrMore:
		if len(b.children) != 1 {
			panic("docopt: OneOrMore must have exactly one child")
		}
		child := b.children[0]
		l, c := left, collected
		times := 0
		for {
			ok, nl, nc := child.match(l, c)
			if !ok {
				break
			}
			times++
			progressed := len(nl) != len(l)
			l, c = nl, nc
			if !progressed {
				break
			}
		}
		if times == 0 {
			return false, left, collected
		}
		return true, l, c

	case branchEither:
		type outcome struct {
			left, collected []*leaf
		}
		var best *outcome
		for _, child := range b.children {
			ok, nl, nc := child.match(left, collected)
			if !ok {
				continue
			}
			if best == nil || len(nl) < len(best.left) {
				best = &outcome{nl, nc}
			}
		}
		if best == nil {
			return false, left, collected
		}
		return true, best.left, best.collected

	default:
		panic("docopt: unknown branch kind")
	}
}
