package docopt

import (
	"regexp"
	"strings"

	"github.com/anacrolix/missinggo"
)

// extractSections implements §4.3's section extraction: a section is a
// line containing name (case-insensitive), followed by zero or more
// subsequent lines whose first character is a space or tab. Every match in
// source order is returned, trimmed of surrounding whitespace.
func extractSections(name, source string) []string {
	pattern := `(?im)(?:^|\n)([^\n]*` + regexp.QuoteMeta(name) + `[^\n]*(?:\n[ \t].*)*)`
	re := regexp.MustCompile(pattern)
	var out []string
	for _, m := range re.FindAllStringSubmatch(source, -1) {
		out = append(out, strings.TrimSpace(missinggo.Unchomp(m[1])))
	}
	return out
}

// formalUsage implements §4.3's Usage: expansion: strip through the first
// ':' of the usage block, whitespace-split the remainder, and replace
// every re-occurrence of the leading program name with ") | (", producing
// a single parenthesised expression of alternatives.
func formalUsage(usageSection string) string {
	body := usageSection
	if i := strings.Index(body, ":"); i != -1 {
		body = body[i+1:]
	}
	parts := strings.Fields(body)
	if len(parts) == 0 {
		return "( )"
	}
	program := parts[0]

	var b strings.Builder
	b.WriteString("(")
	for _, tok := range parts[1:] {
		if tok == program {
			b.WriteString(" ) | (")
		} else {
			b.WriteString(" ")
			b.WriteString(tok)
		}
	}
	b.WriteString(" )")
	return b.String()
}

// isArgumentSpec reports whether a pattern token denotes a positional
// Argument rather than a Command: "<...>" groups, or tokens made entirely
// of upper-case characters.
func isArgumentSpec(tok string) bool {
	if tok == "" {
		return false
	}
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") {
		return true
	}
	for _, r := range tok {
		if !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

// buildPatternTree implements §4.3's recursive-descent grammar over
//
//	expr  ::= seq ( '|' seq )*
//	seq   ::= ( atom [ '...' ] )*
//	atom  ::= '[' expr ']' | '(' expr ')' | 'options'
//	        | long | short | argument | command
//
// against the pattern-mode token stream, threading the option catalogue
// (harvested from the Options: sections, and growing) through so
// unrecognised options are
// synthesised into it as they are met, exactly as parsing argv does.
func buildPatternTree(source string, catalogue *[]optionDesc) (*branch, error) {
	toks := newPatternTokens(source)
	seq, err := parseExpr(toks, catalogue)
	if err != nil {
		return nil, err
	}
	if toks.hasMore() {
		return nil, newLanguageError("unexpected ending: %q", toks.rest())
	}
	if len(seq) != 1 {
		panic("docopt: top-level parse must reduce to exactly one node")
	}
	return newRequired(seq[0]), nil
}

func parseExpr(toks *tokens, catalogue *[]optionDesc) ([]pattern, error) {
	seq, err := parseSeq(toks, catalogue)
	if err != nil {
		return nil, err
	}
	cur, ok := toks.current()
	if !ok || cur != "|" {
		return seq, nil
	}

	alts := []pattern{collapseToRequired(seq)}
	for {
		cur, ok := toks.current()
		if !ok || cur != "|" {
			break
		}
		toks.pop()
		seq, err = parseSeq(toks, catalogue)
		if err != nil {
			return nil, err
		}
		alts = append(alts, collapseToRequired(seq))
	}
	return []pattern{collapseToEither(alts)}, nil
}

func collapseToRequired(seq []pattern) pattern {
	if len(seq) == 1 {
		return seq[0]
	}
	return newRequired(seq...)
}

func collapseToEither(alts []pattern) pattern {
	if len(alts) == 1 {
		return alts[0]
	}
	return newEither(alts...)
}

func parseSeq(toks *tokens, catalogue *[]optionDesc) ([]pattern, error) {
	var seq []pattern
	for toks.hasMore() {
		cur, _ := toks.current()
		if cur == "]" || cur == ")" || cur == "|" {
			break
		}
		atoms, err := parseAtom(toks, catalogue)
		if err != nil {
			return nil, err
		}
		if cur, ok := toks.current(); ok && cur == "..." {
			toks.pop()
			seq = append(seq, newOneOrMore(collapseToRequired(atoms)))
		} else {
			seq = append(seq, atoms...)
		}
	}
	return seq, nil
}

func parseAtom(toks *tokens, catalogue *[]optionDesc) ([]pattern, error) {
	tok, ok := toks.current()
	if !ok {
		return nil, newLanguageError("unexpected end of usage pattern")
	}

	switch {
	case tok == "[":
		toks.pop()
		expr, err := parseExpr(toks, catalogue)
		if err != nil {
			return nil, err
		}
		trailing, ok := popIf(toks)
		if !ok || trailing != "]" {
			return nil, newLanguageError("mismatched '['")
		}
		return []pattern{newOptional(expr...)}, nil

	case tok == "(":
		toks.pop()
		expr, err := parseExpr(toks, catalogue)
		if err != nil {
			return nil, err
		}
		trailing, ok := popIf(toks)
		if !ok || trailing != ")" {
			return nil, newLanguageError("mismatched '('")
		}
		return []pattern{newRequired(expr...)}, nil

	case tok == "options":
		toks.pop()
		return []pattern{newOptionsShortcut()}, nil

	case strings.HasPrefix(tok, "--") && tok != "--":
		return parseLongOption(toks, catalogue)

	case strings.HasPrefix(tok, "-") && tok != "-" && tok != "--":
		return parseShortOption(toks, catalogue)

	case isArgumentSpec(tok):
		toks.pop()
		return []pattern{newArgument(tok, EmptyValue())}, nil

	default:
		toks.pop()
		return []pattern{newCommand(tok)}, nil
	}
}

func popIf(toks *tokens) (string, bool) {
	if !toks.hasMore() {
		return "", false
	}
	return toks.pop(), true
}

// expandOptionsShortcuts implements §4.3's "[options]" expansion: each
// OptionsShortcut node's children become the set difference between a
// fresh copy of the option catalogue and the options already referenced
// elsewhere in the pattern, compared by structural identity. Each shortcut
// gets independent leaf instances (§9's "option catalogue freshness").
func expandOptionsShortcuts(tree *branch, catalogue []optionDesc) {
	referenced := collectOptionDescs(tree)

	for _, shortcut := range flattenShortcuts(tree) {
		var children []pattern
		for _, cand := range catalogue {
			already := false
			for _, r := range referenced {
				if cand.equivalent(r) {
					already = true
					break
				}
			}
			if !already {
				children = append(children, cand.leaf())
			}
		}
		shortcut.children = children
	}
}

func collectOptionDescs(tree *branch) []optionDesc {
	var leaves []*leaf
	tree.collectLeaves(&leaves)
	var out []optionDesc
	for _, l := range leaves {
		if l.kind == leafOption {
			out = append(out, optionDesc{short: l.short, long: l.long, argCount: l.argCount, value: l.value})
		}
	}
	return out
}

func flattenShortcuts(tree *branch) []*branch {
	var out []*branch
	for _, p := range tree.flatten(func(p pattern) bool {
		b, ok := p.(*branch)
		return ok && b.kind == branchOptionsShortcut
	}) {
		out = append(out, p.(*branch))
	}
	return out
}
