package docopt

import (
	"strings"

	"github.com/pkg/errors"
)

// parseLongOption implements §4.4's long-form option parsing, shared
// between pattern-mode (parsing the Usage: expression) and argv-mode
// (parsing the user's argument vector). In argv mode, unmatched options
// are allowed to resolve by unique prefix, and the produced leaf carries
// the value the user actually supplied.
func parseLongOption(toks *tokens, catalogue *[]optionDesc) ([]pattern, error) {
	tok := toks.pop()
	name := tok
	explicitValue := ""
	hasValue := false
	if i := strings.IndexByte(tok, '='); i != -1 {
		name = tok[:i]
		explicitValue = tok[i+1:]
		hasValue = true
	}

	var similar []optionDesc
	for _, d := range *catalogue {
		if d.long == name {
			similar = append(similar, d)
		}
	}

	if len(similar) == 0 && toks.isArgv {
		for _, d := range *catalogue {
			if d.long != "" && strings.HasPrefix(d.long, name) {
				similar = append(similar, d)
			}
		}
	}

	if len(similar) > 1 {
		names := make([]string, len(similar))
		for i, d := range similar {
			names[i] = d.long
		}
		return nil, newArgumentError("%q is not a unique prefix: %s", name, strings.Join(names, ", "))
	}

	if len(similar) == 0 {
		argCount := 0
		if hasValue {
			argCount = 1
		}
		desc := optionDesc{long: name, argCount: argCount, value: defaultOptionValue(argCount)}
		*catalogue = append(*catalogue, desc)

		l := desc.leaf()
		if toks.isArgv {
			if argCount == 1 {
				l.value = StringValue(explicitValue)
			} else {
				l.value = BoolValue(true)
			}
		}
		return []pattern{l}, nil
	}

	desc := similar[0]
	l := desc.leaf()
	if desc.argCount == 0 {
		if hasValue {
			return nil, newArgumentError("%s must not have an argument", desc.long)
		}
	} else if !hasValue {
		cur, ok := toks.current()
		if !ok || cur == "--" {
			return nil, newArgumentError("%s requires an argument", desc.long)
		}
		explicitValue = toks.pop()
		hasValue = true
	}
	if toks.isArgv {
		if hasValue {
			l.value = StringValue(explicitValue)
		} else {
			l.value = BoolValue(true)
		}
	}
	return []pattern{l}, nil
}

// parseShortOption implements §4.4's short-form option parsing: every
// character after the leading '-' is a candidate short option, requiring
// an exact catalogue match (no prefix rule for short options).
func parseShortOption(toks *tokens, catalogue *[]optionDesc) ([]pattern, error) {
	tok := toks.pop()
	rest := tok[1:]

	var ret []pattern
	for len(rest) > 0 {
		short := "-" + rest[:1]
		rest = rest[1:]

		var similar []optionDesc
		for _, d := range *catalogue {
			if d.short == short {
				similar = append(similar, d)
			}
		}
		if len(similar) > 1 {
			return nil, newArgumentError("%s is specified ambiguously %d times", short, len(similar))
		}

		if len(similar) == 0 {
			desc := optionDesc{short: short, argCount: 0, value: BoolValue(false)}
			*catalogue = append(*catalogue, desc)
			l := desc.leaf()
			if toks.isArgv {
				l.value = BoolValue(true)
			}
			ret = append(ret, l)
			continue
		}

		desc := similar[0]
		l := desc.leaf()
		var explicitValue string
		hasValue := false
		if desc.argCount == 1 {
			if len(rest) > 0 {
				explicitValue = rest
				rest = ""
				hasValue = true
			} else {
				cur, ok := toks.current()
				if !ok || cur == "--" {
					return nil, newArgumentError("%s requires an argument", short)
				}
				explicitValue = toks.pop()
				hasValue = true
			}
		}
		if toks.isArgv {
			if hasValue {
				l.value = StringValue(explicitValue)
			} else {
				l.value = BoolValue(true)
			}
		}
		ret = append(ret, l)
	}
	return ret, nil
}

func defaultOptionValue(argCount int) Value {
	if argCount == 0 {
		return BoolValue(false)
	}
	return EmptyValue()
}

// parseArgv implements §4.4's options_first mode on top of §4.4's option
// parsing: a standalone "--" always ends option parsing, and once
// options_first is set, the first non-option token also ends it, with
// every remaining token (regardless of leading '-') becoming a positional
// Argument.
func parseArgv(toks *tokens, catalogue *[]optionDesc, optionsFirst bool) ([]*leaf, error) {
	var ret []*leaf
	for toks.hasMore() {
		tok, _ := toks.current()

		switch {
		case tok == "--":
			toks.pop()
			for toks.hasMore() {
				ret = append(ret, newArgument("", StringValue(toks.pop())))
			}

		case strings.HasPrefix(tok, "--"):
			parsed, err := parseLongOption(toks, catalogue)
			if err != nil {
				return nil, err
			}
			ret = append(ret, asLeaves(parsed)...)

		case len(tok) > 1 && tok[0] == '-' && tok != "-":
			parsed, err := parseShortOption(toks, catalogue)
			if err != nil {
				return nil, err
			}
			ret = append(ret, asLeaves(parsed)...)

		case optionsFirst:
			for toks.hasMore() {
				ret = append(ret, newArgument("", StringValue(toks.pop())))
			}

		default:
			ret = append(ret, newArgument("", StringValue(toks.pop())))
		}
	}
	return ret, nil
}

func asLeaves(patterns []pattern) []*leaf {
	out := make([]*leaf, len(patterns))
	for i, p := range patterns {
		l, ok := p.(*leaf)
		if !ok {
			panic(errors.Errorf("docopt: option parsing produced a non-leaf pattern %T", p))
		}
		out[i] = l
	}
	return out
}
