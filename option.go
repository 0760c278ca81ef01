package docopt

import (
	"regexp"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// optionDesc is one entry harvested from an "Options:" section: the
// authority consulted while parsing both the pattern (for "[options]"
// expansion) and argv (for synonym/arity/default lookup).
type optionDesc struct {
	short    string // e.g. "-o", "" if none
	long     string // e.g. "--output", "" if none
	argCount int    // 0 or 1
	value    Value  // declared default, or the falsy placeholder
}

// name is the canonical name: the long synonym if present, else the short.
func (o optionDesc) name() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

func (o optionDesc) equivalent(other optionDesc) bool {
	return o.short == other.short && o.long == other.long && o.argCount == other.argCount
}

func (o optionDesc) leaf() *leaf {
	return newOption(o.short, o.long, o.argCount, o.value)
}

var reOptionSeparators = regexp.MustCompile(`[,=\s]+`)
var reOptionDefault = regexp.MustCompile(`(?i)\[default:\s*(.*?)\]`)

// parseOptionDescriptor implements §4.2: extract an option's synonyms,
// argument count, and default from one trimmed description line.
func parseOptionDescriptor(line string) (optionDesc, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-") {
		return optionDesc{}, errors.Errorf("option descriptor %q does not begin with '-'", line)
	}

	optionsPart := line
	description := ""
	if i := strings.Index(line, "  "); i != -1 {
		optionsPart = line[:i]
		description = line[i:]
	}

	// The docopt convention tolerates any mixture of commas, spaces, and
	// '=' between synonyms and the argument placeholder ("-o FILE",
	// "-o, FILE", "-o=FILE", "-o, --output=FILE" all parse the same way);
	// squeeze runs of spaces down to one before splitting so that
	// "-o,  FILE" and "-o, FILE" are indistinguishable, per the corpus
	// convention this format is modeled on.
	normalized := xstrings.Squeeze(optionsPart, " ")
	var desc optionDesc
	for _, tok := range reOptionSeparators.Split(normalized, -1) {
		if tok == "" {
			continue
		}
		switch {
		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			desc.long = tok
		case strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--") && len(tok) == 2:
			desc.short = tok
		default:
			desc.argCount = 1
		}
	}

	if desc.short == "" && desc.long == "" {
		return optionDesc{}, errors.Errorf("option descriptor %q declares no synonym", line)
	}

	if desc.argCount == 1 {
		if m := reOptionDefault.FindStringSubmatch(description); m != nil {
			desc.value = StringValue(m[1])
		} else {
			desc.value = EmptyValue()
		}
	} else {
		desc.value = BoolValue(false)
	}

	return desc, nil
}

// splitOptionBlocks anchors on a newline (or the start of the string),
// leading indentation, then one or two hyphens: the boundary between two
// option descriptor blocks. It behaves like splitting on the regex
// `(?:^|\n)[ \t]*(?=-{1,2})`, except that Go's RE2 engine does not support
// lookahead, so the split points are located by hand instead.
func splitOptionBlocks(body string) []string {
	// lineStart looks for optional indentation followed by 1-2 hyphens
	// starting at i; it reports the position just before the hyphens (the
	// non-consumed lookahead boundary), or ok=false if the line does not
	// begin with a hyphen after its indentation.
	lineStart := func(i int) (int, bool) {
		j := i
		for j < len(body) && (body[j] == ' ' || body[j] == '\t') {
			j++
		}
		hyphens := 0
		for hyphens < 2 && j+hyphens < len(body) && body[j+hyphens] == '-' {
			hyphens++
		}
		return j, hyphens >= 1
	}

	var matchStarts, matchEnds []int
	if j, ok := lineStart(0); ok {
		matchStarts = append(matchStarts, 0)
		matchEnds = append(matchEnds, j)
	}
	for i := 0; i < len(body); i++ {
		if body[i] == '\n' {
			if j, ok := lineStart(i + 1); ok {
				matchStarts = append(matchStarts, i)
				matchEnds = append(matchEnds, j)
			}
		}
	}

	if len(matchStarts) == 0 {
		return []string{body}
	}

	var parts []string
	prev := 0
	for k, start := range matchStarts {
		parts = append(parts, body[prev:start])
		prev = matchEnds[k]
	}
	parts = append(parts, body[prev:])
	return parts
}

// parseOptionCatalogue extracts every "Options:" section of doc and splits
// each into one descriptor block per option, in source order.
func parseOptionCatalogue(doc string) ([]optionDesc, error) {
	var catalogue []optionDesc
	for _, section := range extractSections("options:", doc) {
		body := section
		if i := strings.Index(body, ":"); i != -1 {
			body = body[i+1:]
		}
		for _, block := range splitOptionBlocks(body) {
			block = strings.TrimRight(block, " \t")
			if !strings.HasPrefix(strings.TrimSpace(block), "-") {
				continue
			}
			desc, err := parseOptionDescriptor(block)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing option descriptor block %q", block)
			}
			catalogue = append(catalogue, desc)
		}
	}
	return catalogue, nil
}
