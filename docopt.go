package docopt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Option configures a Parse or Run call: each Option mutates a private
// config built up before the call proceeds.
type Option func(*config)

type config struct {
	help         bool
	version      string
	optionsFirst bool

	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

func defaultConfig() config {
	return config{
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
}

// Help enables early-exit handling of -h/--help: if either appears in
// argv, Parse returns ErrExitHelp instead of a result map.
func Help() Option { return func(c *config) { c.help = true } }

// Version enables early-exit handling of --version, and supplies the
// string Run prints for it. An empty string leaves version handling
// disabled, per version_configured in §6.
func Version(v string) Option { return func(c *config) { c.version = v } }

// OptionsFirst requires every option to precede the first positional
// argument; once a positional is seen, every later token — even one
// starting with '-' — is treated as positional.
func OptionsFirst() Option { return func(c *config) { c.optionsFirst = true } }

// Stdout overrides Run's destination for --help and --version output.
func Stdout(w io.Writer) Option { return func(c *config) { c.stdout = w } }

// Stderr overrides Run's destination for error output.
func Stderr(w io.Writer) Option { return func(c *config) { c.stderr = w } }

// Exit overrides Run's process-termination hook, primarily for testing.
func Exit(fn func(int)) Option { return func(c *config) { c.exit = fn } }

// Parse builds a pattern tree and option catalogue from doc, matches argv
// against it, and returns the resulting name→Value map. It never touches
// process state; ErrExitHelp and ErrExitVersion are returned like any
// other error for the caller to handle. See Run for a wrapper that
// terminates the process the way docopt.cpp's docopt() does.
func Parse(doc string, argv []string, opts ...Option) (map[string]Value, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return parse(doc, argv, cfg)
}

// Run wraps Parse and reproduces the reference implementation's exit
// contract (§6): ExitHelp writes doc to Stdout and exits 0; ExitVersion
// writes the configured version string and exits 0; LanguageError writes
// to Stderr and exits nonzero; ArgumentError writes its message and doc to
// Stderr/Stdout and exits nonzero. On success it returns the result map,
// same as Parse.
func Run(doc string, argv []string, opts ...Option) map[string]Value {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	result, err := parse(doc, argv, cfg)
	if err == nil {
		return result
	}

	switch {
	case errors.Is(err, ErrExitHelp):
		fmt.Fprintln(cfg.stdout, doc)
		cfg.exit(0)
	case errors.Is(err, ErrExitVersion):
		fmt.Fprintln(cfg.stdout, cfg.version)
		cfg.exit(0)
	default:
		var le *LanguageError
		var ae *ArgumentError
		switch {
		case errors.As(err, &le):
			fmt.Fprintln(cfg.stderr, le.Error())
		case errors.As(err, &ae):
			fmt.Fprintln(cfg.stderr, ae.Error())
			fmt.Fprintln(cfg.stdout, doc)
		default:
			fmt.Fprintln(cfg.stderr, err.Error())
		}
		cfg.exit(2)
	}
	return nil
}

// parse is the top-level driver of §4.7: compile (pattern, catalogue),
// canonicalize, parse argv into leaves, check for early exits, match, and
// assemble the result map.
func parse(doc string, argv []string, cfg config) (map[string]Value, error) {
	tree, catalogue, err := createPatternTree(doc)
	if err != nil {
		return nil, err
	}

	argvLeaves, err := parseArgv(newArgvTokens(argv), &catalogue, cfg.optionsFirst)
	if err != nil {
		return nil, newArgumentError("%s", err.Error())
	}

	if cfg.help && isOptionSet(argvLeaves, "-h", "--help") {
		return nil, ErrExitHelp
	}
	if cfg.version != "" && isOptionSet(argvLeaves, "--version") {
		return nil, ErrExitVersion
	}

	matched, left, collected := tree.match(argvLeaves, nil)
	if !matched {
		return nil, newArgumentError("arguments did not match expected patterns")
	}
	if len(left) != 0 {
		tokens := make([]string, len(left))
		for i, l := range left {
			tokens[i] = l.value.RawString()
		}
		return nil, newArgumentError("unexpected argument(s): %s", strings.Join(tokens, ", "))
	}

	result := make(map[string]Value)
	var declared []*leaf
	tree.collectLeaves(&declared)
	for _, l := range declared {
		result[l.name()] = l.value
	}
	for _, l := range collected {
		result[l.name()] = l.value
	}
	return result, nil
}

// createPatternTree implements §4.7 step 1: compile the help string into a
// canonicalized pattern tree plus the option catalogue that will keep
// being consulted (and extended) while argv is parsed.
func createPatternTree(doc string) (*branch, []optionDesc, error) {
	usageSections := extractSections("usage:", doc)
	if len(usageSections) == 0 {
		return nil, nil, newLanguageError("'usage:' (case-insensitive) not found")
	}
	if len(usageSections) > 1 {
		return nil, nil, newLanguageError("more than one 'usage:' (case-insensitive) section found")
	}

	catalogue, err := parseOptionCatalogue(doc)
	if err != nil {
		return nil, nil, newLanguageError("%s", err.Error())
	}

	tree, err := buildPatternTree(formalUsage(usageSections[0]), &catalogue)
	if err != nil {
		// Option errors met while parsing the usage pattern are author
		// errors, not user errors.
		var ae *ArgumentError
		if errors.As(err, &ae) {
			return nil, nil, newLanguageError("%s", ae.Error())
		}
		return nil, nil, err
	}

	expandOptionsShortcuts(tree, catalogue)
	canonicalize(tree)

	return tree, catalogue, nil
}

// isOptionSet reports whether any of the given canonical option names
// appears among leaves with a non-empty value, per §4.7 step 3's
// help/version detection.
func isOptionSet(leaves []*leaf, names ...string) bool {
	for _, l := range leaves {
		if !l.hasValue() {
			continue
		}
		for _, n := range names {
			if l.name() == n {
				return true
			}
		}
	}
	return false
}
