// Package docopt derives a command-line argument grammar from a
// human-readable help string and matches an argument vector against it.
//
// Given a "Usage:" block and an "Options:" block, docopt builds a pattern
// tree describing every command, option, and positional argument the
// program accepts, then matches a caller-supplied argv against that tree,
// backtracking through alternatives until one succeeds. The result is a
// map from each declared name to the Value the user supplied, its
// declared default, or a falsy placeholder.
//
// For example:
//  const usage = `Naval Fate.
//
//  Usage:
//    naval_fate ship new <name>...
//    naval_fate ship <name> move <x> <y> [--speed=<kn>]
//    naval_fate mine (set|remove) <x> <y> [--moored | --drifting]
//    naval_fate -h | --help
//    naval_fate --version
//
//  Options:
//    -h --help     Show this screen.
//    --version     Show version.
//    --speed=<kn>  Speed in knots [default: 10].
//    --moored      Moored (anchored) mine.
//    --drifting    Drifting mine.
//  `
//  args, err := docopt.Parse(usage, os.Args[1:], docopt.Help(), docopt.Version("2.0"))
//
// Supported help-text conventions:
//  Usage:   one or more program invocation lines, ended by a blank line
//           or the Options: section.
//  Options: one option per paragraph start, "-x, --xxx=<arg>  help text
//           [default: value]".
//
// docopt.cpp (github.com/docopt/docopt.cpp) is the reference this package's
// semantics are drawn from; this is an independent implementation.
package docopt
