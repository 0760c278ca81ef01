// Command navalfate is the canonical example used throughout the docopt
// family of libraries: a small fleet-management CLI whose entire grammar
// is the usage string below.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/loopvar/docopt"
)

const usage = `Naval Fate.

Usage:
  navalfate ship new <name>...
  navalfate ship <name> move <x> <y> [--speed=<kn>]
  navalfate ship shoot <x> <y>
  navalfate mine (set|remove) <x> <y> [--moored | --drifting]
  navalfate -h | --help
  navalfate --version

Options:
  -h --help     Show this screen.
  --version     Show version.
  --speed=<kn>  Speed in knots [default: 10].
  --moored      Moored (anchored) mine.
  --drifting    Drifting mine.
`

func main() {
	args := docopt.Run(usage, os.Args[1:], docopt.Help(), docopt.Version("Naval Fate 2.0"))

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %s\n", name, args[name])
	}
}
