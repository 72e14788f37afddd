package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const usage = `v8rand prints a deterministic random stream.

Usage: v8rand [-seed n | -key name] [-kind kind] [-n count] [options]

Seed options:
  -seed n          : non-negative seed  (default: from host entropy)
  -key name        : derive the seed from a name instead

Stream options:
  -kind kind       : value kind  (default: uint64) [{{KINDS}}]
  -n count         : number of values, or of bytes for kind bytes  (default: 10)
  -origin o        : inclusive lower end of a ranged draw
  -bound b         : exclusive upper end of a bounded or ranged draw
  -fingerprint     : print the fingerprint of count raw draws instead

Other options:
  -l level         : log level  (default: info) [debug,info,warn,error]
  -h               : display help, this screen
`

// config is the parsed command line.
type config struct {
	Seed        int64 // negative means unset, use seed.Random
	Key         string
	Kind        string
	Count       int
	Origin      string // empty means unset
	Bound       string // empty means unset
	Fingerprint bool
	Level       zerolog.Level
}

func kindNames() []string {
	names := lo.Keys(kinds)
	sort.Strings(names)
	return names
}

// parseConfig parses the arguments. It returns flag.ErrHelp when help was
// requested.
func parseConfig(args []string, out io.Writer) (config, error) {
	var conf config
	var level string

	fs := flag.NewFlagSet("v8rand", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, strings.ReplaceAll(usage, "{{KINDS}}", strings.Join(kindNames(), ",")))
	}

	fs.Int64Var(&conf.Seed, "seed", -1, "")
	fs.StringVar(&conf.Key, "key", "", "")
	fs.StringVar(&conf.Kind, "kind", "uint64", "")
	fs.IntVar(&conf.Count, "n", 10, "")
	fs.StringVar(&conf.Origin, "origin", "", "")
	fs.StringVar(&conf.Bound, "bound", "", "")
	fs.BoolVar(&conf.Fingerprint, "fingerprint", false, "")
	fs.StringVar(&level, "l", "info", "")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return config{}, fmt.Errorf("invalid log level %q", level)
	}
	conf.Level = lvl

	if _, ok := kinds[conf.Kind]; !ok {
		return config{}, fmt.Errorf("unknown kind %q, try one of %s",
			conf.Kind, strings.Join(kindNames(), ","))
	}
	if conf.Count < 0 {
		return config{}, fmt.Errorf("count must be non-negative: %d", conf.Count)
	}
	seedSet := false
	fs.Visit(func(f *flag.Flag) { seedSet = seedSet || f.Name == "seed" })
	if seedSet && conf.Seed < 0 {
		return config{}, fmt.Errorf("seed must be non-negative: %d", conf.Seed)
	}
	if conf.Key != "" && seedSet {
		return config{}, fmt.Errorf("-seed and -key are exclusive")
	}
	if conf.Origin != "" && conf.Bound == "" {
		return config{}, fmt.Errorf("-origin requires -bound")
	}

	return conf, nil
}
