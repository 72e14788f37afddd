package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/v8rand"
	"github.com/zeebo/v8rand/fingerprint"
	"github.com/zeebo/v8rand/internal/logger"
	"github.com/zeebo/v8rand/seed"
)

func main() {
	conf, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	logger.SetConsoleWriter(os.Stderr, conf.Level)
	if err != nil {
		logger.Log().Fatal().Err(err).Msg("invalid arguments")
	}

	if err := run(conf, os.Stdout); err != nil {
		logger.Log().Fatal().Err(err).Msg("generation failed")
	}
}

// resolveSeed picks the seed from the key, the seed flag, or host entropy.
func resolveSeed(conf config) (int64, string) {
	switch {
	case conf.Key != "":
		return seed.String(conf.Key), "key"
	case conf.Seed >= 0:
		return conf.Seed, "flag"
	default:
		return seed.Random(), "entropy"
	}
}

// run writes the stream described by conf to w, one value per line.
func run(conf config, w io.Writer) error {
	s, source := resolveSeed(conf)
	logger.Log().Info().
		Int64("seed", s).
		Str("source", source).
		Str("kind", conf.Kind).
		Int("count", conf.Count).
		Msg("generating")

	r, err := v8rand.New(s)
	if err != nil {
		return err
	}

	if conf.Fingerprint {
		_, err := fmt.Fprintln(w, fingerprint.Hex(fingerprint.Sum(r, conf.Count)))
		return err
	}

	mk, ok := kinds[conf.Kind]
	if !ok {
		return fmt.Errorf("unknown kind %q", conf.Kind)
	}
	fn, err := mk(conf)
	if err != nil {
		return err
	}

	if conf.Kind == "bytes" {
		buf := make([]byte, conf.Count)
		r.Fill(buf)
		_, err := fmt.Fprintln(w, hex.EncodeToString(buf))
		return err
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < conf.Count; i++ {
		line, err := fn(r)
		if err != nil {
			return err
		}
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
