package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zeebo/assert"
	"github.com/zeebo/v8rand"
	"github.com/zeebo/v8rand/fingerprint"
)

func mustParse(t *testing.T, args ...string) config {
	t.Helper()
	conf, err := parseConfig(args, io.Discard)
	assert.NoError(t, err)
	return conf
}

func runString(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, run(mustParse(t, args...), &buf))
	return buf.String()
}

func TestParseConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		conf := mustParse(t)
		assert.Equal(t, conf.Seed, int64(-1))
		assert.Equal(t, conf.Kind, "uint64")
		assert.Equal(t, conf.Count, 10)
		assert.Equal(t, conf.Level, zerolog.InfoLevel)
	})

	t.Run("Help", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parseConfig([]string{"-h"}, &out)
		assert.That(t, errors.Is(err, flag.ErrHelp))
		assert.That(t, strings.Contains(out.String(), "bool,bytes,exp,float32,float64,gauss,int32,int64,uint64,uuid"))
	})

	t.Run("ZeroSeed", func(t *testing.T) {
		assert.Equal(t, mustParse(t, "-seed", "0").Seed, int64(0))
	})

	for _, args := range [][]string{
		{"-kind", "int8"},
		{"-n", "-1"},
		{"-seed", "-5"},
		{"-seed", "-1"},
		{"-seed", "0", "-key", "a"},
		{"-seed", "1", "-key", "a"},
		{"-origin", "1"},
		{"-l", "loud"},
		{"extra"},
	} {
		_, err := parseConfig(args, io.Discard)
		assert.Error(t, err)
	}
}

func TestRun(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-n", "2"),
			"7906249386700390546\n14100186368074196206\n")
	})

	t.Run("Int32Bounded", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-kind", "int32", "-n", "6", "-bound", "10"),
			"0\n6\n2\n6\n6\n1\n")
	})

	t.Run("Uint64Ranged", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-n", "4", "-origin", "10", "-bound", "20"),
			"16\n16\n18\n12\n")
	})

	t.Run("Float64", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-kind", "float64", "-n", "1"),
			"0.5400215086592977\n")
	})

	t.Run("UUID", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-kind", "uuid", "-n", "1"),
			"6DB8A3ED-97ED-4092-83AD-ECCBB7DE24EE\n")
	})

	t.Run("Bytes", func(t *testing.T) {
		assert.Equal(t, runString(t, "-seed", "42", "-kind", "bytes", "-n", "10"),
			"6db8a3ed97ed4092c3ad\n")
	})

	t.Run("Fingerprint", func(t *testing.T) {
		r, err := v8rand.New(42)
		assert.NoError(t, err)
		assert.Equal(t, runString(t, "-seed", "42", "-n", "100", "-fingerprint"),
			fingerprint.Hex(fingerprint.Sum(r, 100))+"\n")
	})

	t.Run("Key", func(t *testing.T) {
		a := runString(t, "-key", "level-1", "-n", "3")
		assert.Equal(t, a, runString(t, "-key", "level-1", "-n", "3"))
		assert.That(t, a != runString(t, "-key", "level-2", "-n", "3"))
	})

	t.Run("BadBound", func(t *testing.T) {
		err := run(mustParse(t, "-seed", "1", "-kind", "int32", "-bound", "0"), io.Discard)
		assert.That(t, errors.Is(err, v8rand.ErrBadBound))
	})

	t.Run("BoundOnUnshaped", func(t *testing.T) {
		err := run(mustParse(t, "-seed", "1", "-kind", "gauss", "-bound", "3"), io.Discard)
		assert.Error(t, err)
	})

	t.Run("UnparsableBound", func(t *testing.T) {
		err := run(mustParse(t, "-seed", "1", "-kind", "int32", "-bound", "1e99"), io.Discard)
		assert.Error(t, err)
	})
}
