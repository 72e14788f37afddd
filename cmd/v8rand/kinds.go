package main

import (
	"fmt"
	"strconv"

	"github.com/zeebo/v8rand"
	"github.com/zeebo/v8rand/uuid"
)

// draw produces one formatted value.
type draw func(r *v8rand.T) (string, error)

// kinds maps a kind name to the constructor of its draw. Kind bytes is
// handled by run directly since it is not a stream of values.
var kinds = map[string]func(conf config) (draw, error){
	"bool":  unshaped(func(r *v8rand.T) string { return strconv.FormatBool(r.Bool()) }),
	"exp":   unshaped(func(r *v8rand.T) string { return formatFloat64(r.ExpFloat64()) }),
	"gauss": unshaped(func(r *v8rand.T) string { return formatFloat64(r.NormFloat64()) }),
	"uuid":  unshaped(func(r *v8rand.T) string { return uuid.Format(uuid.New(r)) }),
	"bytes": unshaped(nil),

	"int32": func(conf config) (draw, error) {
		return shaped(conf, parseInt32, (*v8rand.T).Int32, (*v8rand.T).Int32n, (*v8rand.T).Int32Range,
			func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	},
	"int64": func(conf config) (draw, error) {
		return shaped(conf, parseInt64, (*v8rand.T).Int64, (*v8rand.T).Int64n, (*v8rand.T).Int64Range,
			func(v int64) string { return strconv.FormatInt(v, 10) })
	},
	"uint64": func(conf config) (draw, error) {
		return shaped(conf, parseUint64, (*v8rand.T).Uint64, (*v8rand.T).Uint64n, (*v8rand.T).Uint64Range,
			func(v uint64) string { return strconv.FormatUint(v, 10) })
	},
	"float32": func(conf config) (draw, error) {
		return shaped(conf, parseFloat32, (*v8rand.T).Float32, (*v8rand.T).Float32n, (*v8rand.T).Float32Range,
			func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) })
	},
	"float64": func(conf config) (draw, error) {
		return shaped(conf, parseFloat64, (*v8rand.T).Float64, (*v8rand.T).Float64n, (*v8rand.T).Float64Range,
			formatFloat64)
	},
}

// unshaped returns the constructor of a kind that takes no bounds.
func unshaped(fn func(r *v8rand.T) string) func(conf config) (draw, error) {
	return func(conf config) (draw, error) {
		if conf.Bound != "" {
			return nil, fmt.Errorf("kind %q takes no bounds", conf.Kind)
		}
		return func(r *v8rand.T) (string, error) { return fn(r), nil }, nil
	}
}

// shaped picks the plain, bounded or ranged generator for a kind based on
// which of origin and bound are set.
func shaped[V any](conf config,
	parse func(string) (V, error),
	plain func(*v8rand.T) V,
	bounded func(*v8rand.T, V) (V, error),
	ranged func(*v8rand.T, V, V) (V, error),
	format func(V) string,
) (draw, error) {
	if conf.Bound == "" {
		return func(r *v8rand.T) (string, error) { return format(plain(r)), nil }, nil
	}

	bound, err := parse(conf.Bound)
	if err != nil {
		return nil, fmt.Errorf("invalid bound %q: %w", conf.Bound, err)
	}
	if conf.Origin == "" {
		return func(r *v8rand.T) (string, error) {
			v, err := bounded(r, bound)
			return format(v), err
		}, nil
	}

	origin, err := parse(conf.Origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", conf.Origin, err)
	}
	return func(r *v8rand.T) (string, error) {
		v, err := ranged(r, origin, bound)
		return format(v), err
	}, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseUint64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat64(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func formatFloat64(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
