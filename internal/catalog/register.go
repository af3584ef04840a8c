package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type variant[F any] struct {
	name string
	fn   F
}

func v[F any](name string, fn F) variant[F] {
	return variant[F]{name: name, fn: fn}
}

// define builds a problem whose variants share the signature F. call
// adapts a decoded input In to one variant and returns its result.
func define[F, In, Out any](family, name string, call func(F, In) (Out, error), vs ...variant[F]) *Problem {
	byName := make(map[string]F, len(vs))
	names := make([]string, 0, len(vs))
	for _, vr := range vs {
		byName[vr.name] = vr.fn
		names = append(names, vr.name)
	}

	p := &Problem{Family: family, Name: name, variants: names}
	p.run = func(variant string, c *Case) (Outcome, error) {
		fn, ok := byName[variant]
		if !ok {
			return Outcome{}, fmt.Errorf("%w: %s has no %q", ErrUnknownVariant, p.Key(), variant)
		}
		var in In
		if err := decode(&c.Input, &in); err != nil {
			return Outcome{}, fmt.Errorf("%w: %s/%s input: %v", ErrBadCase, p.Key(), c.Name, err)
		}
		out := Outcome{WantErr: c.Err}
		if c.Err == "" {
			var want Out
			if err := decode(&c.Want, &want); err != nil {
				return Outcome{}, fmt.Errorf("%w: %s/%s want: %v", ErrBadCase, p.Key(), c.Name, err)
			}
			out.Want = want
		}

		got, err := call(fn, in)
		if err != nil {
			out.GotErr = err.Error()
			return out, nil
		}
		out.Got = got

		return out, nil
	}

	return p
}

func decode(n *yaml.Node, out any) error {
	if n.Kind == 0 {
		return nil
	}
	return n.Decode(out)
}

// pure adapts a single-argument function that cannot fail.
func pure[In, Out any](fn func(In) Out, in In) (Out, error) {
	return fn(in), nil
}

// fallible adapts a single-argument function returning an error.
func fallible[In, Out any](fn func(In) (Out, error), in In) (Out, error) {
	return fn(in)
}

// script is the input of a stateful problem. Each constructor reads the
// fields it needs.
type script struct {
	Capacity int      `yaml:"capacity"`
	K        int      `yaml:"k"`
	Nums     []int    `yaml:"nums"`
	Words    []string `yaml:"words"`
	Seed     int64    `yaml:"seed"`
	Ops      [][]any  `yaml:"ops"`
}

// stepper applies one operation to a live structure and returns its result,
// or nil for operations that return nothing.
type stepper func(op string, args []any) (any, error)

// defineScript builds a stateful problem. start constructs the structure
// with one variant's constructor.
func defineScript[C any](family, name string, start func(C, script) (stepper, error), vs ...variant[C]) *Problem {
	call := func(ctor C, in script) ([]any, error) {
		step, err := start(ctor, in)
		if err != nil {
			return nil, err
		}
		results := make([]any, 0, len(in.Ops))
		for i, op := range in.Ops {
			if len(op) == 0 {
				return nil, fmt.Errorf("%w: op %d is empty", ErrBadCase, i)
			}
			verb, ok := op[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: op %d has no name", ErrBadCase, i)
			}
			res, err := step(verb, op[1:])
			if err != nil {
				return nil, fmt.Errorf("op %d %s: %w", i, verb, err)
			}
			results = append(results, res)
		}
		return normalize(results)
	}

	return define(family, name, call, vs...)
}

// normalize reshapes results into the generic form YAML decoding produces,
// so [][2]int and []any{[]any{...}} compare equal.
func normalize(results []any) ([]any, error) {
	data, err := yaml.Marshal(results)
	if err != nil {
		return nil, err
	}
	var out []any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []any{}
	}

	return out, nil
}

func unknownOp(op string) error {
	return fmt.Errorf("%w: unknown op %q", ErrBadCase, op)
}

func intArg(args []any, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: missing argument %d", ErrBadCase, i)
	}
	n, ok := args[i].(int)
	if !ok {
		return 0, fmt.Errorf("%w: argument %d is %T, want int", ErrBadCase, i, args[i])
	}
	return n, nil
}

func byteArg(args []any, i int) (byte, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: missing argument %d", ErrBadCase, i)
	}
	s, ok := args[i].(string)
	if !ok || len(s) != 1 {
		return 0, fmt.Errorf("%w: argument %d must be one character", ErrBadCase, i)
	}
	return s[0], nil
}
