// Package catalog registers every problem of the collection together with
// its solution variants and the YAML cases that exercise them.
//
// A problem is addressed by the key "family/name", for example
// "array/two-sum". Each case decodes its input afresh for every run, so a
// variant that mutates its argument cannot affect another variant.
//
// Case files map problem keys to case lists:
//
//	array/two-sum:
//	  - name: sample
//	    input: {nums: [2, 7, 11, 15], target: 9}
//	    want: [0, 1]
//
// A case expecting an error sets err to a substring of the error message
// instead of want. Stateful structures take an ops script whose results are
// compared element by element, with null for operations returning nothing:
//
//	cache/lru:
//	  - input: {capacity: 1, ops: [[put, 1, 1], [get, 1]]}
//	    want: [null, 1]
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownProblem is returned for keys that match no registered problem.
	ErrUnknownProblem = errors.New("catalog: unknown problem")
	// ErrUnknownVariant is returned when a problem has no variant of that name.
	ErrUnknownVariant = errors.New("catalog: unknown variant")
	// ErrBadCase is returned when a case cannot be decoded.
	ErrBadCase = errors.New("catalog: malformed case")
)

//go:embed cases/*.yaml
var embedded embed.FS

// Case is one input with its expected result.
type Case struct {
	Name  string    `yaml:"name"`
	Input yaml.Node `yaml:"input"`
	Want  yaml.Node `yaml:"want"`
	Err   string    `yaml:"err"`
}

// Outcome is what one variant produced for one case.
type Outcome struct {
	Got  any
	Want any
	// GotErr is the error message returned by the variant, if any.
	GotErr string
	// WantErr is the expected error substring; empty when none is expected.
	WantErr string
}

// Problem is a registered exercise with its ordered variants. The first
// variant is the recommended one.
type Problem struct {
	Family   string
	Name     string
	variants []string
	run      func(variant string, c *Case) (Outcome, error)
}

// Key returns "family/name".
func (p *Problem) Key() string { return p.Family + "/" + p.Name }

// Variants returns the variant names, recommended first.
func (p *Problem) Variants() []string { return slices.Clone(p.variants) }

// Run executes one variant on c. The returned error reports a problem with
// the case or the variant name; failures of the solution itself are carried
// in the Outcome.
func (p *Problem) Run(variant string, c *Case) (Outcome, error) {
	return p.run(variant, c)
}

// Registry holds problems and their cases.
type Registry struct {
	problems map[string]*Problem
	cases    map[string][]Case
}

// New returns a registry with every built-in problem and the embedded cases.
func New() (*Registry, error) {
	r := &Registry{
		problems: make(map[string]*Problem),
		cases:    make(map[string][]Case),
	}
	for _, group := range [][]*Problem{
		arrayProblems(),
		textProblems(),
		listProblems(),
		structureProblems(),
	} {
		for _, p := range group {
			r.problems[p.Key()] = p
		}
	}

	err := fs.WalkDir(embedded, "cases", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(name) != ".yaml" {
			return err
		}
		data, err := embedded.ReadFile(name)
		if err != nil {
			return err
		}
		return r.LoadCases(name, data)
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Families returns the distinct family names in order.
func (r *Registry) Families() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.problems {
		if !seen[p.Family] {
			seen[p.Family] = true
			out = append(out, p.Family)
		}
	}
	sort.Strings(out)

	return out
}

// Problems returns the problems of family sorted by key; an empty family
// selects all of them.
func (r *Registry) Problems(family string) []*Problem {
	out := make([]*Problem, 0, len(r.problems))
	for _, p := range r.problems {
		if family == "" || p.Family == family {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// Problem resolves a full key or a bare name that is unique across families.
func (r *Registry) Problem(key string) (*Problem, error) {
	if p, ok := r.problems[key]; ok {
		return p, nil
	}
	if !strings.Contains(key, "/") {
		var found *Problem
		for _, p := range r.problems {
			if p.Name != key {
				continue
			}
			if found != nil {
				return nil, fmt.Errorf("%w: %q is ambiguous", ErrUnknownProblem, key)
			}
			found = p
		}
		if found != nil {
			return found, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, key)
}

// Cases returns the cases registered for key.
func (r *Registry) Cases(key string) []Case {
	return r.cases[key]
}

// LoadCases merges a case document into the registry. source names the
// document in error messages. Unnamed cases are numbered.
func (r *Registry) LoadCases(source string, data []byte) error {
	var doc map[string][]Case
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadCase, source, err)
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := r.problems[key]; !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownProblem, key, source)
		}
		for _, c := range doc[key] {
			if c.Name == "" {
				c.Name = fmt.Sprintf("case%d", len(r.cases[key])+1)
			}
			r.cases[key] = append(r.cases[key], c)
		}
	}

	return nil
}

// LoadCaseFile reads a case document from disk.
func (r *Registry) LoadCaseFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read cases: %w", err)
	}
	return r.LoadCases(name, data)
}
