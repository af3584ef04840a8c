package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlquest/internal/catalog"
)

func newRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	r, err := catalog.New()
	require.NoError(t, err)
	return r
}

// TestNew_Families verifies that every family is registered.
func TestNew_Families(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, []string{
		"array", "binsearch", "cache", "heaps", "linkedlist", "prefixsum",
		"queue", "sorting", "stack", "stream", "strs",
	}, r.Families())
	assert.Len(t, r.Problems(""), 40)
	assert.Len(t, r.Problems("stream"), 4)
}

// TestEmbeddedCases_Coverage verifies that no problem is left without cases
// and no problem has fewer than two variants.
func TestEmbeddedCases_Coverage(t *testing.T) {
	r := newRegistry(t)
	for _, p := range r.Problems("") {
		assert.NotEmpty(t, r.Cases(p.Key()), p.Key())
		assert.GreaterOrEqual(t, len(p.Variants()), 2, p.Key())
	}
}

// TestEmbeddedCases_AllVariants runs every variant of every problem on the
// embedded cases.
func TestEmbeddedCases_AllVariants(t *testing.T) {
	r := newRegistry(t)
	for _, p := range r.Problems("") {
		cases := r.Cases(p.Key())
		for _, variant := range p.Variants() {
			for i := range cases {
				c := &cases[i]
				t.Run(p.Key()+"/"+variant+"/"+c.Name, func(t *testing.T) {
					out, err := p.Run(variant, c)
					require.NoError(t, err)
					if out.WantErr != "" {
						assert.Contains(t, out.GotErr, out.WantErr)
						return
					}
					require.Empty(t, out.GotErr)
					if diff := cmp.Diff(out.Want, out.Got, cmpopts.EquateEmpty()); diff != "" {
						t.Errorf("mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

// TestProblem_Lookup verifies full keys, bare names and unknown keys.
func TestProblem_Lookup(t *testing.T) {
	r := newRegistry(t)

	p, err := r.Problem("array/two-sum")
	require.NoError(t, err)
	assert.Equal(t, "two-sum", p.Name)
	assert.Equal(t, "hash", p.Variants()[0])

	p, err = r.Problem("kth-largest")
	require.NoError(t, err)
	assert.Equal(t, "stream/kth-largest", p.Key())

	for _, key := range []string{"nope", "array/nope", "stream/"} {
		_, err = r.Problem(key)
		assert.ErrorIs(t, err, catalog.ErrUnknownProblem, key)
	}
}

// TestRun_UnknownVariant verifies variant name checking.
func TestRun_UnknownVariant(t *testing.T) {
	r := newRegistry(t)
	p, err := r.Problem("stack/eval-rpn")
	require.NoError(t, err)
	c := r.Cases(p.Key())[0]

	_, err = p.Run("abacus", &c)
	assert.ErrorIs(t, err, catalog.ErrUnknownVariant)
}

// TestRun_Repeatable verifies that input is decoded afresh for each run.
func TestRun_Repeatable(t *testing.T) {
	r := newRegistry(t)
	p, err := r.Problem("array/first-missing-positive")
	require.NoError(t, err)
	c := r.Cases(p.Key())[1]

	first, err := p.Run("cyclic", &c)
	require.NoError(t, err)
	second, err := p.Run("cyclic", &c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Got)
}

// TestLoadCases verifies merging, numbering and rejection of bad documents.
func TestLoadCases(t *testing.T) {
	r := newRegistry(t)
	before := len(r.Cases("heaps/last-stone-weight"))

	doc := "heaps/last-stone-weight:\n  - input: [3, 3, 3]\n    want: 3\n"
	require.NoError(t, r.LoadCases("extra.yaml", []byte(doc)))
	cases := r.Cases("heaps/last-stone-weight")
	require.Len(t, cases, before+1)
	added := cases[len(cases)-1]
	assert.True(t, strings.HasPrefix(added.Name, "case"))

	p, err := r.Problem("heaps/last-stone-weight")
	require.NoError(t, err)
	out, err := p.Run("sort", &added)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Got)
	assert.Equal(t, 3, out.Want)

	err = r.LoadCases("bad.yaml", []byte("heaps/unknown:\n  - input: 1\n"))
	assert.ErrorIs(t, err, catalog.ErrUnknownProblem)

	err = r.LoadCases("broken.yaml", []byte("[not a map"))
	assert.ErrorIs(t, err, catalog.ErrBadCase)
}

// TestLoadCaseFile verifies reading cases from disk.
func TestLoadCaseFile(t *testing.T) {
	r := newRegistry(t)
	path := filepath.Join(t.TempDir(), "more.yaml")
	body := "strs/detect-capital:\n  - name: title\n    input: \"Go\"\n    want: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	require.NoError(t, r.LoadCaseFile(path))
	cases := r.Cases("strs/detect-capital")
	assert.Equal(t, "title", cases[len(cases)-1].Name)

	assert.Error(t, r.LoadCaseFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

// TestScript_Malformed verifies that bad scripts surface as failures of the
// run rather than panics.
func TestScript_Malformed(t *testing.T) {
	r := newRegistry(t)
	doc := `cache/lru:
  - name: bad-op
    input: {capacity: 1, ops: [[fly, 1]]}
    want: [null]
  - name: bad-arg
    input: {capacity: 1, ops: [[get, x]]}
    want: [null]
  - name: bad-input
    input: {capacity: [1]}
    want: []
`
	require.NoError(t, r.LoadCases("bad-scripts.yaml", []byte(doc)))
	p, err := r.Problem("cache/lru")
	require.NoError(t, err)
	cases := r.Cases(p.Key())
	n := len(cases)

	out, err := p.Run("intrusive", &cases[n-3])
	require.NoError(t, err)
	assert.Contains(t, out.GotErr, "unknown op")

	out, err = p.Run("intrusive", &cases[n-2])
	require.NoError(t, err)
	assert.Contains(t, out.GotErr, "want int")

	_, err = p.Run("intrusive", &cases[n-1])
	assert.ErrorIs(t, err, catalog.ErrBadCase)
}
