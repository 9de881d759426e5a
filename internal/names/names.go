// Package names generates human-readable identifiers such as
// "brave_amber_otter" for saved features.
package names

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Separator joins the words of a generated name.
const Separator = "_"

// Generator picks one word from each dictionary in order.
type Generator struct {
	dictionaries [][]string

	mu  sync.Mutex
	rng *rand.Rand // nil means the package-level source
}

// New returns a generator over adjectives, colors and animals.
func New() *Generator {
	return &Generator{dictionaries: [][]string{adjectives, colors, animals}}
}

// NewSeeded returns a deterministic generator, for tests.
func NewSeeded(seed uint64) *Generator {
	g := New()
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return g
}

// Generate returns a new lowercase, underscore-separated name.
func (g *Generator) Generate() string {
	words := make([]string, len(g.dictionaries))
	for i, dict := range g.dictionaries {
		words[i] = dict[g.intN(len(dict))]
	}
	return strings.ToLower(strings.Join(words, Separator))
}

// Combinations is the number of distinct names the generator can produce.
func (g *Generator) Combinations() int {
	n := 1
	for _, dict := range g.dictionaries {
		n *= len(dict)
	}
	return n
}

func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(n)
}
