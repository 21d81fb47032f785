// Package sample builds the synthetic text buffers the benchmark scans.
package sample

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mhr3/wsbench/ascii"
)

// DefaultLength is the number of bytes in each generated sample.
const DefaultLength = 100_000_000

const (
	// randomAlphabet resembles minified JSON: 4 whitespace bytes out of 27.
	randomAlphabet     = "\n\t\r ,[]\"abcdefghijklmnop:{}"
	whitespaceAlphabet = "\n\t\r "
)

var (
	// ErrInvalidLength is returned for a negative sample length.
	ErrInvalidLength = errors.New("sample: invalid length")
	// ErrUnknownGenerator is returned when no generator has the given name.
	ErrUnknownGenerator = errors.New("sample: unknown generator")
)

// Sample is a generated buffer together with how it was produced.
type Sample struct {
	Name  string
	Title string
	Data  string
	// Seed is the seed actually used, never 0.
	Seed uint64
	// ASCII reports whether Data is 7-bit clean.
	ASCII bool
}

// Generator produces a sample of n bytes. A zero seed picks a random one.
type Generator func(n int, seed uint64) (Sample, error)

var generators = map[string]Generator{
	"random":      Random,
	"alternating": Alternating,
}

// Names returns the registered generator names in run order.
func Names() []string {
	return []string{"random", "alternating"}
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownGenerator, name, strings.Join(Names(), ", "))
	}
	return g, nil
}

// Random returns n bytes drawn uniformly from a JSON-like alphabet.
func Random(n int, seed uint64) (Sample, error) {
	if n < 0 {
		return Sample{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	seed = pickSeed(seed)
	rnd := newRand(seed)

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(randomAlphabet[rnd.IntN(len(randomAlphabet))])
	}
	return finish("random", "Random Characters", sb.String(), seed), nil
}

// Alternating returns n bytes where every other byte is a random whitespace
// byte and the rest are 'a'. Counting from the end, the second-to-last byte
// is whitespace and the last is not, so exactly n/2 bytes are whitespace.
func Alternating(n int, seed uint64) (Sample, error) {
	if n < 0 {
		return Sample{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	seed = pickSeed(seed)
	rnd := newRand(seed)

	var sb strings.Builder
	sb.Grow(n)
	for remaining := n - 1; remaining >= 0; remaining-- {
		if remaining&1 != 0 {
			sb.WriteByte(whitespaceAlphabet[rnd.IntN(len(whitespaceAlphabet))])
		} else {
			sb.WriteByte('a')
		}
	}
	return finish("alternating", "Alternating Whitespace", sb.String(), seed), nil
}

// Alphabet returns the bytes the named generator can emit.
func Alphabet(name string) (string, error) {
	switch name {
	case "random":
		return randomAlphabet, nil
	case "alternating":
		return whitespaceAlphabet + "a", nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownGenerator, name)
}

func finish(name, title, data string, seed uint64) Sample {
	return Sample{
		Name:  name,
		Title: title,
		Data:  data,
		Seed:  seed,
		ASCII: ascii.ValidString(data),
	}
}

func pickSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
