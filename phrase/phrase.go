// Package phrase provides operators that evolve a string toward a target
// phrase. Candidates are ASCII strings with the same length as the target.
package phrase

import (
	"fmt"
	"math"
	"strings"

	"github.com/xrash/smetrics"
)

// Printable is the default alphabet: digits, letters, punctuation and
// whitespace.
const Printable = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r\x0b\x0c"

const (
	DefaultMutatePct = 0.4
	DefaultCrossPct  = 0.2
)

type Config struct {
	Target    string
	Alphabet  string
	MutatePct float64
	CrossPct  float64
	Seed      int64
}

// Operators mutates, recombines and scores phrases. It is safe for
// concurrent use.
type Operators struct {
	target    string
	alphabet  string
	mutatePct float64
	crossPct  float64
	rng       *pooledRand
}

func New(config Config) (*Operators, error) {
	if len(config.Target) == 0 {
		return nil, fmt.Errorf("target phrase must not be empty")
	}
	if !isASCII(config.Target) {
		return nil, fmt.Errorf("target phrase must be ASCII")
	}
	alphabet := config.Alphabet
	if alphabet == "" {
		alphabet = Printable
	}
	if !isASCII(alphabet) {
		return nil, fmt.Errorf("alphabet must be ASCII")
	}
	mutatePct, crossPct := config.MutatePct, config.CrossPct
	if mutatePct == 0 {
		mutatePct = DefaultMutatePct
	}
	if crossPct == 0 {
		crossPct = DefaultCrossPct
	}
	if mutatePct < 0 || mutatePct > 1 || crossPct < 0 || crossPct > 1 {
		return nil, fmt.Errorf("mutate_pct and cross_pct must be within [0, 1], got %v and %v", mutatePct, crossPct)
	}
	return &Operators{
		target:    config.Target,
		alphabet:  alphabet,
		mutatePct: mutatePct,
		crossPct:  crossPct,
		rng:       newPooledRand(config.Seed),
	}, nil
}

func (o *Operators) Target() string {
	return o.target
}

// MaxScore is the score of an exact match.
func (o *Operators) MaxScore() int {
	return len(o.target)
}

func (o *Operators) Generate() (string, error) {
	return o.random(len(o.target)), nil
}

// Mutate replaces a random segment covering mutatePct of the phrase with
// random characters.
func (o *Operators) Mutate(p string) (string, error) {
	if err := o.checkLength(p); err != nil {
		return "", err
	}
	start, end := o.segment(len(p), o.mutatePct)
	return p[:start] + o.random(end-start) + p[end:], nil
}

// Recombine copies a random segment covering crossPct of the phrase from
// second into first.
func (o *Operators) Recombine(first, second string) (string, error) {
	if err := o.checkLength(first); err != nil {
		return "", err
	}
	if err := o.checkLength(second); err != nil {
		return "", err
	}
	start, end := o.segment(len(first), o.crossPct)
	return first[:start] + second[start:end] + first[end:], nil
}

// Score counts the positions matching the target.
func (o *Operators) Score(p string) (int, error) {
	dist, err := smetrics.Hamming(o.target, p)
	if err != nil {
		return 0, fmt.Errorf("failed to score %q: %w", p, err)
	}
	return len(o.target) - dist, nil
}

// Distance is the edit distance from p to the target.
func (o *Operators) Distance(p string) int {
	return smetrics.WagnerFischer(o.target, p, 1, 1, 2)
}

func (o *Operators) random(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(o.alphabet[o.rng.Intn(len(o.alphabet))])
	}
	return sb.String()
}

// segment picks [start, end) spanning round(size*pct) characters, at least
// one.
func (o *Operators) segment(size int, pct float64) (int, int) {
	n := int(math.RoundToEven(float64(size) * pct))
	if n < 1 {
		n = 1
	}
	if n >= size {
		return 0, size
	}
	start := o.rng.Intn(size - n)
	return start, start + n
}

func (o *Operators) checkLength(p string) error {
	if len(p) != len(o.target) {
		return fmt.Errorf("phrase %q has length %d, want %d", p, len(p), len(o.target))
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
