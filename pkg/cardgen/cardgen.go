package cardgen

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Generator allocates 16-digit card numbers: a fixed 4-digit issuer prefix
// followed by 12 uniformly distributed pseudo-random digits. Numbers carry
// no checksum. Uniqueness is the caller's concern; the generator only
// retries against the set it is handed.
type Generator struct {
	prefix      string
	maxAttempts int

	// rnd overrides the package-level source; tests seed it for
	// deterministic sequences. Unlike the global source it is not safe
	// for concurrent use.
	rnd *rand.Rand
}

var (
	ErrExhaustedRetries = errors.New("exhausted card number generation attempts")
	ErrBadPrefix        = errors.New("issuer prefix must be exactly 4 digits")
)

func New(prefix string, maxAttempts int) (*Generator, error) {
	if len(prefix) != 4 {
		return nil, ErrBadPrefix
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return nil, ErrBadPrefix
		}
	}
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	return &Generator{prefix: prefix, maxAttempts: maxAttempts}, nil
}

func (g *Generator) draw() int64 {
	if g.rnd != nil {
		return g.rnd.Int63n(1_000_000_000_000)
	}
	return rand.Int63n(1_000_000_000_000)
}

// Generate returns a number absent from existing. A uniform 12-digit space
// makes exhaustion practically impossible, but the cap is enforced so a
// pathological existing set surfaces an error instead of looping forever.
func (g *Generator) Generate(existing map[string]struct{}) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		number := g.prefix + fmt.Sprintf("%012d", g.draw())
		if _, taken := existing[number]; !taken {
			return number, nil
		}
	}
	return "", ErrExhaustedRetries
}

// Format groups a card number into 4-digit blocks for display. The stored
// canonical form is always the bare digit string.
func Format(number string) string {
	if len(number) != 16 {
		return number
	}
	parts := []string{number[:4], number[4:8], number[8:12], number[12:]}
	return strings.Join(parts, " ")
}
