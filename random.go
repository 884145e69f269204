package euui

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"lukechampine.com/uint128"
)

// Generator creates random EUUIs from a random source. The quality of the
// generated values is that of the source; no uniqueness is enforced.
//
// A Generator is safe for concurrent use.
type Generator struct {
	mu         sync.Mutex
	randReader io.Reader
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// read fills dst from the random source.
func (g *Generator) read(dst []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, err := io.ReadFull(g.randReader, dst); err != nil {
		return fmt.Errorf("euui: read random source: %w", err)
	}
	return nil
}

// New generates an EUUI with all 4 segments drawn from the random source.
func (g *Generator) New() (EUUI, error) {
	var e EUUI
	if err := g.read(e[:]); err != nil {
		return Nil, err
	}
	return e, nil
}

// NewWithSegment generates an EUUI whose segment at pos is s and whose
// other segments are random.
func (g *Generator) NewWithSegment(s uint128.Uint128, pos int) (EUUI, error) {
	if pos < 0 || pos >= SegmentCount {
		return Nil, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	e, err := g.New()
	if err != nil {
		return Nil, err
	}
	return e.withSegment(pos, s), nil
}

// NewWithFirst generates an EUUI with the first segment set to s.
func (g *Generator) NewWithFirst(s uint128.Uint128) (EUUI, error) {
	return g.NewWithSegment(s, 0)
}

// NewWithSecond generates an EUUI with the second segment set to s.
func (g *Generator) NewWithSecond(s uint128.Uint128) (EUUI, error) {
	return g.NewWithSegment(s, 1)
}

// NewWithThird generates an EUUI with the third segment set to s.
func (g *Generator) NewWithThird(s uint128.Uint128) (EUUI, error) {
	return g.NewWithSegment(s, 2)
}

// NewWithFourth generates an EUUI with the fourth segment set to s.
func (g *Generator) NewWithFourth(s uint128.Uint128) (EUUI, error) {
	return g.NewWithSegment(s, 3)
}

// Regenerate returns a copy of id whose segment at pos is freshly drawn
// from the random source. id itself is not modified.
func (g *Generator) Regenerate(id EUUI, pos int) (EUUI, error) {
	if pos < 0 || pos >= SegmentCount {
		return Nil, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	if err := g.read(id[pos*SegmentSize : (pos+1)*SegmentSize]); err != nil {
		return Nil, err
	}
	return id, nil
}

// RegenerateFirst returns a copy of id with a new random first segment.
func (g *Generator) RegenerateFirst(id EUUI) (EUUI, error) {
	return g.Regenerate(id, 0)
}

// RegenerateSecond returns a copy of id with a new random second segment.
func (g *Generator) RegenerateSecond(id EUUI) (EUUI, error) {
	return g.Regenerate(id, 1)
}

// RegenerateThird returns a copy of id with a new random third segment.
func (g *Generator) RegenerateThird(id EUUI) (EUUI, error) {
	return g.Regenerate(id, 2)
}

// RegenerateFourth returns a copy of id with a new random fourth segment.
func (g *Generator) RegenerateFourth(id EUUI) (EUUI, error) {
	return g.Regenerate(id, 3)
}

// Must is a helper that wraps a call to a function returning (EUUI, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = euui.Must(euui.New())
func Must(e EUUI, err error) EUUI {
	if err != nil {
		panic(err)
	}
	return e
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()

// New generates a random EUUI using the default generator.
func New() (EUUI, error) {
	return defaultGenerator.New()
}

// NewWithFirst generates a random EUUI with the first segment set to s.
func NewWithFirst(s uint128.Uint128) (EUUI, error) {
	return defaultGenerator.NewWithFirst(s)
}

// NewWithSecond generates a random EUUI with the second segment set to s.
func NewWithSecond(s uint128.Uint128) (EUUI, error) {
	return defaultGenerator.NewWithSecond(s)
}

// NewWithThird generates a random EUUI with the third segment set to s.
func NewWithThird(s uint128.Uint128) (EUUI, error) {
	return defaultGenerator.NewWithThird(s)
}

// NewWithFourth generates a random EUUI with the fourth segment set to s.
func NewWithFourth(s uint128.Uint128) (EUUI, error) {
	return defaultGenerator.NewWithFourth(s)
}

// RegenerateFirst returns a copy of e with a new random first segment,
// using the default generator.
func (e EUUI) RegenerateFirst() (EUUI, error) {
	return defaultGenerator.Regenerate(e, 0)
}

// RegenerateSecond is like RegenerateFirst for the second segment.
func (e EUUI) RegenerateSecond() (EUUI, error) {
	return defaultGenerator.Regenerate(e, 1)
}

// RegenerateThird is like RegenerateFirst for the third segment.
func (e EUUI) RegenerateThird() (EUUI, error) {
	return defaultGenerator.Regenerate(e, 2)
}

// RegenerateFourth is like RegenerateFirst for the fourth segment.
func (e EUUI) RegenerateFourth() (EUUI, error) {
	return defaultGenerator.Regenerate(e, 3)
}
