package euui

import (
	"fmt"

	"github.com/google/uuid"
)

// FromUUIDs creates an EUUI whose 4 segments are the given UUIDs, in order.
func FromUUIDs(uuids [SegmentCount]uuid.UUID) EUUI {
	var e EUUI
	for i, u := range uuids {
		copy(e[i*SegmentSize:], u[:])
	}
	return e
}

// WithUUIDAt returns a copy of the EUUI with the segment at pos replaced by u.
// Unlike the indexed accessors, which report absence with a boolean, an
// invalid pos is reported as ErrInvalidPosition.
func (e EUUI) WithUUIDAt(u uuid.UUID, pos int) (EUUI, error) {
	if pos < 0 || pos >= SegmentCount {
		return Nil, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	copy(e[pos*SegmentSize:], u[:])
	return e, nil
}

// WithFirst returns a copy of the EUUI with the first segment set to u.
func (e EUUI) WithFirst(u uuid.UUID) EUUI {
	copy(e[0:16], u[:])
	return e
}

// WithSecond returns a copy of the EUUI with the second segment set to u.
func (e EUUI) WithSecond(u uuid.UUID) EUUI {
	copy(e[16:32], u[:])
	return e
}

// WithThird returns a copy of the EUUI with the third segment set to u.
func (e EUUI) WithThird(u uuid.UUID) EUUI {
	copy(e[32:48], u[:])
	return e
}

// WithFourth returns a copy of the EUUI with the fourth segment set to u.
func (e EUUI) WithFourth(u uuid.UUID) EUUI {
	copy(e[48:64], u[:])
	return e
}

// UUIDAt returns the segment at index as a UUID.
// ok is false if index is not in [0, 4).
func (e EUUI) UUIDAt(index int) (u uuid.UUID, ok bool) {
	if index < 0 || index >= SegmentCount {
		return u, false
	}
	copy(u[:], e[index*SegmentSize:(index+1)*SegmentSize])
	return u, true
}

// UUIDs returns the 4 segments of the EUUI as UUIDs.
func (e EUUI) UUIDs() [SegmentCount]uuid.UUID {
	var uuids [SegmentCount]uuid.UUID
	for i := range uuids {
		uuids[i], _ = e.UUIDAt(i)
	}
	return uuids
}

// NewFromUUIDs generates an EUUI from 4 version 4 UUIDs drawn from the
// generator's random source.
func (g *Generator) NewFromUUIDs() (EUUI, error) {
	var uuids [SegmentCount]uuid.UUID

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range uuids {
		u, err := uuid.NewRandomFromReader(g.randReader)
		if err != nil {
			return Nil, fmt.Errorf("euui: generate UUID: %w", err)
		}
		uuids[i] = u
	}
	return FromUUIDs(uuids), nil
}

// NewFromUUIDs generates an EUUI from 4 random version 4 UUIDs using the
// default generator.
func NewFromUUIDs() (EUUI, error) {
	return defaultGenerator.NewFromUUIDs()
}
