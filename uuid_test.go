package euui

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUUIDs = [SegmentCount]uuid.UUID{
	uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
	uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057"),
	uuid.MustParse("00000000-0000-0000-0000-000000000001"),
}

func TestFromUUIDs(t *testing.T) {
	id := FromUUIDs(testUUIDs)
	assert.Equal(t,
		"f47ac10b58cc4372a5670e02b2c3d479"+
			"6ba7b8109dad11d180b400c04fd430c8"+
			"01890a5dac96774bbcceb302099a8057"+
			"00000000000000000000000000000001",
		id.String())
	assert.Equal(t, testUUIDs, id.UUIDs())

	seg, ok := id.Segment(3)
	require.True(t, ok)
	assert.Equal(t, uint64(0), seg.Hi)
	assert.Equal(t, uint64(1), seg.Lo)
}

func TestEUUI_UUIDAt(t *testing.T) {
	id := FromUUIDs(testUUIDs)
	for i, want := range testUUIDs {
		got, ok := id.UUIDAt(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := id.UUIDAt(4)
	assert.False(t, ok)
	_, ok = id.UUIDAt(-1)
	assert.False(t, ok)
}

func TestEUUI_WithUUID(t *testing.T) {
	base := FromSegments(testSegments)
	u := testUUIDs[0]

	tests := []struct {
		name string
		pos  int
		with func(EUUI, uuid.UUID) EUUI
	}{
		{"first", 0, EUUI.WithFirst},
		{"second", 1, EUUI.WithSecond},
		{"third", 2, EUUI.WithThird},
		{"fourth", 3, EUUI.WithFourth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.with(base, u)
			byPos, err := base.WithUUIDAt(u, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, byPos, got)

			for i := 0; i < SegmentCount; i++ {
				seg, _ := got.Segment(i)
				if i == tt.pos {
					gotUUID, _ := got.UUIDAt(i)
					assert.Equal(t, u, gotUUID)
				} else {
					assert.Equal(t, testSegments[i], seg, "segment %d changed", i)
				}
			}
			// receiver untouched
			assert.Equal(t, testSegments, base.Segments())
		})
	}
}

func TestEUUI_WithFirst_SegmentValue(t *testing.T) {
	u := uuid.MustParse("0102030405060708090a0b0c0d0e0f10")
	seg, ok := Nil.WithFirst(u).Segment(0)
	require.True(t, ok)
	assert.Equal(t, uint64(0x0102030405060708), seg.Hi)
	assert.Equal(t, uint64(0x090a0b0c0d0e0f10), seg.Lo)
}

func TestEUUI_WithUUIDAt_InvalidPosition(t *testing.T) {
	base := FromSegments(testSegments)
	for _, pos := range []int{-1, 4, 5} {
		got, err := base.WithUUIDAt(testUUIDs[0], pos)
		assert.ErrorIs(t, err, ErrInvalidPosition, "pos %d", pos)
		assert.Equal(t, Nil, got)
	}
}

func TestGenerator_NewFromUUIDs(t *testing.T) {
	src := bytes.Repeat([]byte{0xff}, Size)
	gen := NewGeneratorWithReader(bytes.NewReader(src))

	id, err := gen.NewFromUUIDs()
	require.NoError(t, err)
	for i, u := range id.UUIDs() {
		assert.Equal(t, uuid.Version(4), u.Version(), "uuid %d", i)
		assert.Equal(t, uuid.RFC4122, u.Variant(), "uuid %d", i)
	}

	_, err = gen.NewFromUUIDs()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewFromUUIDs(t *testing.T) {
	id, err := NewFromUUIDs()
	require.NoError(t, err)
	assert.False(t, id.IsNil())
	for _, u := range id.UUIDs() {
		assert.Equal(t, uuid.Version(4), u.Version())
	}
}
