package euui

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// Sizes of the EUUI and of its views.
const (
	Size         = 64
	SegmentCount = 4
	SegmentSize  = 16
	WordCount    = 8
	WordSize     = 8

	// StringLen is the length of the compact hexadecimal form.
	StringLen = Size * 2
	// FormattedLen is the length of the two-line form returned by Format.
	FormattedLen = StringLen + 3
)

// EUUI is an Extended Universally Unique Identifier: a 512-bit (64 byte)
// value stored big-endian. It can be read as 4 128-bit segments,
// 8 64-bit words or 64 bytes.
type EUUI [Size]byte

// Nil is the zero EUUI (all zeros)
var Nil EUUI

// Zero returns the zero EUUI.
func Zero() EUUI {
	return Nil
}

// FromSegments creates an EUUI from 4 big-endian 128-bit segments.
func FromSegments(segs [SegmentCount]uint128.Uint128) EUUI {
	var e EUUI
	for i, s := range segs {
		putSegment(e[i*SegmentSize:(i+1)*SegmentSize], s)
	}
	return e
}

// FromArray creates an EUUI from 64 big-endian bytes.
func FromArray(b [Size]byte) EUUI {
	return EUUI(b)
}

// FromWords64 creates an EUUI from 8 big-endian 64-bit words. Words 2i and
// 2i+1 are the high and low halves of segment i.
func FromWords64(w [WordCount]uint64) EUUI {
	var e EUUI
	for i, v := range w {
		binary.BigEndian.PutUint64(e[i*WordSize:], v)
	}
	return e
}

func putSegment(dst []byte, s uint128.Uint128) {
	binary.BigEndian.PutUint64(dst[0:8], s.Hi)
	binary.BigEndian.PutUint64(dst[8:16], s.Lo)
}

// Segment returns the 128-bit segment at index.
// ok is false if index is not in [0, 4).
func (e EUUI) Segment(index int) (s uint128.Uint128, ok bool) {
	if index < 0 || index >= SegmentCount {
		return s, false
	}
	off := index * SegmentSize
	return uint128.New(
		binary.BigEndian.Uint64(e[off+8:off+16]),
		binary.BigEndian.Uint64(e[off:off+8]),
	), true
}

// Word64 returns the 64-bit word at index.
// ok is false if index is not in [0, 8).
func (e EUUI) Word64(index int) (uint64, bool) {
	if index < 0 || index >= WordCount {
		return 0, false
	}
	return binary.BigEndian.Uint64(e[index*WordSize:]), true
}

// Byte returns the byte at index.
// ok is false if index is not in [0, 64).
func (e EUUI) Byte(index int) (byte, bool) {
	if index < 0 || index >= Size {
		return 0, false
	}
	return e[index], true
}

// Array returns the 64 big-endian bytes of the EUUI.
func (e EUUI) Array() [Size]byte {
	return e
}

// Bytes returns the EUUI as a newly allocated byte slice
func (e EUUI) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, e[:])
	return b
}

// Words64 returns the 8 big-endian 64-bit words of the EUUI.
func (e EUUI) Words64() [WordCount]uint64 {
	var w [WordCount]uint64
	for i := range w {
		w[i] = binary.BigEndian.Uint64(e[i*WordSize:])
	}
	return w
}

// Segments returns the 4 big-endian 128-bit segments of the EUUI.
func (e EUUI) Segments() [SegmentCount]uint128.Uint128 {
	var segs [SegmentCount]uint128.Uint128
	for i := range segs {
		segs[i], _ = e.Segment(i)
	}
	return segs
}

// withSegment returns a copy of e with segment pos replaced by s.
// pos must be valid.
func (e EUUI) withSegment(pos int, s uint128.Uint128) EUUI {
	putSegment(e[pos*SegmentSize:(pos+1)*SegmentSize], s)
	return e
}

// WithSegment returns a copy of the EUUI with the segment at pos replaced.
func (e EUUI) WithSegment(s uint128.Uint128, pos int) (EUUI, error) {
	if pos < 0 || pos >= SegmentCount {
		return Nil, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return e.withSegment(pos, s), nil
}

// String returns the 128 character lowercase hexadecimal representation
// of the EUUI, segments concatenated without separators.
func (e EUUI) String() string {
	var buf [StringLen]byte
	hex.Encode(buf[:], e[:])
	return string(buf[:])
}

// Format returns the two-line representation of the EUUI:
//
//	#1-#2
//	#3-#4
//
// where #n is segment n-1 as 32 lowercase hex characters. Lines are
// separated by a single LF.
func (e EUUI) Format() string {
	var buf [FormattedLen]byte
	encodeFormatted(buf[:], e)
	return string(buf[:])
}

func encodeFormatted(dst []byte, e EUUI) {
	hex.Encode(dst[0:32], e[0:16])
	dst[32] = '-'
	hex.Encode(dst[33:65], e[16:32])
	dst[65] = '\n'
	hex.Encode(dst[66:98], e[32:48])
	dst[98] = '-'
	hex.Encode(dst[99:131], e[48:64])
}

// Parse parses an EUUI from its string representation.
// It accepts the following formats:
//   - 128 hexadecimal characters (as returned by String)
//   - the two-line form returned by Format
//   - either of the above with a urn:euui: prefix or wrapped in braces
//
// Hex digits may be upper or lower case.
func Parse(s string) (EUUI, error) {
	var e EUUI

	s = strings.TrimPrefix(s, "urn:euui:")
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		s = s[1 : len(s)-1]
	}

	switch len(s) {
	case StringLen:
		if _, err := hex.Decode(e[:], []byte(s)); err != nil {
			return Nil, ErrInvalidFormat
		}
		return e, nil
	case FormattedLen:
		if s[32] != '-' || s[65] != '\n' || s[98] != '-' {
			return Nil, ErrInvalidFormat
		}
		parts := [4]string{s[0:32], s[33:65], s[66:98], s[99:131]}
		for i, p := range parts {
			if err := decodeHexSegment(e[i*SegmentSize:(i+1)*SegmentSize], p); err != nil {
				return Nil, err
			}
		}
		return e, nil
	}
	return Nil, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
func MustParse(s string) EUUI {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("euui: Parse(%q): %v", s, err))
	}
	return e
}

func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// IsNil returns true if the EUUI is all zeros
func (e EUUI) IsNil() bool {
	return e == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (e EUUI) MarshalText() ([]byte, error) {
	buf := make([]byte, StringLen)
	hex.Encode(buf, e[:])
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (e *EUUI) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*e = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (e EUUI) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (e *EUUI) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return ErrInvalidLength
	}
	copy(e[:], data)
	return nil
}

// Scan implements the sql.Scanner interface. A 64 byte []byte is read as
// raw bytes, anything else as text.
func (e *EUUI) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*e = id
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == Size {
			copy(e[:], src)
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*e = id
		return nil
	default:
		return fmt.Errorf("euui: cannot scan type %T into EUUI", src)
	}
}

// Value implements the driver.Valuer interface
func (e EUUI) Value() (driver.Value, error) {
	return e.String(), nil
}

// Compare returns an integer comparing two EUUIs. Segment 0 is the most
// significant. The result is 0 if e==other, -1 if e < other, and +1 if
// e > other.
func (e EUUI) Compare(other EUUI) int {
	for i := 0; i < Size; i++ {
		if e[i] < other[i] {
			return -1
		}
		if e[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether e sorts before other.
func (e EUUI) Less(other EUUI) bool {
	return e.Compare(other) < 0
}

// Equal returns true if e and other represent the same EUUI
func (e EUUI) Equal(other EUUI) bool {
	return e == other
}
