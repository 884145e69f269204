package euui

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeToHex encodes the EUUI to a 128 character hexadecimal string.
// It is equivalent to String.
func (e EUUI) EncodeToHex() string {
	return hex.EncodeToString(e[:])
}

// EncodeToBase64 encodes the EUUI to a base64 string (URL-safe, no padding)
func (e EUUI) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(e[:])
}

// EncodeToBase64Std encodes the EUUI to a standard base64 string
func (e EUUI) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(e[:])
}

// DecodeFromHex decodes a 128 character hexadecimal string to EUUI
func DecodeFromHex(s string) (EUUI, error) {
	var e EUUI
	if len(s) != StringLen {
		return Nil, ErrInvalidFormat
	}
	if _, err := hex.Decode(e[:], []byte(s)); err != nil {
		return Nil, ErrInvalidFormat
	}
	return e, nil
}

// DecodeFromBase64 decodes a base64 string to EUUI (URL-safe encoding)
func DecodeFromBase64(s string) (EUUI, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to EUUI
func DecodeFromBase64Std(s string) (EUUI, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (EUUI, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}

// FromBytes creates an EUUI from a 64 byte slice
func FromBytes(b []byte) (EUUI, error) {
	var e EUUI
	if len(b) != Size {
		return Nil, ErrInvalidLength
	}
	copy(e[:], b)
	return e, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) EUUI {
	e, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

// MarshalYAML implements the yaml.Marshaler interface. The EUUI is
// written as its compact hexadecimal form.
func (e EUUI) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. Both the compact
// and the two-line forms are accepted.
func (e *EUUI) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("euui: cannot unmarshal YAML node at line %d into EUUI: %w", value.Line, ErrInvalidFormat)
	}
	id, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("euui: YAML line %d: %w", value.Line, err)
	}
	*e = id
	return nil
}
