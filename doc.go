// Package euui provides EUUIs (Extended Universally Unique Identifiers) in Go.
//
// An EUUI is a 512-bit (64 byte) identifier, four times the size of a UUID.
// It is stored big-endian and can be read as 4 128-bit segments, 8 64-bit
// words or 64 bytes:
//
//	segment   0                1                2                3
//	word      0       1        2       3        4       5        6       7
//	byte      0 ... 15         16 ... 31        32 ... 47        48 ... 63
//
// Basic Usage:
//
//	// Generate a random EUUI
//	id, err := euui.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)          // 128 hex characters
//	fmt.Println(id.Format()) // two lines of two 32 character segments
//
//	// Access individual parts
//	if seg, ok := id.Segment(0); ok {
//	    fmt.Println(seg.Hi, seg.Lo)
//	}
//
//	// Build from UUIDs
//	id = euui.Nil.WithFirst(uuid.New())
//
// Custom Generator:
//
//	// Inject a random source, e.g. a deterministic one in tests
//	gen := euui.NewGeneratorWithReader(src)
//	id, err := gen.NewWithFirst(uint128.From64(42))
//
// Thread Safety:
//
// An EUUI is a plain value: methods that "modify" it return a new EUUI and
// leave the receiver untouched. Generators, including the default one, can be
// used concurrently from multiple goroutines.
//
// Text Layouts:
//   - compact (String, MarshalText): 128 lowercase hex characters
//   - formatted (Format): "#1-#2\n#3-#4", 131 characters, LF line break
package euui
