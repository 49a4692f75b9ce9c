// Package runid generates identifiers for simulation runs: a millisecond
// timestamp followed by random bits, written in lowercase Crockford base32
// so that ids sort by creation time.
package runid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

// Length is the number of characters in an id.
const Length = 26

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator creates ids from a clock and a byte source.
type Generator struct {
	clock  quartz.Clock
	random io.Reader
}

// NewGenerator creates a generator. A nil random source uses crypto/rand.
func NewGenerator(clock quartz.Clock, random io.Reader) *Generator {
	if random == nil {
		random = rand.Reader
	}
	return &Generator{clock: clock, random: random}
}

// New returns an id stamped with the clock's current time.
func New(clock quartz.Clock) string {
	return NewGenerator(clock, nil).Generate()
}

// Generate returns a fresh id. The layout follows UUIDv7: 48 bits of
// milliseconds, version and variant bits, and 74 random bits.
func (g *Generator) Generate() string {
	var id [16]byte

	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint64(id[:8], ms<<16)

	if _, err := io.ReadFull(g.random, id[6:]); err != nil {
		panic("runid: reading random bytes: " + err.Error())
	}
	id[6] = id[6]&0x0f | 0x70
	id[8] = id[8]&0x3f | 0x80

	return encode(binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:]))
}

// encode writes the 128-bit value hi:lo as 26 base32 digits. The value is
// treated as 130 bits with two leading zeros, so the first digit is at
// most '7'.
func encode(hi, lo uint64) string {
	var out [Length]byte
	for i := range out {
		shift := uint(5 * (Length - 1 - i))
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift+5 <= 64:
			v = lo >> shift
		default:
			v = lo>>shift | hi<<(64-shift)
		}
		out[i] = alphabet[v&0x1f]
	}
	return string(out[:])
}

// Validate checks that id has the shape of a generated id.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("run id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run id first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
