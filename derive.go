package slotpass

import (
	"encoding/hex"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/sha3"
)

const (
	// WordSize is the fixed width in bytes of an encoded combined value.
	WordSize = 32
	// DigestSize is the required digest width in bytes of the password hash.
	DigestSize = 32
)

var (
	// wordBound is 2^256, the first integer that no longer fits a Word.
	wordBound = new(big.Int).Lsh(big.NewInt(1), 8*WordSize)

	defaultDeriver *Deriver
)

func init() {
	defaultDeriver = New()
}

// Word is the 32-byte big-endian encoding of a combined slot value,
// zero-padded on the left.
type Word [WordSize]byte

// String renders the word as 0x-prefixed hex, the form storage slots are
// conventionally dumped in.
func (w Word) String() string {
	return "0x" + hex.EncodeToString(w[:])
}

// Deriver reconstructs a numeric password from a pair of storage-slot
// values. It holds no state beyond the digest constructor, so a single
// instance may be shared across goroutines.
type Deriver struct {
	newHash func() hash.Hash
}

// New creates a Deriver backed by legacy Keccak-256.
func New() *Deriver {
	return &Deriver{newHash: sha3.NewLegacyKeccak256}
}

// SetHash method to override the digest constructor.
func (d *Deriver) SetHash(newHash func() hash.Hash) {
	d.newHash = newHash
}

// Combine adds the hidden value and the salt with arbitrary precision and
// verifies that the sum fits the fixed 32-byte field. The sum is never
// truncated or wrapped.
func Combine(value, salt *big.Int) (*big.Int, error) {
	if err := checkSlotValue("value", value); err != nil {
		return nil, err
	}
	if err := checkSlotValue("salt", salt); err != nil {
		return nil, err
	}
	combined := new(big.Int).Add(value, salt)
	if combined.Cmp(wordBound) >= 0 {
		return nil, fmt.Errorf("combined value %s needs more than %d bytes: %w", combined, WordSize, ErrEncodingRange)
	}
	return combined, nil
}

// EncodeWord encodes a non-negative integer below 2^256 as a big-endian
// Word, most significant byte first.
func EncodeWord(v *big.Int) (Word, error) {
	var w Word
	if err := checkSlotValue("word value", v); err != nil {
		return w, err
	}
	if v.Cmp(wordBound) >= 0 {
		return w, fmt.Errorf("value %s needs more than %d bytes: %w", v, WordSize, ErrEncodingRange)
	}
	v.FillBytes(w[:])
	return w, nil
}

// Derive runs the full pipeline: combine the slot values, encode the sum as
// a 32-byte big-endian word, hash the word, and reinterpret the digest as a
// big-endian unsigned integer.
func (d *Deriver) Derive(value, salt *big.Int) (*big.Int, error) {
	combined, err := Combine(value, salt)
	if err != nil {
		return nil, err
	}
	word, err := EncodeWord(combined)
	if err != nil {
		return nil, err
	}
	return d.DeriveWord(word)
}

// DeriveWord hashes an already encoded word and reinterprets the digest as
// a big-endian unsigned integer.
func (d *Deriver) DeriveWord(w Word) (*big.Int, error) {
	digest, err := d.digest(w)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(digest), nil
}

func (d *Deriver) digest(w Word) ([]byte, error) {
	if d.newHash == nil {
		return nil, fmt.Errorf("no digest constructor: %w", ErrHashConfiguration)
	}
	h := d.newHash()
	if h == nil {
		return nil, fmt.Errorf("digest constructor returned nil: %w", ErrHashConfiguration)
	}
	if h.Size() != DigestSize {
		return nil, fmt.Errorf("digest width %d, want %d: %w", h.Size(), DigestSize, ErrHashConfiguration)
	}
	h.Write(w[:])
	sum := h.Sum(nil)
	if len(sum) != DigestSize {
		return nil, fmt.Errorf("digest length %d, want %d: %w", len(sum), DigestSize, ErrHashConfiguration)
	}
	return sum, nil
}

func checkSlotValue(name string, v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%s is nil: %w", name, ErrInvalidInput)
	}
	if v.Sign() < 0 {
		return fmt.Errorf("%s %s is negative: %w", name, v, ErrInvalidInput)
	}
	return nil
}
