package slotpass

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseSlotValue parses a storage-slot value written as a decimal or
// 0x-prefixed hexadecimal unsigned integer. Values of any magnitude are
// accepted; range checks happen at combination time.
func ParseSlotValue(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty slot value: %w", ErrInvalidInput)
	}
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("malformed slot value %q: %w", s, ErrInvalidInput)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("negative slot value %q: %w", s, ErrInvalidInput)
	}
	return n, nil
}
