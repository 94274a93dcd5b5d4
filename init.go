package slotpass

import (
	"fmt"
	"log"
	"math/big"
)

// Default returns the default Deriver instance.
func Default() *Deriver {
	return defaultDeriver
}

// Derive reconstructs the password for the given slot values using the
// default deriver.
func Derive(value, salt *big.Int) (*big.Int, error) {
	if defaultDeriver == nil {
		return nil, fmt.Errorf("slotpass not initialized")
	}
	return defaultDeriver.Derive(value, salt)
}

func MustDerive(value, salt *big.Int) *big.Int {
	if defaultDeriver == nil {
		log.Fatal("slotpass not initialized")
	}
	password, err := defaultDeriver.Derive(value, salt)
	if err != nil {
		log.Fatalf("failed to derive password: %v", err)
	}
	return password
}

// DeriveWord hashes an already encoded word using the default deriver.
func DeriveWord(w Word) (*big.Int, error) {
	if defaultDeriver == nil {
		return nil, fmt.Errorf("slotpass not initialized")
	}
	return defaultDeriver.DeriveWord(w)
}
