package slotpass

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptValue prompts for the hidden slot value without echoing it. Only
// the hidden value is ever prompted for; the salt is public and must be
// supplied explicitly.
func PromptValue() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("hidden value not supplied and stdin is not a terminal: %w", ErrInvalidInput)
	}
	fmt.Fprint(os.Stderr, "Enter hidden value: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read hidden value: %v", err)
	}
	return string(raw), nil
}
