package handlers

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyInput rejects messages that are blank after trimming.
	ErrEmptyInput = errors.New("Empty message")
	// ErrMessageTooLong rejects messages over server.max_message_length.
	ErrMessageTooLong = errors.New("message too long")
)

// ValidateMessage checks an already trimmed message. maxLength counts
// characters; zero disables the limit.
func ValidateMessage(message string, maxLength int) error {
	if message == "" {
		return ErrEmptyInput
	}
	if n := utf8.RuneCountInString(message); maxLength > 0 && n > maxLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrMessageTooLong, n, maxLength)
	}
	return nil
}
