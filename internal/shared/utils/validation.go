package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Size limits (in bytes)
const (
	MaxJSONSize    = 1 * 1024 * 1024 // 1MB - maximum request body
	MaxCommandSize = 16 * 1024       // 16KB - single command line
)

// ValidateCommand checks a command line before it reaches the shell.
func ValidateCommand(command string) error {
	if len(command) > MaxCommandSize {
		return fmt.Errorf("command size %d bytes exceeds maximum %d bytes", len(command), MaxCommandSize)
	}
	if !utf8.ValidString(command) {
		return fmt.Errorf("command must be valid UTF-8")
	}
	if strings.ContainsRune(command, 0) {
		return fmt.Errorf("command must not contain NUL bytes")
	}
	return nil
}
