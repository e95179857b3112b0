package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxUsernameLen   = 50
	MaxEmployeeIDLen = 50

	MaxClientNameLen = 50
	MaxAddressLen    = 200
)

// IsUsernameValid: não vazio, sem espaços, até 50 caracteres
func IsUsernameValid(username string) bool {
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLen {
		return false
	}
	return strings.IndexFunc(username, unicode.IsSpace) < 0
}

func FitsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}
