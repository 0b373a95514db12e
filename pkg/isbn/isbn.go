package isbn

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	bodyLen = 12
	fullLen = 13
)

// Validate reports whether candidate is a valid ISBN-13.
// Hyphens are ignored; anything but 13 digits fails.
func Validate(candidate string) bool {
	s := strings.ReplaceAll(candidate, "-", "")
	if len(s) != fullLen {
		return false
	}
	sum := 0
	for i := 0; i < bodyLen; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		d := int(s[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	if s[bodyLen] < '0' || s[bodyLen] > '9' {
		return false
	}
	return int(s[bodyLen]-'0') == checkDigit(sum)
}

// Generate computes the check digit for a 12-digit body and returns
// the hyphenated ISBN-13 (XXX-XX-XXXXXXX-X).
func Generate(body string) (string, error) {
	if len(body) != bodyLen {
		return "", errors.Errorf("isbn body must be %d digits, got %d", bodyLen, len(body))
	}
	sum := 0
	for i := 0; i < bodyLen; i++ {
		if body[i] < '0' || body[i] > '9' {
			return "", errors.Errorf("isbn body must be digits only: %q", body)
		}
		d := int(body[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	s := fmt.Sprintf("%s%d", body, checkDigit(sum))
	return fmt.Sprintf("%s-%s-%s-%s", s[:3], s[3:5], s[5:12], s[12:]), nil
}

func checkDigit(sum int) int {
	return (10 - sum%10) % 10
}
