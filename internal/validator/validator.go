package validator

import (
	"fmt"
	"regexp"
)

var isValidProjectID = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`).MatchString

func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

// ValidateProjectID checks that a Firebase project id can be placed in a URL path segment as-is.
// Legacy domain-scoped ids such as "example.com:my-project" are accepted.
func ValidateProjectID(value string) error {
	if err := ValidateString(value, 1, 100); err != nil {
		return err
	}

	if value == "." || value == ".." {
		return fmt.Errorf("must not be a relative path segment")
	}

	if !isValidProjectID(value) {
		return fmt.Errorf("must contain only letters, digits, '.', ':', '_' or '-'")
	}

	return nil
}
