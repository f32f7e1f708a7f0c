package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProjectID(t *testing.T) {
	valid := []string{"proj", "my-project-123", "example.com:my-project", "p_1"}
	for _, id := range valid {
		assert.NoError(t, ValidateProjectID(id), id)
	}

	invalid := []string{"", ".", "..", "a/b", "proj?x=1", "proj#frag", "pro j", strings.Repeat("a", 101)}
	for _, id := range invalid {
		assert.Error(t, ValidateProjectID(id), id)
	}
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, ValidateString("abc", 1, 3))
	assert.Error(t, ValidateString("", 1, 3))
	assert.Error(t, ValidateString("abcd", 1, 3))
}
