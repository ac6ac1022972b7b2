package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAccountNo(t *testing.T) {
	for i := 0; i < 200; i++ {
		no := GenerateAccountNo()
		assert.Len(t, no, 10)

		letters, digits := 0, 0
		for _, r := range no {
			switch {
			case strings.ContainsRune(accountNoLetters, r):
				letters++
			case strings.ContainsRune(accountNoDigits, r):
				digits++
			default:
				t.Fatalf("unexpected character %q in %q", r, no)
			}
		}
		assert.Equal(t, 5, letters, "account no %q", no)
		assert.Equal(t, 5, digits, "account no %q", no)
	}
}
