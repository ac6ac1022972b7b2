package util

import (
	"math/rand"
)

const (
	accountNoLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	accountNoDigits  = "0123456789"
)

// GenerateAccountNo produces a 10-character account number made of five
// uppercase letters and five digits in shuffled order. Uniqueness is the
// caller's problem: collisions are possible and handled by retrying.
func GenerateAccountNo() string {
	chars := make([]byte, 0, 10)
	for i := 0; i < 5; i++ {
		chars = append(chars, accountNoLetters[rand.Intn(len(accountNoLetters))])
	}
	for i := 0; i < 5; i++ {
		chars = append(chars, accountNoDigits[rand.Intn(len(accountNoDigits))])
	}
	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars)
}
