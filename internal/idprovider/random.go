package idprovider

import (
	"context"
	"math/rand/v2"
)

var alphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_")

// Random returns random strings of a fixed length over a URL-safe alphabet.
type Random struct {
	length int
}

func NewRandom(length int) *Random {
	if length <= 0 {
		length = DefaultLength
	}
	return &Random{length: length}
}

func (p *Random) NewID(_ context.Context) (string, error) {
	return randomString(p.length), nil
}

// randomString returns a random string of the specified length.
func randomString(countOfCharacters int) string {
	countOfAlphabet := len(alphabet)
	s := make([]rune, countOfCharacters)
	for i := range countOfCharacters {
		s[i] = alphabet[rand.IntN(countOfAlphabet)]
	}

	return string(s)
}
