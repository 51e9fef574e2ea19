package id

import "crypto/rand"

// New creates a unique 16-character alphanumeric ID. Question records get
// their ids from here; there is no central counter, uniqueness rests on the
// entropy of the source.
func New() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
