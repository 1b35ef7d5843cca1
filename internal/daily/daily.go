// Package daily selects a deterministic target word per calendar day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker is a game.Rand that always picks the word for Date.
type Picker struct {
	Date time.Time
	Salt string
}

// Today returns a Picker for the current UTC date.
func Today(salt string) Picker {
	return Picker{Date: time.Now().UTC(), Salt: salt}
}

// Intn returns the date's index in [0, n).
func (p Picker) Intn(n int) int {
	return WordIndex(p.Date, p.Salt, n)
}
