package utils

import (
	"strings"
	"time"

	hashids "github.com/speps/go-hashids/v2"
)

// NewReference produces a short opaque code with the given prefix, suitable
// for surfacing to applicants (application references, stub transaction ids).
// Codes are derived from the current time so two calls in the same
// nanosecond would collide, which is acceptable for display references.
func NewReference(prefix string) (string, error) {
	hd := hashids.NewData()
	hd.Salt = "creditpe-reference"
	hd.MinLength = 10

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}

	code, err := h.EncodeInt64([]int64{time.Now().UnixNano()})
	if err != nil {
		return "", err
	}

	return prefix + strings.ToUpper(code), nil
}
