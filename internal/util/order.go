package util

import (
	"github.com/lithammer/shortuuid/v4"
)

const (
	digits        = "0123456789"
	orderNoLength = 10
)

// GenerateOrderNo generates a random numeric order number of 10 digits,
// the longest the gateway accepts. The leading digits of a base-10 shortuuid
// are skewed, so the trailing ones are kept.
func GenerateOrderNo() string {
	id := shortuuid.NewWithAlphabet(digits)
	return id[len(id)-orderNoLength:]
}
