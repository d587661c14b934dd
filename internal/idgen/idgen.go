package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

// PrefixProtocol prefixes every report tracking code
const PrefixProtocol = "ECO-"

// NewProtocol builds the tracking code for a report filed at epoch millisecond ts.
// Two reports filed in the same millisecond get the same code.
func NewProtocol(ts int64) string {
	return PrefixProtocol + strconv.FormatInt(ts, 10)
}

// New generates a generic UUID without prefix (for request IDs)
func New() string {
	return uuid.New().String()
}
