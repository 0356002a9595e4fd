package api

import (
	"math/rand"
	"strconv"
	"time"
)

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newRequestID builds a correlation ID of the form
// req_<epochMillis>_<9 random base36 chars>. Every attempt gets a fresh ID,
// including retries of the same logical request.
func newRequestID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = requestIDAlphabet[rand.Intn(len(requestIDAlphabet))]
	}
	return "req_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
