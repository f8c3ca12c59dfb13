package dood

import (
	"math/rand"
	"strconv"
	"time"
)

const linkAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// BuildDirectLink synthesizes the final time-limited media URL from a
// fetched base URL and the extracted token. The 10-character suffix and
// the expiry timestamp are generated fresh per call, so two invocations
// with identical inputs never yield the same link.
//
// Plain concatenation is deliberate: token and suffix are alphanumeric,
// and the base URL's existing query structure must not be re-encoded.
func BuildDirectLink(videoBaseURL, token string) string {
	expiry := time.Now().Unix()
	return videoBaseURL + randomString(10) + "?token=" + token + "&expiry=" + strconv.FormatInt(expiry, 10)
}

// randomString draws n characters uniformly from the 62-character
// alphanumeric alphabet. Uniqueness-in-practice is all the service
// checks for; no cryptographic source is needed.
func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = linkAlphabet[rand.Intn(len(linkAlphabet))]
	}
	return string(b)
}
