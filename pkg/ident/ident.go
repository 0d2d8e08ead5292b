// Package ident provides privacy-safe fingerprints and visitor identifiers.
// Raw IP addresses and user-agent strings are never persisted, only their
// one-way digests.
package ident

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// VisitorIDBytes is the entropy of a minted visitor identifier (128 bits).
const VisitorIDBytes = 16

// HashIP returns the hex SHA-256 digest of the IP combined with a
// server-side salt. Returns "" for a missing IP.
func HashIP(ip, salt string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(salt + ":" + ip))
	return hex.EncodeToString(sum[:])
}

// HashUserAgent returns the hex SHA-256 digest of the raw user-agent
// string. Unsalted: the UA is lower sensitivity and the digest is used for
// fingerprint analytics. Returns "" for a missing UA.
func HashUserAgent(ua string) string {
	if ua == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ua))
	return hex.EncodeToString(sum[:])
}

// NewVisitorID mints a 128-bit random identifier rendered as hex, safe to
// use as both a cookie value and a primary key.
func NewVisitorID() string {
	buf := make([]byte, VisitorIDBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process has no usable entropy
		// source; nothing sensible can continue.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
