// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package digest fingerprints evidence buffers with several hash families so
// that copies can be matched across tools.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest is one hash of a buffer.
type Digest struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Hex       string `json:"hex" yaml:"hex"`
}

type algorithm struct {
	name string
	new  func() hash.Hash
}

var algorithms = []algorithm{
	{name: "sha256", new: sha256.New},
	{name: "sha3-256", new: sha3.New256},
	{name: "blake2b-256", new: func() hash.Hash {
		// Only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	}},
}

// Algorithms lists the supported algorithm names in output order.
func Algorithms() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return names
}

// Sum hashes buf with every supported algorithm.
func Sum(buf []byte) []Digest {
	out := make([]Digest, 0, len(algorithms))
	for _, a := range algorithms {
		h := a.new()
		h.Write(buf)
		out = append(out, Digest{Algorithm: a.name, Hex: hex.EncodeToString(h.Sum(nil))})
	}
	return out
}
