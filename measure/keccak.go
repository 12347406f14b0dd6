package measure

import (
	"golang.org/x/crypto/sha3"
)

// Digest32 is a 32-byte Keccak256 digest, the measured type of Keccak256.
type Digest32 [32]byte

// Segment is the item type Keccak256 measures over: a fixed-size slice of
// raw bytes, the same "segment" unit bmt.Hasher hashes in the teacher's
// binary merkle tree (bmt/bmt.go).
type Segment []byte

// Keccak256 is a non-invertible monoid that measures a sequence of byte
// segments by folding them pairwise under Keccak256, the same combine
// step as bmt.go's doSum(hasher, nil, left, right). Unlike a true BMT it
// folds left-to-right rather than over a balanced binary tree, so it is a
// running content hash, not a merkle proof structure; it exists to let a
// chunkedseq.Sequence of byte segments expose a cached, incrementally
// updated content digest the way spec.md §4.2 permits for any monoid.
type Keccak256 struct{}

func (Keccak256) Identity() Digest32 { return Digest32{} }

func (Keccak256) Of(s Segment) Digest32 {
	h := sha3.NewLegacyKeccak256()
	h.Write(s)
	var d Digest32
	copy(d[:], h.Sum(nil))
	return d
}

func (Keccak256) Combine(a, b Digest32) Digest32 {
	if a == (Digest32{}) {
		return b
	}
	if b == (Digest32{}) {
		return a
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(a[:])
	h.Write(b[:])
	var d Digest32
	copy(d[:], h.Sum(nil))
	return d
}
