package node

// inlineCap is the number of prefix bytes a Prefix can hold without
// spilling to a heap allocation — chosen to match a pointer's width, same
// as the small-buffer optimisation a C or Rust ART would apply to avoid an
// allocation for the common case of short compressed prefixes.
const inlineCap = 8

// Prefix is the compressed byte string a branch node shares with every key
// under it. Short prefixes (up to inlineCap bytes) live directly inside the
// value; longer ones spill to a separately allocated slice. Callers never
// need to know which storage a given Prefix is using.
type Prefix struct {
	inline [inlineCap]byte
	length int
	spill  []byte
}

// NewPrefix stores key[:n] as a fresh Prefix, choosing inline or spilled
// storage based on length.
func NewPrefix(key []byte, n int) Prefix {
	return makePrefix(key[:n])
}

func makePrefix(b []byte) Prefix {
	p := Prefix{length: len(b)}

	if len(b) <= inlineCap {
		copy(p.inline[:], b)
	} else {
		p.spill = append([]byte(nil), b...)
	}

	return p
}

// Len returns the number of bytes in the prefix.
func (p Prefix) Len() int { return p.length }

// Empty reports whether the prefix holds no bytes.
func (p Prefix) Empty() bool { return p.length == 0 }

// At returns the byte at index i. The caller must ensure 0 <= i < Len().
func (p Prefix) At(i int) byte {
	if p.spill != nil {
		return p.spill[i]
	}

	return p.inline[i]
}

// Bytes returns a read-only view of the prefix.
func (p Prefix) Bytes() []byte {
	if p.spill != nil {
		return p.spill
	}

	return p.inline[:p.length]
}

// DropPrefix returns the suffix of p starting at byte k.
func (p Prefix) DropPrefix(k int) Prefix {
	if k >= p.length {
		return Prefix{}
	}

	return makePrefix(p.Bytes()[k:])
}

// Prepend returns a Prefix whose content is prefixBytes ++ [b] ++ p — used
// when an N4 fold absorbs its parent's prefix and branching byte into its
// sole remaining child.
func (p Prefix) Prepend(prefixBytes []byte, b byte) Prefix {
	out := make([]byte, 0, len(prefixBytes)+1+p.Len())
	out = append(out, prefixBytes...)
	out = append(out, b)
	out = append(out, p.Bytes()...)

	return makePrefix(out)
}

// CommonPrefixLen returns the number of leading bytes p and key[depth:]
// have in common, scanning no further than either side's length.
func (p Prefix) CommonPrefixLen(key []byte, depth int) int {
	n := p.Len()
	if rem := len(key) - depth; rem < n {
		n = rem
	}

	var i int
	for i < n && p.At(i) == key[depth+i] {
		i++
	}

	return i
}
