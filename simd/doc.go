package simd

// This package intentionally ships only the scalar fallback. A production
// ART typically special-cases amd64 with an SSE2 byte-compare-and-mask
// search over the 16-wide key array, falling back to this same scalar
// loop on every other architecture. Carrying unverified assembly in a
// tree that is never exercised by a build would be worse than not having
// it: wiring real SIMD back in is a matter of adding a find_amd64.go
// under a build constraint and leaving find.go as the portable
// fallback, not a redesign of the call sites in package node.
