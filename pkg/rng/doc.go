// Package rng reproduces the host game's 48-bit linear congruential random
// source bit-for-bit, including its signed-integer overflow semantics.
//
// # Overview
//
// Source implements the same algorithm as Java's java.util.Random /
// LegacyRandomSource: a 48-bit LCG with multiplier 0x5DEECE66D and
// increment 0xB. On top of the single primitive next(bits), it layers the
// derived operations the world generator actually calls: next(31)-based
// rejection-sampled nextInt(bound), sign-extended nextLong, and the two
// seed derivation formulas used by structure placement.
//
// # Why signed arithmetic matters
//
// Every derived operation that combines more than one next(32) draw, or
// that folds a world seed into coordinates, does so in signed 64-bit
// two's-complement arithmetic with wrapping overflow. An implementation
// that widens to unsigned or arbitrary precision anywhere in this chain
// will diverge from the host silently: most draws still look plausible,
// but the stream is wrong from that point on. nextLong is the single
// place this bites hardest, because its second 32-bit draw is sign
// extended before being added to the shifted first draw — treating it as
// unsigned produces a value that is subtly wrong only when that draw is
// negative.
//
// # Usage
//
//	r := rng.New()
//	r.SetLargeFeatureSeed(worldSeed, chunkX, chunkZ)
//	dir := r.NextIntBound(4)
//
// Source is not safe for concurrent use; callers that need independent
// streams (the locator's placement stream versus its classification
// stream, or one stream per worker in a parallel search) must construct
// one Source per stream. See the package-level Source type for the full
// operation set.
package rng
