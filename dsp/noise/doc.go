// Package noise fills a passband of a symmetric spectrum with random
// content.
//
// A Builder owns a single seeded random source. Every Build call consumes
// fresh draws, so successive spectra are statistically independent while
// the whole sequence stays reproducible from the seed.
package noise
