// Package lines separates wall-candidate segments from drawing noise.
//
// [Classify] runs the stages in order, each one only dropping lines:
//
//  1. [Config.FilterNoise] - too short, touching the page margin, thick
//     decorative strokes, and every diagonal
//  2. [Config.RemoveHatching] - dense buckets of short parallel strokes used
//     as material fills
//  3. [Config.Deduplicate] - double-stroked or re-traced segments
//  4. [SortByLength] - longest first, so downstream top-N selection sees
//     the structural lines
//
// All thresholds live in [Config]; [DefaultConfig] holds the values tuned
// for architectural sheets. Every function is pure and returns a new slice.
package lines
