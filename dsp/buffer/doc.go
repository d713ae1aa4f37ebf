// Package buffer provides reusable multi-channel sample storage: a
// [Block] of per-channel slices and a [Pool] of blocks. Units exchange
// raw [][]float64 slices; these types only manage allocation and reuse
// around them.
package buffer
