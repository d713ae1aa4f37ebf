//go:build !fastmath

package core

import "math"

// Exp is e^x.
func Exp(x float64) float64 { return math.Exp(x) }

// Log is the natural logarithm. Non-positive input yields -Inf or NaN.
func Log(x float64) float64 { return math.Log(x) }

// Sqrt is the square root.
func Sqrt(x float64) float64 { return math.Sqrt(x) }
