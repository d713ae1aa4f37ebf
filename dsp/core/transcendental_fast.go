//go:build fastmath

package core

import (
	"github.com/meko-christian/algo-approx"
)

// Exp is e^x using a fast approximation.
func Exp(x float64) float64 { return approx.FastExp(x) }

// Log is the natural logarithm using a fast approximation.
func Log(x float64) float64 { return approx.FastLog(x) }

// Sqrt is the square root using a fast approximation.
func Sqrt(x float64) float64 { return approx.FastSqrt(x) }
