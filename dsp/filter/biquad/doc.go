// Package biquad provides the second-order IIR section that backs biquad
// units, together with its closed-form frequency response.
//
// A [Section] runs Direct Form II Transposed over [Coefficients]. The
// response methods evaluate the same difference equation analytically so
// that a unit's Route can report the exact transfer function of the filter
// it ticks. Coefficient design lives outside this package.
package biquad
