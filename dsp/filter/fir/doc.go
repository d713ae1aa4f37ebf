// Package fir provides the direct-form FIR filter behind FIR units.
//
// A [Filter] convolves its input with a fixed tap set through a circular
// delay line and reports the matching closed-form response. It is meant
// for short tap sets; no partitioned convolution is done here.
package fir
