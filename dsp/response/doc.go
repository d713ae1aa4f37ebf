// Package response queries and verifies the frequency response of units.
//
// [Response] and [Latency] are analytic: they propagate descriptors through
// a unit's Route without rendering audio. [Measure] is empirical: it drives
// the unit with an impulse and transforms the captured output with an FFT.
// [Verify] compares the two over a grid of frequencies, which is how the
// Route implementations in this module are tested.
package response
