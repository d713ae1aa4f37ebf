package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-dspgraph/dsp/filter/fir"
)

func ExampleFilter_MagnitudeDB() {
	diff := fir.New([]float64{1, -1})

	var out []float64
	for _, x := range []float64{0, 1, 2, 4} {
		out = append(out, diff.ProcessSample(x))
	}
	fmt.Println(out)

	for _, freq := range []float64{11025, 22050} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, diff.MagnitudeDB(freq, 44100))
	}
	// Output:
	// [0 1 1 2]
	// 11025 Hz: +3.01 dB
	// 22050 Hz: +6.02 dB
}
