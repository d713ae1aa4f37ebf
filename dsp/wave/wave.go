// Package wave holds multi-channel audio in memory and renders units
// into it.
package wave

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-dspgraph/dsp/buffer"
	"github.com/cwbudde/algo-dspgraph/dsp/core"
	"github.com/cwbudde/algo-dspgraph/dsp/node"
)

var (
	// ErrChannelMismatch is returned when a unit's channel counts do not
	// fit the wave.
	ErrChannelMismatch = errors.New("wave: channel count mismatch")
	// ErrInvalidArgument is returned for bad durations, sample rates or
	// buffers.
	ErrInvalidArgument = errors.New("wave: invalid argument")
)

var scratch = buffer.NewPool()

// Wave is a fixed sample rate, multi-channel sample buffer. All channels
// have the same length.
type Wave struct {
	sampleRate float64
	channels   [][]float64
}

// New returns an empty wave with the given channel count.
func New(channels int, sampleRate float64) *Wave {
	return &Wave{
		sampleRate: sampleRate,
		channels:   make([][]float64, max(0, channels)),
	}
}

// FromChannels returns a wave holding copies of the given channels.
func FromChannels(sampleRate float64, channels [][]float64) (*Wave, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}
	w := New(len(channels), sampleRate)
	for i, ch := range channels {
		if len(ch) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidArgument, i, len(ch), len(channels[0]))
		}
		w.channels[i] = append([]float64(nil), ch...)
	}
	return w, nil
}

func checkSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidArgument, sampleRate)
	}
	return nil
}

func frames(duration, sampleRate float64) (int, error) {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: duration %v", ErrInvalidArgument, duration)
	}
	return int(math.Round(duration * sampleRate)), nil
}

// Render runs the generator u for duration seconds and returns its output.
// u must have no inputs. It is switched to sampleRate and reset first.
func Render(sampleRate, duration float64, u node.Unit, opts ...core.ProcessorOption) (*Wave, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}
	if u.Inputs() != 0 {
		return nil, fmt.Errorf("%w: render needs a generator, unit has %d inputs", ErrChannelMismatch, u.Inputs())
	}
	length, err := frames(duration, sampleRate)
	if err != nil {
		return nil, err
	}

	w := New(u.Outputs(), sampleRate)
	for i := range w.channels {
		w.channels[i] = make([]float64, length)
	}

	run(u, sampleRate, length, core.ApplyProcessorOptions(opts...).BlockSize, nil, w.channels)
	return w, nil
}

// Filter runs the channels of w through u for duration seconds and
// returns the output. Input past the end of w reads zero. u must have one
// input per channel of w. It is switched to the wave's sample rate and
// reset first.
func (w *Wave) Filter(duration float64, u node.Unit, opts ...core.ProcessorOption) (*Wave, error) {
	if u.Inputs() != len(w.channels) {
		return nil, fmt.Errorf("%w: wave has %d channels, unit has %d inputs",
			ErrChannelMismatch, len(w.channels), u.Inputs())
	}
	length, err := frames(duration, w.sampleRate)
	if err != nil {
		return nil, err
	}

	out := New(u.Outputs(), w.sampleRate)
	for i := range out.channels {
		out.channels[i] = make([]float64, length)
	}

	run(u, w.sampleRate, length, core.ApplyProcessorOptions(opts...).BlockSize, w.channels, out.channels)
	return out, nil
}

// run processes length frames in blocks of at most blockSize.
func run(u node.Unit, sampleRate float64, length, blockSize int, input, output [][]float64) {
	u.SetSampleRate(sampleRate)
	u.Reset()

	in := scratch.Get(len(input), blockSize)
	defer scratch.Put(in)
	outViews := make([][]float64, len(output))

	for pos := 0; pos < length; pos += blockSize {
		size := min(blockSize, length-pos)

		for ch, samples := range input {
			dst := in.Channel(ch)[:size]
			n := 0
			if pos < len(samples) {
				n = copy(dst, samples[pos:])
			}
			clear(dst[n:])
		}
		for ch := range output {
			outViews[ch] = output[ch][pos : pos+size]
		}

		u.Process(size, in.Channels(), outViews)
	}
}

// Channels returns the channel count.
func (w *Wave) Channels() int { return len(w.channels) }

// Len returns the length in frames.
func (w *Wave) Len() int {
	if len(w.channels) == 0 {
		return 0
	}
	return len(w.channels[0])
}

// SampleRate returns the sample rate in Hz.
func (w *Wave) SampleRate() float64 { return w.sampleRate }

// Duration returns the length in seconds.
func (w *Wave) Duration() float64 {
	if w.sampleRate <= 0 {
		return 0
	}
	return float64(w.Len()) / w.sampleRate
}

// Channel returns the samples of channel i. The slice aliases the wave.
func (w *Wave) Channel(i int) []float64 { return w.channels[i] }

// Amplitude returns the peak absolute sample value over all channels.
func (w *Wave) Amplitude() float64 {
	peak := 0.0
	for _, ch := range w.channels {
		for _, x := range ch {
			peak = math.Max(peak, math.Abs(x))
		}
	}
	return peak
}

// FloatBuffer returns the wave as an interleaved go-audio buffer. The
// sample rate is rounded to an integer.
func (w *Wave) FloatBuffer() *audio.FloatBuffer {
	numChannels := len(w.channels)
	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  int(math.Round(w.sampleRate)),
		},
		Data: make([]float64, numChannels*w.Len()),
	}
	for i := range w.Len() {
		for j := range w.channels {
			buf.Data[i*numChannels+j] = w.channels[j][i]
		}
	}
	return buf
}

// FromFloatBuffer deinterleaves a go-audio buffer into a wave.
func FromFloatBuffer(buf *audio.FloatBuffer) (*Wave, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: buffer has no format", ErrInvalidArgument)
	}
	numChannels := buf.Format.NumChannels
	if numChannels <= 0 || len(buf.Data)%numChannels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidArgument, len(buf.Data), numChannels)
	}
	sampleRate := float64(buf.Format.SampleRate)
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}

	length := len(buf.Data) / numChannels
	w := New(numChannels, sampleRate)
	for j := range w.channels {
		w.channels[j] = make([]float64, length)
		for i := range length {
			w.channels[j][i] = buf.Data[i*numChannels+j]
		}
	}
	return w, nil
}
