package buffer

// Block is a set of equal-length per-channel sample slices: many frames
// processed together. Combinators keep one as scratch between Process
// calls so steady-state processing does not allocate.
type Block struct {
	channels [][]float64
	length   int
}

// NewBlock returns a zeroed block.
func NewBlock(channels, length int) *Block {
	b := &Block{}
	b.Resize(channels, length)
	return b
}

// Resize sets the channel count and per-channel length, reusing storage.
// Newly exposed samples are zero; retained samples keep their values.
func (b *Block) Resize(channels, length int) {
	channels = max(0, channels)
	length = max(0, length)

	if cap(b.channels) < channels {
		grown := make([][]float64, channels)
		copy(grown, b.channels[:cap(b.channels)])
		b.channels = grown
	}
	old := len(b.channels)
	b.channels = b.channels[:channels]

	for i, ch := range b.channels {
		if i >= old {
			ch = ch[:0]
		}
		b.channels[i] = resize(ch, length)
	}
	b.length = length
}

// resize returns s with length n. Samples past the old length are zero.
func resize(s []float64, n int) []float64 {
	old := len(s)
	if n > cap(s) {
		grown := make([]float64, n)
		copy(grown, s)
		return grown
	}
	s = s[:n]
	if n > old {
		clear(s[old:])
	}
	return s
}

// Channels returns the per-channel slices. The outer slice is owned by
// the block and is only valid until the next Resize.
func (b *Block) Channels() [][]float64 {
	return b.channels
}

// Channel returns the samples of channel i.
func (b *Block) Channel(i int) []float64 {
	return b.channels[i]
}

// NumChannels returns the channel count.
func (b *Block) NumChannels() int {
	return len(b.channels)
}

// Len returns the per-channel length.
func (b *Block) Len() int {
	return b.length
}

// Zero clears every channel.
func (b *Block) Zero() {
	for _, ch := range b.channels {
		clear(ch)
	}
}
