package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []ProcessorOption
		want ProcessorConfig
	}{
		{"defaults", nil, ProcessorConfig{SampleRate: 44100, BlockSize: 64}},
		{"both set", []ProcessorOption{WithSampleRate(96000), WithBlockSize(1)}, ProcessorConfig{SampleRate: 96000, BlockSize: 1}},
		{"last wins", []ProcessorOption{WithBlockSize(8), WithBlockSize(16)}, ProcessorConfig{SampleRate: 44100, BlockSize: 16}},
		{"invalid ignored", []ProcessorOption{WithSampleRate(0), WithBlockSize(-1), nil}, DefaultProcessorConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyProcessorOptions(tc.opts...); got != tc.want {
				t.Fatalf("config = %#v, want %#v", got, tc.want)
			}
		})
	}
}
