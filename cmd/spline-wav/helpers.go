package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-interpolation/internal/simdops"
)

// wavInput holds a decoded WAV file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	data     []int // interleaved
}

// readWAV opens, validates and fully decodes a PCM WAV file.
func readWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := decoder.Format()
	if format.NumChannels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}

	in := &wavInput{
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		data:     buf.Data,
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, in.channels, in.bitDepth, len(in.data)/in.channels)
	}

	return in, nil
}

// writeWAV encodes interleaved samples as a PCM WAV file.
func writeWAV(path string, samples []int, sampleRate, bitDepth, channels int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}

	// Close writes the final chunk sizes into the header.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalise WAV file: %w", err)
	}
	return nil
}

// pcmFormat maps stored integer samples to [-1, 1]:
// float = (stored - offset) / scale.
type pcmFormat struct {
	scale  float64
	offset int
	min    int
	max    int
}

// formatFor returns the sample mapping for the given bit depth. Unknown
// depths are treated as 16-bit.
func formatFor(bitDepth int) pcmFormat {
	switch bitDepth {
	case bitsPerSample8:
		return pcmFormat{scale: scaleUint8, offset: silenceUint8, min: 0, max: maxUint8}
	case bitsPerSample24:
		return signedFormat(maxInt24)
	case bitsPerSample32:
		return signedFormat(maxInt32)
	default:
		return signedFormat(maxInt16)
	}
}

func signedFormat(maxVal float64) pcmFormat {
	return pcmFormat{scale: maxVal, min: -int(maxVal), max: int(maxVal)}
}

// deinterleave converts interleaved int samples to per-channel slices in
// [-1, 1].
func deinterleave(data []int, channels, bitDepth int) [][]float64 {
	samplesPerChannel := len(data) / channels
	result := make([][]float64, channels)
	for ch := range channels {
		result[ch] = make([]float64, samplesPerChannel)
	}

	format := formatFor(bitDepth)
	invScale := 1.0 / format.scale
	for i := range samplesPerChannel {
		base := i * channels
		for ch := range channels {
			result[ch][i] = float64(data[base+ch]-format.offset) * invScale
		}
	}

	return result
}

// interleave converts per-channel slices to interleaved int samples,
// clamping to full scale.
func interleave(channels [][]float64, bitDepth int) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])
	result := make([]int, samplesPerChannel*numChannels)
	format := formatFor(bitDepth)

	for i := range samplesPerChannel {
		for ch := range numChannels {
			sample := math.Max(-fullScale, math.Min(fullScale, channels[ch][i]))
			v := int(math.Round(sample*format.scale)) + format.offset
			result[i*numChannels+ch] = max(format.min, min(format.max, v))
		}
	}

	return result
}

// normalizePeak scales every channel so the largest absolute sample is at
// most full scale and returns the gain applied.
func normalizePeak(channels [][]float64) float64 {
	peak := 0.0
	for _, ch := range channels {
		if len(ch) > 0 {
			peak = math.Max(peak, floats.Norm(ch, math.Inf(1)))
		}
	}
	if peak <= fullScale {
		return fullScale
	}

	gain := fullScale / peak
	for _, ch := range channels {
		simdops.Scale(ch, gain)
	}
	return gain
}
