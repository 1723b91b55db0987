// Command spline-wav resamples WAV audio files by drawing linear or cubic
// splines through the samples.
//
// Usage:
//
//	spline-wav -rate 48 input.wav output.wav
//	spline-wav -rate 96 -method linear input.wav output.wav
//	spline-wav -rate 48 -normalize input.wav output.wav   # Attenuate cubic overshoot
//
// The whole file is read into memory and each channel is resampled as a
// single block. Splines do not filter, so downsampling aliases.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	interpolation "github.com/tphakala/go-interpolation"
)

var errUsage = errors.New("insufficient arguments")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 44.1, 48, 96)")
	method := flag.String("method", defaultMethod, "Spline method: linear, cubic")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing")
	normalize := flag.Bool("normalize", false, "Scale the output down if the spline overshoots full scale")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errUsage
	}

	m, err := parseMethod(*method)
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]
	targetRate := int(*rateKHz * kHzToHz)

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Target rate: %d Hz", targetRate)
		log.Printf("Method: %s", m)
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	start := time.Now()
	stats, err := resampleWAV(inputPath, outputPath, targetRate, m, *parallel, *normalize, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Resampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit, %s spline)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth, m)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	if stats.gain != fullScale {
		fmt.Printf("  Normalised by %.4f\n", stats.gain)
	}
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

type resampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
	gain          float64
}

func parseMethod(s string) (interpolation.Method, error) {
	switch strings.ToLower(s) {
	case "linear":
		return interpolation.MethodLinear, nil
	case "cubic":
		return interpolation.MethodCubic, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want linear or cubic)", s)
	}
}

func resampleWAV(inputPath, outputPath string, targetRate int, method interpolation.Method, parallel, normalize, verbose bool) (*resampleStats, error) {
	input, err := readWAV(inputPath, verbose)
	if err != nil {
		return nil, err
	}

	if input.rate == targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", targetRate)
	}

	r, err := interpolation.New(&interpolation.Config{
		InputRate:      float64(input.rate),
		OutputRate:     float64(targetRate),
		Channels:       input.channels,
		Method:         method,
		EnableParallel: parallel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	channelData := deinterleave(input.data, input.channels, input.bitDepth)
	resampled, err := r.ProcessMulti(channelData)
	if err != nil {
		return nil, fmt.Errorf("resampling failed: %w", err)
	}

	gain := fullScale
	if normalize {
		gain = normalizePeak(resampled)
		if verbose && gain != fullScale {
			log.Printf("Peak above full scale, applying gain %.4f", gain)
		}
	}

	samples := interleave(resampled, input.bitDepth)
	if err := writeWAV(outputPath, samples, targetRate, input.bitDepth, input.channels); err != nil {
		return nil, err
	}

	outputSamples := 0
	if len(resampled) > 0 {
		outputSamples = len(resampled[0])
	}

	return &resampleStats{
		inputRate:     input.rate,
		outputRate:    targetRate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		inputSamples:  len(input.data) / input.channels,
		outputSamples: outputSamples,
		gain:          gain,
	}, nil
}
