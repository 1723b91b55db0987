package interpolation

import (
	"fmt"
	"math"
	"sync"

	"github.com/tphakala/go-interpolation/internal/engine"
)

// Method selects the spline a Resampler draws through the samples.
type Method = engine.Method

// Spline methods for Resampler.
const (
	// MethodLinear joins consecutive samples with straight lines.
	MethodLinear = engine.MethodLinear

	// MethodCubic uses natural cubic splines over three-sample windows.
	MethodCubic = engine.MethodCubic
)

// Config holds resampling configuration.
type Config struct {
	// InputRate is the sample rate of the input in Hz.
	InputRate float64

	// OutputRate is the desired output sample rate in Hz.
	OutputRate float64

	// Channels is the number of channels ProcessMulti expects.
	Channels int

	// Method is the spline used between samples. Defaults to MethodLinear.
	Method Method

	// EnableParallel processes channels concurrently in ProcessMulti.
	EnableParallel bool
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !(c.InputRate > 0) || !(c.OutputRate > 0) || math.IsInf(c.InputRate, 0) || math.IsInf(c.OutputRate, 0) {
		return fmt.Errorf("%w: sample rates must be positive", ErrInvalidConfig)
	}

	if c.Channels < 1 {
		return fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}

	if c.Channels > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	if c.Method != MethodLinear && c.Method != MethodCubic {
		return fmt.Errorf("%w: unknown method %v", ErrInvalidConfig, c.Method)
	}

	return nil
}

// Resampler changes the sample rate of a uniformly sampled signal by drawing
// a spline through the samples and evaluating it on the output grid.
//
// Each call to Process is independent: nothing is buffered between calls, so
// a signal should be passed as a single block. A Resampler is safe for
// concurrent use.
type Resampler struct {
	config Config
	stage  *engine.SplineStage
}

// New creates a Resampler. The config is copied.
func New(config *Config) (*Resampler, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	stage, err := engine.NewSplineStage(config.OutputRate/config.InputRate, config.Method)
	if err != nil {
		return nil, err
	}

	return &Resampler{config: *config, stage: stage}, nil
}

// Process resamples a mono block.
func (r *Resampler) Process(input []float64) ([]float64, error) {
	return r.stage.Process(input)
}

// ProcessMulti resamples one block per channel. Channels run concurrently
// when Config.EnableParallel is set.
func (r *Resampler) ProcessMulti(input [][]float64) ([][]float64, error) {
	if len(input) != r.config.Channels {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidConfig, r.config.Channels, len(input))
	}

	output := make([][]float64, len(input))

	if !r.config.EnableParallel || len(input) <= 1 {
		for ch := range input {
			result, err := r.stage.Process(input[ch])
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			output[ch] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(input))

	for ch := range input {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()

			result, err := r.stage.Process(input[channel])
			if err != nil {
				errChan <- fmt.Errorf("channel %d: %w", channel, err)
				return
			}
			output[channel] = result
		}(ch)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// GetRatio returns the resampling ratio (output rate / input rate).
func (r *Resampler) GetRatio() float64 {
	return r.stage.GetRatio()
}

// GetMethod returns the spline method in use.
func (r *Resampler) GetMethod() Method {
	return r.stage.GetMethod()
}

// OutputLength returns the number of samples Process produces for an input
// of n samples.
func (r *Resampler) OutputLength(n int) int {
	return r.stage.OutputLength(n)
}
