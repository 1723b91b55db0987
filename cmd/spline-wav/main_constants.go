package main

// Command-line defaults
const (
	defaultRateKHz  = 48.0
	defaultMethod   = "cubic"
	minRequiredArgs = 2
	kHzToHz         = 1000
)

// Sample format constants
const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// 8-bit PCM is unsigned with silence at 128.
	scaleUint8   = 128.0
	silenceUint8 = 128
	maxUint8     = 255
)

// WAV encoder settings
const (
	wavFormatPCM = 1 // WAVE_FORMAT_PCM
)

// Normalisation
const (
	fullScale = 1.0 // Peak level that needs no attenuation
)
