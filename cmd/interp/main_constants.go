package main

// Modes
const (
	modeFit    = "fit"
	modeLinear = "linear"
	modeCubic  = "cubic"
)

// Output formats
const (
	formatText = "text"
	formatYAML = "yaml"
)

// Point list syntax: "x,y;x,y;..."
const (
	pointSeparator      = ";"
	coordinateSeparator = ","
	coordinatesPerPoint = 2
)

// Plot geometry
const (
	plotWidthInches  = 6
	plotHeightInches = 4
	plotSamples      = 200 // Samples per plotted curve
)

// Output formatting
const (
	yamlIndent      = 2
	expressionVar   = "x"
	defaultSamples  = 0 // No sample table
	minTableSamples = 2
)
