package mathutil

// Witch of Agnesi constants.
// y = 8a³ / (x² + 4a²) for a circle of radius a.
const (
	agnesiNumeratorFactor   = 8.0
	agnesiDenominatorFactor = 4.0
)
