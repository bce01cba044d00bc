package health

import "strings"

// SuccessRateStrategy folds one call outcome into a running success rate (0..100).
type SuccessRateStrategy interface {
	Update(current float64, success bool) float64
}

// NewStrategy picks a strategy by name: sliding, decay or ewma (default).
func NewStrategy(name string) SuccessRateStrategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sliding":
		return &SlidingStrategy{StepUp: 5, StepDown: 20}
	case "decay":
		return &DecayStrategy{Factor: 0.95}
	default:
		return &EWMAStrategy{Alpha: 0.1}
	}
}
