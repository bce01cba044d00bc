package health

// SlidingStrategy moves the rate by fixed steps.
type SlidingStrategy struct {
	StepUp   float64
	StepDown float64
}

func (s *SlidingStrategy) Update(current float64, success bool) float64 {
	if success {
		return min(current+s.StepUp, 100)
	}
	return max(current-s.StepDown, 0)
}
