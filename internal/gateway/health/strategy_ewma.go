package health

// EWMAStrategy smooths the trend; suited to frequent calls.
type EWMAStrategy struct {
	Alpha float64 // e.g. 0.1
}

func (e *EWMAStrategy) Update(current float64, success bool) float64 {
	var value float64
	if success {
		value = 100
	}
	return e.Alpha*value + (1-e.Alpha)*current
}
