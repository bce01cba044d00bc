package health

// DecayStrategy shrinks the rate by Factor on every failure and closes the same share
// of the gap to 100 on every success.
type DecayStrategy struct {
	Factor float64 // e.g. 0.95
}

func (d *DecayStrategy) Update(current float64, success bool) float64 {
	if success {
		updated := 100 - (100-current)*d.Factor
		if updated > 100 {
			return 100
		}
		return updated
	}
	updated := current * d.Factor
	if updated < 0 {
		return 0
	}
	return updated
}
