package training

// Maxima holds a user's one-rep maxima in kilograms. Zero means the benchmark
// was skipped.
type Maxima struct {
	BenchPress float64
	Squat      float64
	Deadlift   float64
}

// For returns the benchmark associated with lift.
func (m Maxima) For(lift Lift) float64 {
	switch lift {
	case BenchPress:
		return m.BenchPress
	case Squat:
		return m.Squat
	case Deadlift:
		return m.Deadlift
	}
	return 0
}

// With returns a copy of m with the benchmark for lift replaced.
func (m Maxima) With(lift Lift, weight float64) Maxima {
	switch lift {
	case BenchPress:
		m.BenchPress = weight
	case Squat:
		m.Squat = weight
	case Deadlift:
		m.Deadlift = weight
	}
	return m
}

// IsEmpty reports whether no benchmark has been provided.
func (m Maxima) IsEmpty() bool {
	return m.BenchPress == 0 && m.Squat == 0 && m.Deadlift == 0
}
