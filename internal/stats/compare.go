package stats

// Comparison names the winning algorithm per metric: higher randomness
// wins, lower mean execution time wins, lower average step count wins.
// On a tie the first argument wins; that is the tie-break policy, not
// an accident.
type Comparison struct {
	Randomness string `json:"randomness"`
	Speed      string `json:"speed"`
	StepCount  string `json:"step_count"`
}

func Compare(a, b Stats) Comparison {
	c := Comparison{Randomness: a.Algorithm, Speed: a.Algorithm, StepCount: a.Algorithm}

	if b.RandomnessScore > a.RandomnessScore {
		c.Randomness = b.Algorithm
	}
	if meanTime(b) < meanTime(a) {
		c.Speed = b.Algorithm
	}
	if b.AverageStepCount < a.AverageStepCount {
		c.StepCount = b.Algorithm
	}
	return c
}

func meanTime(s Stats) float64 {
	if len(s.ExecutionTimes) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range s.ExecutionTimes {
		sum += t
	}
	return sum / float64(len(s.ExecutionTimes))
}
