package domain

type ReplayOutcome struct {
	Target  string
	Applied int
	Err     error
}

func (o ReplayOutcome) Succeeded() bool {
	return o.Err == nil
}

type ReplayReport struct {
	Records  int
	Outcomes []ReplayOutcome
}

func (r ReplayReport) Succeeded() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Succeeded() {
			count++
		}
	}
	return count
}

func (r ReplayReport) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}
