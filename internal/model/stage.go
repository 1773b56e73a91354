package model

// Summary is the output of the summarize stage.
type Summary struct {
	MainPoints  []string   `json:"main_points"`
	Evidence    []Evidence `json:"evidence"`
	Assumptions []string   `json:"assumptions"`
	OpenLoops   []string   `json:"open_loops"`
}

// Evidence groups supporting items under one main point.
type Evidence struct {
	Point string   `json:"point"`
	Items []string `json:"evidence_items"`
}

// Critique is the output of the critique stage.
type Critique struct {
	WeakSpots          []string `json:"weak_spots"`
	ContrarianAngles   []string `json:"contrarian_angles"`
	FutureImplications []string `json:"future_implications"`
	Hooks              []string `json:"hooks"`
}

// Question is one ranked audience question.
type Question struct {
	Rank           int    `json:"rank"`
	Question       string `json:"question"`
	LeverageReason string `json:"leverage_reason"`
}

// QuestionSet is the output of the rank stage.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Top returns the highest ranked question. Ties keep the first one seen.
func (qs QuestionSet) Top() (Question, bool) {
	if len(qs.Questions) == 0 {
		return Question{}, false
	}
	best := qs.Questions[0]
	for _, q := range qs.Questions[1:] {
		if q.Rank > best.Rank {
			best = q
		}
	}
	return best, true
}
