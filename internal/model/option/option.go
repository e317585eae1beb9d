package option

// Kind groups the options shown in one picker of the training UI.
type Kind string

const (
	CoachPersonality Kind = "coach_personality"
	Level            Kind = "level"
	FocusArea        Kind = "focus_area"
	ScenarioType     Kind = "scenario_type"
)

// Option is a suggested value for one of the free-text interview context fields.
type Option struct {
	ID          string `json:"id"`
	Kind        Kind   `json:"kind"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Seed provides the values offered by the training frontend.
func Seed() []Option {
	return []Option{
		{ID: "mentor", Kind: CoachPersonality, Label: "Mentor", Description: "Patient guidance with worked examples."},
		{ID: "expert", Kind: CoachPersonality, Label: "Expert", Description: "Precise, technique-focused critique."},
		{ID: "supportive", Kind: CoachPersonality, Label: "Supportive", Description: "Encouraging tone, strengths first."},
		{ID: "challenging", Kind: CoachPersonality, Label: "Challenging", Description: "Pushes back on weak or leading questions."},

		{ID: "beginner", Kind: Level, Label: "Beginner"},
		{ID: "intermediate", Kind: Level, Label: "Intermediate"},
		{ID: "advanced", Kind: Level, Label: "Advanced"},
		{ID: "expert", Kind: Level, Label: "Expert"},

		{ID: "all", Kind: FocusArea, Label: "All Skills"},
		{ID: "questioning", Kind: FocusArea, Label: "Questioning"},
		{ID: "bias-detection", Kind: FocusArea, Label: "Bias Detection"},
		{ID: "time-management", Kind: FocusArea, Label: "Time Management"},
		{ID: "communication", Kind: FocusArea, Label: "Communication"},

		{ID: "difficult-candidate", Kind: ScenarioType, Label: "Difficult Candidate"},
		{ID: "technical-deep-dive", Kind: ScenarioType, Label: "Technical Deep-dive"},
		{ID: "bias-scenarios", Kind: ScenarioType, Label: "Bias Scenarios"},
		{ID: "time-pressure", Kind: ScenarioType, Label: "Time Pressure"},
	}
}
