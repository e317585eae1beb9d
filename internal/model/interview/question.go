package interview

import "fmt"

// Question carries one coaching turn submitted by the interviewer.
// None of the fields are validated; empty strings are forwarded as-is.
type Question struct {
	SessionID        string `json:"session_id"`
	CoachPersonality string `json:"coach_personality"`
	Level            string `json:"level"`
	FocusArea        string `json:"focus_area"`
	ScenarioType     string `json:"scenario_type"`
	Query            string `json:"query"`
}

// Answer is the model reply together with the session transcript after the turn was recorded.
type Answer struct {
	Response string   `json:"response"`
	History  []string `json:"history"`
}

// FormatEntry composes the transcript entry stored for a single turn.
func FormatEntry(query, response string) string {
	return fmt.Sprintf("Q: %s\nA: %s", query, response)
}
