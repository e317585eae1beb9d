package ai

// Slots of CoachingPrompt.
const (
	SlotCoachPersonality = "coach_personality"
	SlotLevel            = "level"
	SlotFocusArea        = "focus_area"
	SlotScenarioType     = "scenario_type"
	SlotPreviousResponse = "previous_response"
	SlotQuery            = "query"
)

// SlotLog is the single slot of ReportPrompt.
const SlotLog = "log"

// CoachingPrompt grades a trainee interviewer's next question in the context of the session so far.
const CoachingPrompt = `You are an expert interviewer tasked with grading the questions given by our new interviewer. Respond in plain text.

Coach Personality: {coach_personality}
Difficulty Level: {level}
Focus Area: {focus_area}
Scenario Type: {scenario_type}

Previous Conversation:
{previous_response}

New Question: {query}
`

// ReportPrompt summarizes a whole session transcript into an evaluation.
const ReportPrompt = `You are a professional interviewer evaluator.
Based on the following conversation log between an interviewer and a candidate, write a comprehensive summary evaluating the quality of the interview questions asked.
Assess the depth, clarity, relevance, and overall flow of the interview. Mention areas of strength and areas of improvement.

Conversation Log:
{log}

Output a formal PDF-style report summarizing your assessment, report should be in plain text no highlights or any other format is appreciated.`
