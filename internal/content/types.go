package content

import "github.com/alexanderramin/fincerdas/internal/domain"

// Module is one self-contained content+quiz unit of the curriculum.
// The core never mutates this data.
type Module struct {
	ID          domain.ModuleID
	Title       string
	Desc        string
	Article     []string
	Videos      []Video
	Infographic []string
	Quiz        []Question
}

// Video references an external educational video.
type Video struct {
	Title     string
	YouTubeID string
}

// Question is a single-choice quiz question. Exactly one answer is correct.
type Question struct {
	Text    string
	Answers []Answer
	Explain string
}

// Answer is one selectable option of a question.
type Answer struct {
	Text    string
	Correct bool
}

// Badge describes an achievement in the catalog.
type Badge struct {
	ID    domain.BadgeID
	Label string
	When  string
}

// Scenario is one step of the fraud simulator: a suspicious situation and a
// fixed set of responses, one of which is the safe choice.
type Scenario struct {
	Prompt  string
	Choices []Choice
}

// Choice is one response option of a scenario with its immediate feedback.
type Choice struct {
	Text string
	Safe bool
	Tip  string
}

// ChecklistItem is one entry of the security habit checklist.
type ChecklistItem struct {
	Key   string
	Label string
}
