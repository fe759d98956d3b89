package model

import "time"

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Category is the finance topic a user message classifies into.
type Category string

const (
	CategoryGreeting      Category = "greeting"
	CategoryBudgeting     Category = "budgeting"
	CategoryInvesting     Category = "investing"
	CategoryDebt          Category = "debt"
	CategorySavings       Category = "savings"
	CategoryCredit        Category = "credit"
	CategoryClarification Category = "clarification"
)

// Message is a single turn in the conversation. Messages are immutable after
// creation; the session appends them in chronological order and never
// reorders the transcript.
type Message struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Sender     Sender    `json:"sender"`
	Timestamp  time.Time `json:"timestamp"`
	Category   Category  `json:"category,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	Actions    []string  `json:"actions,omitempty"`
}
