package models

import (
	"strings"
	"time"
)

// Personality names a response-styling mode.
type Personality string

const (
	PersonalityFriendly     Personality = "friendly"
	PersonalityProfessional Personality = "professional"
	PersonalityCreative     Personality = "creative"
	PersonalityFormal       Personality = "formal"
)

// PersonalityStyle is the emoji prefix and tone used for a personality.
type PersonalityStyle struct {
	Name        Personality
	EmojiPrefix string
	Tone        string
}

var personalityStyles = map[Personality]PersonalityStyle{
	PersonalityFriendly:     {Name: PersonalityFriendly, EmojiPrefix: "😊 ", Tone: "casual and friendly"},
	PersonalityProfessional: {Name: PersonalityProfessional, EmojiPrefix: "", Tone: "formal and professional"},
	PersonalityCreative:     {Name: PersonalityCreative, EmojiPrefix: "✨ ", Tone: "creative and playful"},
	PersonalityFormal:       {Name: PersonalityFormal, EmojiPrefix: "", Tone: "respectful and formal"},
}

// ParsePersonality maps a raw name onto a known personality. Unknown and
// empty names resolve to friendly.
func ParsePersonality(name string) Personality {
	p := Personality(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := personalityStyles[p]; ok {
		return p
	}
	return PersonalityFriendly
}

// Style returns the style for p, falling back to friendly.
func (p Personality) Style() PersonalityStyle {
	if style, ok := personalityStyles[p]; ok {
		return style
	}
	return personalityStyles[PersonalityFriendly]
}

// Source identifies the strategy that produced a reply.
type Source string

const (
	SourceModel     Source = "model"
	SourceCache     Source = "cache"
	SourceHeuristic Source = "heuristic"
	SourceKnowledge Source = "knowledge"
	SourceClosing   Source = "closing"
)

// Reply is the outcome of one resolution.
type Reply struct {
	Text        string
	Source      Source
	GeneratedAt time.Time
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message     string `json:"message"`
	Personality string `json:"personality,omitempty"`
	Format      string `json:"format,omitempty"`
}

// ChatResponse is the success body of POST /api/chat
type ChatResponse struct {
	Success      bool   `json:"success"`
	Response     string `json:"response"`
	ResponseHTML string `json:"response_html,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// ErrorResponse is returned for rejected or failed requests.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CacheEntry represents a cached model answer
type CacheEntry struct {
	Question    string    `json:"question"`
	Personality string    `json:"personality"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
}
