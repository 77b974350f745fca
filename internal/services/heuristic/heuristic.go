// Package heuristic classifies a message into a coarse intent and answers
// with curated Hinglish templates.
package heuristic

import (
	"fmt"
	"strings"

	"github.com/hinglish-techbot-go/internal/services/knowledge"
)

// Intent is the coarse category of a message.
type Intent int

const (
	IntentNone Intent = iota
	IntentLearning
	IntentDefinition
	IntentCareer
	IntentGreeting
)

func (i Intent) String() string {
	switch i {
	case IntentLearning:
		return "learning"
	case IntentDefinition:
		return "definition"
	case IntentCareer:
		return "career"
	case IntentGreeting:
		return "greeting"
	default:
		return "none"
	}
}

var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentLearning, []string{"kaise", "how", "sikhun", "learn", "seekhun", "samajhun"}},
	{IntentDefinition, []string{"kya", "what", "explain", "define"}},
	{IntentCareer, []string{"salary", "job", "career", "work", "company"}},
	{IntentGreeting, []string{"hello", "hi", "hii", "hey", "namaste", "salaam"}},
}

// subjectMask hides subject names that contain an intent keyword, so that
// "machine learning" is not read as a request to learn.
var subjectMask = strings.NewReplacer(
	"machine learning", "\x00",
	"deep learning", "\x00",
)

// Classify returns the first intent, in learning, definition, career,
// greeting order, whose keywords occur in the message.
func Classify(message string) Intent {
	lower := subjectMask.Replace(strings.ToLower(message))
	for _, ik := range intentKeywords {
		if knowledge.ContainsAny(lower, ik.keywords) {
			return ik.intent
		}
	}
	return IntentNone
}

// Answer is a heuristic reply together with the category that produced it.
type Answer struct {
	Intent Intent
	Topic  string
	Text   string
}

// Respond answers messages with a recognised intent. ok is false when no
// intent matches.
func Respond(message string) (Answer, bool) {
	lower := strings.ToLower(message)

	switch intent := Classify(message); intent {
	case IntentLearning:
		return learning(message, lower), true
	case IntentDefinition:
		return definition(message, lower), true
	case IntentCareer:
		return Answer{Intent: intent, Text: careerGuide}, true
	case IntentGreeting:
		return Answer{Intent: intent, Text: knowledge.Choose(greetings)}, true
	}
	return Answer{}, false
}

// Closing always produces the generic closing template.
func Closing(message string) string {
	return fmt.Sprintf(closingTemplate, message)
}

func learning(message, lower string) Answer {
	a := Answer{Intent: IntentLearning}
	switch {
	case strings.Contains(lower, "python"):
		a.Topic, a.Text = "python", knowledge.Choose(pythonRoadmaps)
	case strings.Contains(lower, "javascript"):
		a.Topic, a.Text = "javascript", javascriptRoadmap
	case strings.Contains(lower, "web"):
		a.Topic, a.Text = "web", webRoadmap
	default:
		a.Text = fmt.Sprintf(learningTemplate, message)
	}
	return a
}

func definition(message, lower string) Answer {
	a := Answer{Intent: IntentDefinition}
	switch {
	case strings.Contains(lower, "machine learning") || strings.Contains(lower, "ml"):
		a.Topic, a.Text = "machine learning", machineLearningExplainer
	case strings.Contains(lower, "api"):
		a.Topic, a.Text = "api", apiExplainer
	case strings.Contains(lower, "database") || strings.Contains(lower, "sql"):
		a.Topic, a.Text = "database", databaseExplainer
	default:
		a.Text = fmt.Sprintf(definitionTemplate, message)
	}
	return a
}
