package heuristic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"Python kaise sikhun?", IntentLearning},
		{"HOW do I start", IntentLearning},
		{"Machine Learning kya hai?", IntentDefinition},
		{"explain closures", IntentDefinition},
		{"salary kitni milegi", IntentCareer},
		{"Namaste!", IntentGreeting},
		{"hey", IntentGreeting},
		{"mausam acha hai", IntentNone},
		{"Deep learning explain karo", IntentDefinition},
		{"machine learning kaise seekhun", IntentLearning},
		// learning wins over definition when both are present
		{"what is the best way to learn go", IntentLearning},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.message))
		})
	}
}

func TestRespond_LearningTopics(t *testing.T) {
	a, ok := Respond("PYTHON kaise sikhun?")
	require.True(t, ok)
	assert.Equal(t, IntentLearning, a.Intent)
	assert.Equal(t, "python", a.Topic)
	assert.Contains(t, pythonRoadmaps, a.Text)

	a, ok = Respond("javascript kaise seekhun")
	require.True(t, ok)
	assert.Equal(t, javascriptRoadmap, a.Text)

	a, ok = Respond("Web development kaise seekhun?")
	require.True(t, ok)
	assert.Equal(t, webRoadmap, a.Text)
}

func TestRespond_LearningGenericInterpolatesMessage(t *testing.T) {
	msg := "Rust kaise seekhun?"
	a, ok := Respond(msg)
	require.True(t, ok)
	assert.Empty(t, a.Topic)
	assert.True(t, strings.HasPrefix(a.Text, "'"+msg+"'"))
}

func TestRespond_Definitions(t *testing.T) {
	tests := []struct {
		message string
		topic   string
		text    string
	}{
		{"Machine Learning kya hai?", "machine learning", machineLearningExplainer},
		{"API kya hota hai", "api", apiExplainer},
		{"SQL kya hai", "database", databaseExplainer},
		// naive substring: "ml" inside "html"
		{"html kya hai", "machine learning", machineLearningExplainer},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			a, ok := Respond(tc.message)
			require.True(t, ok)
			assert.Equal(t, IntentDefinition, a.Intent)
			assert.Equal(t, tc.topic, a.Topic)
			assert.Equal(t, tc.text, a.Text)
		})
	}

	a, ok := Respond("Kubernetes kya hai")
	require.True(t, ok)
	assert.Contains(t, a.Text, "'Kubernetes kya hai'")
}

func TestRespond_CareerAndGreeting(t *testing.T) {
	a, ok := Respond("Career guidance do")
	require.True(t, ok)
	assert.Equal(t, careerGuide, a.Text)

	a, ok = Respond("Namaste!")
	require.True(t, ok)
	assert.Equal(t, IntentGreeting, a.Intent)
	assert.Contains(t, greetings, a.Text)
}

func TestRespond_NoIntent(t *testing.T) {
	_, ok := Respond("mausam acha hai")
	assert.False(t, ok)
}

func TestClosing(t *testing.T) {
	msg := "mausam acha hai"
	got := Closing(msg)
	assert.True(t, strings.HasPrefix(got, "'"+msg+"'"))
	assert.Equal(t, got, Closing(msg))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "learning", IntentLearning.String())
	assert.Equal(t, "none", IntentNone.String())
}
