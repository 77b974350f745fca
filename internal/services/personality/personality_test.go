package personality

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/hinglish-techbot-go/internal/models"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name        string
		personality models.Personality
		in          string
		want        string
	}{
		{"friendly unchanged", models.PersonalityFriendly, "Hey! 🤖", "Hey! 🤖"},
		{"unknown unchanged", models.Personality("pirate"), "Hey! 🤖", "Hey! 🤖"},
		{"professional strips emoji", models.PersonalityProfessional, "Ready 💪 to help 🚀", "Ready  to help"},
		{"professional keeps sparkles", models.PersonalityProfessional, "✨ magic", "✨ magic"},
		{"formal strips and rewrites", models.PersonalityFormal, "Acha, tum pucha ✨🤔", "Well, you pucha"},
		{"creative prefixes", models.PersonalityCreative, "Hello", "✨ Hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in, tc.personality))
		})
	}
}

func TestFormat_FormalReplacesInPlace(t *testing.T) {
	got := Format("Acha, tum pucha: 'x' 🤔", models.PersonalityFormal)
	assert.True(t, strings.HasPrefix(got, "Well,"))
}

func TestProperty_FormalRemovesStripSet(t *testing.T) {
	properties := gopter.NewProperties(nil)

	var pieces []gopter.Gen
	for _, s := range []string{"😊", "🤖", "💪", "🤔", "📚", "💡", "🚀", "👋", "✨", "Acha,", " "} {
		pieces = append(pieces, gen.Const(s))
	}
	emoji := gen.OneGenOf(pieces...)

	properties.Property("formal output has no emoji from the strip set", prop.ForAll(
		func(parts []string, text string) bool {
			in := text + strings.Join(parts, text)
			out := Format(in, models.PersonalityFormal)
			for r := range formalStrip {
				if strings.ContainsRune(out, r) {
					return false
				}
			}
			return !strings.Contains(out, "Acha,")
		},
		gen.SliceOf(emoji),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
