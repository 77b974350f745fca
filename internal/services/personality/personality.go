package personality

import (
	"strings"

	"github.com/hinglish-techbot-go/internal/models"
)

var (
	professionalStrip = runeSet("😊🤖💪🤔📚💡🚀👋")
	formalStrip       = runeSet("😊🤖💪🤔📚💡🚀👋✨")

	formalPhrases = strings.NewReplacer(
		"Acha,", "Well,",
		"tum", "you",
	)
)

// Format applies the text transforms of personality p to text. Friendly and
// unknown personalities leave the text unchanged apart from trimming.
func Format(text string, p models.Personality) string {
	switch p {
	case models.PersonalityProfessional:
		text = strip(text, professionalStrip)
	case models.PersonalityFormal:
		text = formalPhrases.Replace(strip(text, formalStrip))
	case models.PersonalityCreative:
		text = p.Style().EmojiPrefix + text
	}
	return strings.TrimSpace(text)
}

func strip(text string, set map[rune]bool) string {
	return strings.Map(func(r rune) rune {
		if set[r] {
			return -1
		}
		return r
	}, text)
}

func runeSet(chars string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range chars {
		set[r] = true
	}
	return set
}
