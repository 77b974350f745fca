package responder

import (
	"fmt"

	"github.com/hinglish-techbot-go/internal/services/knowledge"
)

var acknowledgements = []func(message string) string{
	func(m string) string {
		return fmt.Sprintf("Acha, tum pucha: '%s' - Ye bahut interesting sawal hai! 🤔 Kya tum aur details de sakte ho?", m)
	},
	func(string) string {
		return "Ye topic ke baare mein main poora jankari rakhta hoon! 📚 Agar aap Python, JavaScript, Machine Learning ya Web Development ke baare mein poochte ho toh main aur help kar sakta hoon."
	},
	func(string) string {
		return "Mujhe lagta hai ye ek bahut accha sawal hai! 💡 Kya aap kisi specific tech topic ke baare mein seekhna chahte ho?"
	},
	func(string) string {
		return "Interesting! Agar koi tech-related sawal hai toh main bilkul madad kar sakta hoon! 🚀"
	},
	func(m string) string {
		return fmt.Sprintf("'%s' - Ye ek creative question hai! Tech ke field mein bohot scope hai. Specific topics mein mujhe help lene ke liye pooch! 💻", m)
	},
}

// Acknowledge returns one of the generic acknowledgements, chosen uniformly.
func Acknowledge(message string) string {
	return acknowledgements[knowledge.ChooseIndex(len(acknowledgements))](message)
}
