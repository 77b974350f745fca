package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Localizer manages internationalization
type Localizer struct {
	bundle          *i18n.Bundle
	defaultLanguage string
	localizers      map[string]*i18n.Localizer
	matcher         language.Matcher
	languages       []string
}

// NewLocalizer creates a localizer for cfg.Languages. The default language
// is always loaded and is preferred by Match when nothing else fits.
func NewLocalizer(cfg *config.I18nConfig) (*Localizer, error) {
	defaultTag, err := language.Parse(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", cfg.DefaultLanguage, err)
	}

	bundle := i18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	languages := []string{cfg.DefaultLanguage}
	for _, lang := range cfg.Languages {
		if lang != cfg.DefaultLanguage {
			languages = append(languages, lang)
		}
	}

	// Load language files
	tags := make([]language.Tag, 0, len(languages))
	localizers := make(map[string]*i18n.Localizer)
	for _, lang := range languages {
		if _, err := bundle.LoadMessageFileFS(locales, fmt.Sprintf("locales/%s.json", lang)); err != nil {
			return nil, fmt.Errorf("failed to load language file %s: %w", lang, err)
		}
		tags = append(tags, language.Make(lang))
		localizers[lang] = i18n.NewLocalizer(bundle, lang)
	}

	return &Localizer{
		bundle:          bundle,
		defaultLanguage: cfg.DefaultLanguage,
		localizers:      localizers,
		matcher:         language.NewMatcher(tags),
		languages:       languages,
	}, nil
}

// Get returns localized message
func (l *Localizer) Get(lang, messageID string, data map[string]interface{}) string {
	localizer, exists := l.localizers[lang]
	if !exists {
		localizer = l.localizers[l.defaultLanguage]
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID // Fallback to message ID
	}

	return msg
}

// Match picks the loaded language that best fits an Accept-Language header
// (or a bare tag such as a Telegram language code).
func (l *Localizer) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return l.defaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return l.defaultLanguage
	}

	_, index, confidence := l.matcher.Match(tags...)
	if confidence == language.No {
		return l.defaultLanguage
	}
	return l.languages[index]
}

// Suggestions returns the suggested starter questions in lang.
func (l *Localizer) Suggestions(lang string) []string {
	out := make([]string, 0, len(suggestionIDs))
	for _, id := range suggestionIDs {
		out = append(out, l.Get(lang, id, nil))
	}
	return out
}

// Message IDs
const (
	MsgWelcome          = "welcome"
	MsgHelp             = "help"
	MsgSuggestionsTitle = "suggestions_title"
	MsgUnknownCommand   = "unknown_command"
)

var suggestionIDs = []string{
	"suggestion_1",
	"suggestion_2",
	"suggestion_3",
	"suggestion_4",
	"suggestion_5",
	"suggestion_6",
}
