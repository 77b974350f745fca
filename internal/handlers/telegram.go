package handlers

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/i18n"
	"github.com/hinglish-techbot-go/internal/middleware"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/hinglish-techbot-go/pkg/logger"
	"github.com/hinglish-techbot-go/pkg/markdown"
	"github.com/sirupsen/logrus"
)

// Sender delivers outgoing Telegram messages. *tgbotapi.BotAPI implements it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramHandler answers Telegram updates with the same responder the
// HTTP API uses.
type TelegramHandler struct {
	sender      Sender
	responder   Resolver
	localizer   *i18n.Localizer
	personality models.Personality
	maxLength   int
	metrics     *middleware.Metrics
	logger      *logrus.Logger
}

// NewTelegramHandler creates a new Telegram handler
func NewTelegramHandler(cfg *config.Config, sender Sender, responder Resolver, localizer *i18n.Localizer, metrics *middleware.Metrics, logger *logrus.Logger) *TelegramHandler {
	return &TelegramHandler{
		sender:      sender,
		responder:   responder,
		localizer:   localizer,
		personality: models.ParsePersonality(cfg.Telegram.Personality),
		maxLength:   cfg.Server.MaxMessageLength,
		metrics:     metrics,
		logger:      logger,
	}
}

// Run handles updates until ctx is cancelled or the channel closes, then
// waits for in-flight replies.
func (h *TelegramHandler) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func(update tgbotapi.Update) {
				defer wg.Done()
				if err := h.HandleUpdate(ctx, update); err != nil {
					h.logger.WithError(err).Error("Failed to handle update")
				}
			}(update)
		}
	}
}

// HandleUpdate processes one update. Non-message updates are ignored.
func (h *TelegramHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.Chat == nil {
		return nil
	}

	lang := h.localizer.Match("")
	var userID int64
	if message.From != nil {
		if message.From.IsBot {
			return nil
		}
		userID = message.From.ID
		lang = h.localizer.Match(message.From.LanguageCode)
	}
	log := logger.WithChat(h.logger, message.Chat.ID, userID)

	if message.IsCommand() {
		return h.handleCommand(message, lang)
	}

	text := strings.TrimSpace(message.Text)
	if err := ValidateMessage(text, h.maxLength); err != nil {
		h.metrics.RecordChatRequest("telegram", "rejected")
		log.WithError(err).Debug("Ignoring message")
		return nil
	}

	reply := h.responder.Resolve(ctx, text, h.personality)
	h.metrics.RecordChatRequest("telegram", "ok")
	log.WithField("source", reply.Source).Debug("Replying")

	return h.sendHTML(message.Chat.ID, message.MessageID, reply.Text)
}

func (h *TelegramHandler) handleCommand(message *tgbotapi.Message, lang string) error {
	command := message.Command()
	h.metrics.RecordCommandExecuted(command)

	var text string
	switch command {
	case "start":
		name := ""
		if message.From != nil {
			name = message.From.FirstName
		}
		text = h.localizer.Get(lang, i18n.MsgWelcome, map[string]interface{}{"Name": name})
	case "help":
		text = h.localizer.Get(lang, i18n.MsgHelp, nil)
	case "suggestions":
		var b strings.Builder
		b.WriteString(h.localizer.Get(lang, i18n.MsgSuggestionsTitle, nil))
		for _, s := range h.localizer.Suggestions(lang) {
			b.WriteString("\n• ")
			b.WriteString(s)
		}
		text = b.String()
	default:
		text = h.localizer.Get(lang, i18n.MsgUnknownCommand, nil)
	}

	_, err := h.sender.Send(tgbotapi.NewMessage(message.Chat.ID, text))
	return err
}

// sendHTML sends text rendered as Telegram HTML, retrying as plain text
// when Telegram rejects the markup.
func (h *TelegramHandler) sendHTML(chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, markdown.ToTelegramHTML(text))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = replyTo

	if _, err := h.sender.Send(msg); err != nil {
		h.logger.WithError(err).Warn("Failed to send HTML response, trying plain text")
		msg.ParseMode = ""
		msg.Text = text
		_, err = h.sender.Send(msg)
		return err
	}
	return nil
}
