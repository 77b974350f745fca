package main

import (
	"fmt"
	"strings"

	"github.com/hinglish-techbot-go/internal/handlers"
	"github.com/hinglish-techbot-go/internal/models"
	"github.com/spf13/cobra"
)

var (
	askPersonality string
	askShowSource  bool
)

func init() {
	askCmd.Flags().StringVarP(&askPersonality, "personality", "p", "", "Reply personality: friendly, professional, creative or formal")
	askCmd.Flags().BoolVar(&askShowSource, "source", false, "Print which strategy produced the reply")
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask a single question and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.TrimSpace(strings.Join(args, " "))

		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := handlers.ValidateMessage(message, a.cfg.Server.MaxMessageLength); err != nil {
			return err
		}

		var p models.Personality
		if askPersonality != "" {
			p = models.ParsePersonality(askPersonality)
		}

		reply := a.responder.Resolve(cmd.Context(), message, p)
		a.metrics.RecordChatRequest("cli", "ok")

		out := cmd.OutOrStdout()
		if askShowSource {
			fmt.Fprintf(out, "[%s]\n", reply.Source)
		}
		fmt.Fprintln(out, reply.Text)
		return nil
	},
}
