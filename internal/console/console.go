// Package console runs the bot as an interactive terminal session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"faq-chatbot/internal/bot"
	"faq-chatbot/internal/models"

	"github.com/rs/zerolog/log"
)

type Console struct {
	bot         *bot.Bot
	in          io.Reader
	out         io.Writer
	typingDelay time.Duration
}

func New(b *bot.Bot, typingDelay time.Duration) *Console {
	return &Console{bot: b, in: os.Stdin, out: os.Stdout, typingDelay: typingDelay}
}

// NewWithIO is used by tests to drive the loop with buffers.
func NewWithIO(b *bot.Bot, in io.Reader, out io.Writer, typingDelay time.Duration) *Console {
	return &Console{bot: b, in: in, out: out, typingDelay: typingDelay}
}

// Run reads lines until goodbye, EOF, or an unrecoverable error. Blank
// input is silently re-prompted.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "SpectrumByte CS siap membantu. Ketik 'bye' untuk keluar.")

	var history []models.ConversationTurn
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "Anda: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		reply, err := c.bot.Reply(ctx, text, history)
		if err != nil {
			if errors.Is(err, bot.ErrEmptyInput) {
				continue
			}
			log.Error().Err(err).Msg("Turn failed")
			return err
		}

		c.typeOut("Bot: " + reply.Text)
		history = append(history, models.ConversationTurn{
			UserText: text,
			BotText:  reply.Text,
			Topic:    reply.Topic,
		})

		if reply.EndSession {
			return nil
		}
	}
}

// typeOut prints character by character for a typing effect. A zero
// delay prints at once.
func (c *Console) typeOut(s string) {
	if c.typingDelay <= 0 {
		fmt.Fprintln(c.out, s)
		return
	}
	for _, r := range s {
		fmt.Fprintf(c.out, "%c", r)
		time.Sleep(c.typingDelay)
	}
	fmt.Fprintln(c.out)
}
