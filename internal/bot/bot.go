// Package bot runs the core pipeline: classify, encode, match against
// the knowledge base, and compose the reply.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"faq-chatbot/internal/compose"
	"faq-chatbot/internal/embedding"
	"faq-chatbot/internal/index"
	"faq-chatbot/internal/intent"
	"faq-chatbot/internal/models"

	"github.com/rs/zerolog/log"
)

var ErrEmptyInput = errors.New("empty input")

// Bot is immutable after construction and safe to share across
// concurrently handled requests.
type Bot struct {
	enc       embedding.Encoder
	idx       *index.Index
	entries   []models.KnowledgeEntry
	composer  *compose.Composer
	threshold float32
	model     string
}

type Reply struct {
	Text       string
	Topic      string
	Intent     intent.Intent
	EndSession bool
	IsFallback bool
}

func New(enc embedding.Encoder, idx *index.Index, entries []models.KnowledgeEntry, composer *compose.Composer, threshold float32, model string) *Bot {
	return &Bot{
		enc:       enc,
		idx:       idx,
		entries:   entries,
		composer:  composer,
		threshold: threshold,
		model:     model,
	}
}

// Model reports the encoder model identifier, for the health endpoint.
func (b *Bot) Model() string {
	return b.model
}

// Reply answers a single turn. The caller owns the history and appends
// the new turn after this returns.
func (b *Bot) Reply(ctx context.Context, userText string, history []models.ConversationTurn) (Reply, error) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return Reply{}, ErrEmptyInput
	}

	if it := intent.Classify(text); it != intent.None {
		reply, topic := b.composer.IntentReply(it)
		return Reply{
			Text:       reply,
			Topic:      topic,
			Intent:     it,
			EndSession: it == intent.Goodbye,
		}, nil
	}

	vec, err := b.enc.Embed(ctx, text)
	if err != nil {
		return Reply{}, fmt.Errorf("encode query: %w", err)
	}

	i, score, err := b.idx.BestMatch(vec)
	if err != nil {
		return Reply{}, err
	}

	// score >= threshold is a confident match; exactly equal counts.
	match := models.MatchResult{Score: score}
	if score >= b.threshold {
		match.Answer = b.entries[i].Answer
		match.Topic = b.entries[i].Topic
	} else {
		match.IsFallback = true
		match.Topic = models.FallbackTopic
	}

	log.Debug().
		Int("match_index", i).
		Float32("score", score).
		Bool("fallback", match.IsFallback).
		Msg("Similarity lookup")

	return Reply{
		Text:       b.composer.Compose(text, match, history),
		Topic:      match.Topic,
		IsFallback: match.IsFallback,
	}, nil
}
