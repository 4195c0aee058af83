// Package compose assembles the final reply text: canned intent
// replies, empathy prefixes, matched or fallback answers, and the
// contextual follow-up read from the previous turn.
package compose

import (
	"math/rand"
	"strings"
	"time"

	"faq-chatbot/internal/intent"
	"faq-chatbot/internal/models"
)

// Composer selects canned strings through injectable random functions
// so tests can pin the choice.
type Composer struct {
	pick        func(n int) int
	roll        func() float64
	empathyProb float64
}

func New(empathyProb float64) *Composer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewWithRand(empathyProb, rng.Intn, rng.Float64)
}

func NewWithRand(empathyProb float64, pick func(n int) int, roll func() float64) *Composer {
	return &Composer{pick: pick, roll: roll, empathyProb: empathyProb}
}

// IntentReply returns the scripted reply and topic for a recognized
// intent, drawn uniformly from that intent's fixed pool.
func (c *Composer) IntentReply(it intent.Intent) (reply, topic string) {
	switch it {
	case intent.Greeting:
		return c.choose(models.GreetingReplies), models.GreetingTopic
	case intent.Thanks:
		return c.choose(models.ThanksReplies), models.ThanksTopic
	case intent.Goodbye:
		return c.choose(models.GoodbyeReplies), models.GoodbyeTopic
	case intent.Venting:
		return c.choose(models.VentingReplies), models.VentingTopic
	default:
		return "", ""
	}
}

// Compose builds the semantic-path reply: optional empathy prefix, the
// matched answer or a fallback string, and the contextual addendum.
// Empty segments are dropped and whitespace collapsed.
func (c *Composer) Compose(userText string, match models.MatchResult, history []models.ConversationTurn) string {
	base := match.Answer
	if match.IsFallback {
		base = c.choose(models.FallbackReplies)
	}

	var prefix string
	if c.empathyProb > 0 && c.roll() < c.empathyProb {
		prefix = c.choose(models.EmpathyPhrases)
	}

	addendum := contextAddendum(userText, history)

	return strings.Join(strings.Fields(prefix+" "+base+" "+addendum), " ")
}

func (c *Composer) choose(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[c.pick(len(pool))]
}

// contextAddendum inspects only the single most recent turn. First
// matching rule wins; no match yields an empty addendum.
func contextAddendum(userText string, history []models.ConversationTurn) string {
	var lastTopic string
	if len(history) > 0 {
		lastTopic = history[len(history)-1].Topic
	}
	lower := strings.ToLower(userText)

	switch {
	case strings.Contains(lastTopic, "Garansi") && strings.Contains(lower, "garansi"):
		return models.GaransiFollowUp
	case strings.Contains(lastTopic, "Service Lama") && strings.Contains(lower, "kapan"):
		return models.ServiceETAFollowUp
	case strings.Contains(lastTopic, "Curhat") || strings.Contains(lower, "cape"):
		return models.CurhatFollowUp
	default:
		return ""
	}
}
