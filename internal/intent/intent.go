// Package intent short-circuits the semantic pipeline for a small set
// of conversational intents using keyword substring checks.
package intent

import "strings"

type Intent int

const (
	None Intent = iota
	Greeting
	Thanks
	Goodbye
	Venting
)

func (i Intent) String() string {
	switch i {
	case Greeting:
		return "greeting"
	case Thanks:
		return "thanks"
	case Goodbye:
		return "goodbye"
	case Venting:
		return "venting"
	default:
		return "none"
	}
}

// Priority order matters: the first intent with a matching keyword wins.
// Matching is raw substring containment, not word-boundary; a keyword
// inside a longer word still triggers. That is the deployed behavior.
var rules = []struct {
	intent   Intent
	keywords []string
}{
	{Greeting, []string{"hai", "halo", "assalamualaikum", "pagi", "siang", "sore", "malam"}},
	{Thanks, []string{"makasih", "terimakasih", "thanks", "thank you"}},
	{Goodbye, []string{"bye", "dadah", "sampai jumpa", "quit", "exit"}},
	{Venting, []string{"cape", "capek", "lelah"}},
}

func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return None
}
