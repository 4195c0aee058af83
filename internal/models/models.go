package models

// KnowledgeEntry is one row of the FAQ table. Entries are identified by
// their position in the loaded slice; that index correlates them with
// their embedding in the similarity index.
type KnowledgeEntry struct {
	Question string
	Answer   string
	Topic    string
}

// ConversationTurn is one exchange in a session's history. The composer
// only ever reads the most recent turn.
type ConversationTurn struct {
	UserText string
	BotText  string
	Topic    string
}

// MatchResult is the outcome of a similarity lookup against the
// knowledge base, after the threshold decision has been applied.
type MatchResult struct {
	Answer     string
	Topic      string
	Score      float32
	IsFallback bool
}
