package index

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"runtime"

	"faq-chatbot/internal/embedding"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
)

const cacheCollection = "faq_embeddings"

// Cache persists question embeddings between runs so a restart does not
// re-encode an unchanged knowledge base. Purely a performance feature;
// lookups that miss fall through to the encoder.
type Cache struct {
	db         *chromem.DB
	collection *chromem.Collection
}

func OpenCache(dir string) (*Cache, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache: %w", err)
	}
	collection, err := db.GetOrCreateCollection(cacheCollection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache collection: %w", err)
	}
	return &Cache{db: db, collection: collection}, nil
}

func (c *Cache) lookup(ctx context.Context, question string) ([]float32, bool) {
	doc, err := c.collection.GetByID(ctx, cacheKey(question))
	if err != nil {
		return nil, false
	}
	return doc.Embedding, true
}

func (c *Cache) store(ctx context.Context, questions []string, vectors [][]float32) error {
	docs := make([]chromem.Document, 0, len(questions))
	for i, q := range questions {
		docs = append(docs, chromem.Document{
			ID:        cacheKey(q),
			Content:   q,
			Embedding: vectors[i],
		})
	}
	if len(docs) == 0 {
		return nil
	}
	return c.collection.AddDocuments(ctx, docs, runtime.NumCPU())
}

func cacheKey(question string) string {
	sum := sha256.Sum256([]byte(question))
	return hex.EncodeToString(sum[:])
}

// BuildEmbeddings produces the embedding table for the given questions,
// in order, consulting the cache first when one is provided.
func BuildEmbeddings(ctx context.Context, enc embedding.Encoder, questions []string, cache *Cache) ([][]float32, error) {
	if cache == nil {
		return embedding.EmbedAll(ctx, enc, questions)
	}

	vectors := make([][]float32, len(questions))
	var missQuestions []string
	var missIdx []int
	for i, q := range questions {
		if vec, ok := cache.lookup(ctx, q); ok {
			vectors[i] = vec
			continue
		}
		missQuestions = append(missQuestions, q)
		missIdx = append(missIdx, i)
	}

	if len(missQuestions) > 0 {
		log.Info().
			Int("cached", len(questions)-len(missQuestions)).
			Int("missing", len(missQuestions)).
			Msg("Embedding uncached questions")

		fresh, err := embedding.EmbedAll(ctx, enc, missQuestions)
		if err != nil {
			return nil, err
		}
		for j, vec := range fresh {
			vectors[missIdx[j]] = vec
		}
		if err := cache.store(ctx, missQuestions, fresh); err != nil {
			log.Warn().Err(err).Msg("Failed to persist embedding cache")
		}
	}

	return vectors, nil
}
