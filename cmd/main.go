package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"faq-chatbot/internal/bot"
	"faq-chatbot/internal/compose"
	"faq-chatbot/internal/config"
	"faq-chatbot/internal/console"
	"faq-chatbot/internal/embedding"
	"faq-chatbot/internal/index"
	"faq-chatbot/internal/kb"
	"faq-chatbot/internal/models"
	"faq-chatbot/internal/server"
	"faq-chatbot/internal/session"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	serve := flag.Bool("serve", false, "Run the HTTP server instead of the interactive console")
	addr := flag.String("addr", "", "Listen address override for -serve")
	query := flag.String("query", "", "Answer a single question and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := buildBot(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error building bot")
	}

	switch {
	case *query != "":
		reply, err := b.Reply(ctx, *query, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("Error answering query")
		}
		fmt.Printf("%s\n", reply.Text)
	case *serve:
		listenAddr := cfg.Server.Addr
		if *addr != "" {
			listenAddr = *addr
		}
		srv := server.New(b, session.NewStore(), listenAddr)
		if err := srv.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	default:
		c := console.New(b, time.Duration(cfg.Console.TypingDelayMS)*time.Millisecond)
		if err := c.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Console session failed")
		}
	}
}

// buildBot loads the knowledge base, embeds every question once, and
// wires the immutable pipeline. A failure here is fatal: the process
// must not serve with a partially loaded knowledge base.
func buildBot(ctx context.Context, cfg *config.Config) (*bot.Bot, error) {
	entries, err := loadEntries(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	log.Info().Int("entries", len(entries)).Msg("Loaded knowledge base")

	enc, err := embedding.NewEncoder(&cfg.Embedding)
	if err != nil {
		return nil, err
	}

	var cache *index.Cache
	if cfg.Retrieval.CacheDir != "" {
		cache, err = index.OpenCache(cfg.Retrieval.CacheDir)
		if err != nil {
			log.Warn().Err(err).Msg("Embedding cache unavailable, continuing without it")
			cache = nil
		}
	}

	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = e.Question
	}

	embeddings, err := index.BuildEmbeddings(ctx, enc, questions, cache)
	if err != nil {
		return nil, fmt.Errorf("embed knowledge base: %w", err)
	}

	idx, err := index.New(len(entries), embeddings)
	if err != nil {
		return nil, err
	}

	composer := compose.New(cfg.Retrieval.EmpathyP())
	return bot.New(enc, idx, entries, composer, cfg.Retrieval.Threshold, cfg.Embedding.Model), nil
}

func loadEntries(ctx context.Context, cfg *config.Config) ([]models.KnowledgeEntry, error) {
	if cfg.Dataset.PostgresDSN != "" {
		db := kb.ConnectPostgres(cfg.Dataset.PostgresDSN, cfg.Dataset.PostgresDebug)
		defer db.Close()
		return kb.LoadPostgres(ctx, db, cfg.Dataset.PostgresTable)
	}
	return kb.Load(cfg.Dataset.Path)
}
