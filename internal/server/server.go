// Package server exposes the bot over HTTP. Handlers never let an
// internal failure crash the process; every path reports JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"faq-chatbot/internal/bot"
	"faq-chatbot/internal/models"
	"faq-chatbot/internal/session"

	"github.com/rs/zerolog/log"
)

const emptyMessageError = "Pesan tidak boleh kosong"

type Server struct {
	bot      *bot.Bot
	sessions *session.Store
	addr     string
}

func New(b *bot.Bot, sessions *session.Store, addr string) *Server {
	return &Server{bot: b, sessions: sessions, addr: addr}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	return loggingMiddleware(mux)
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", s.addr).Msg("HTTP server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	Topic     string `json:"topic,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: emptyMessageError})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: emptyMessageError})
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	reply, err := s.bot.Reply(r.Context(), message, sess.History())
	if err != nil {
		if errors.Is(err, bot.ErrEmptyInput) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: emptyMessageError})
			return
		}
		log.Error().Err(err).Msg("Chat request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	sess.Append(models.ConversationTurn{
		UserText: message,
		BotText:  reply.Text,
		Topic:    reply.Topic,
	})

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:     reply.Text,
		Topic:     reply.Topic,
		SessionID: sess.ID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "OK",
		"model":  s.bot.Model(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Request")
	})
}
