package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const defaultTop = 10

type APIServer struct {
	h      *http.Server
	engine *Engine
}

type CheckResponse struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

func InitServer(addr string, e *Engine) *APIServer {
	s := &APIServer{engine: e}
	s.h = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	return s
}

func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/check", s.checkHandler)
	mux.HandleFunc("/words", s.wordsHandler)
	mux.HandleFunc("/stats", s.statsHandler)
	mux.HandleFunc("/top", s.topHandler)
	mux.HandleFunc("/dump", s.dumpHandler)
	return mux
}

func (s *APIServer) Start() error {
	log.Info("Starting server at " + s.h.Addr)
	err := s.h.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *APIServer) Stop(ctx context.Context) error {
	return s.h.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("Encoding response failed: %v", err)
	}
}

func wordParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		http.Error(w, "missing word", http.StatusBadRequest)
		return "", false
	}
	return word, true
}

func (s *APIServer) checkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	word, ok := wordParam(w, r)
	if !ok {
		return
	}
	log.Infof("Server processing check request for word=%s", word)
	writeJSON(w, CheckResponse{Word: word, Correct: s.engine.Check(word)})
}

func (s *APIServer) wordsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	word, ok := wordParam(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPost:
		log.Infof("Server processing add request for word=%s", word)
		s.engine.Write(word)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		log.Infof("Server processing delete request for word=%s", word)
		if !s.engine.Delete(word) {
			http.Error(w, "word not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (s *APIServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.engine.Stats())
}

func (s *APIServer) topHandler(w http.ResponseWriter, r *http.Request) {
	n := defaultTop
	if v := r.URL.Query().Get("n"); v != "" {
		var err error
		n, err = strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "n must be a positive integer", http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, s.engine.Top(n))
}

func (s *APIServer) dumpHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.engine.Dump(w); err != nil {
		log.Warnf("Writing dump failed: %v", err)
	}
}
