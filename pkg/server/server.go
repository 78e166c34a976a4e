package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const statsInterval = 100

// Server handles the IPC for spelling corrections
type Server struct {
	corrector    suggest.ICorrector
	loader       *dictionary.RuntimeLoader
	config       *config.Config
	configPath   string
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server answering from corrector.
// A nil cfg falls back to the defaults.
func NewServer(corrector suggest.ICorrector, cfg *config.Config, configPath string) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		corrector:  corrector,
		config:     cfg,
		configPath: configPath,
		logger:     logger.New("server"),
	}
}

// WithReloader enables the reload action.
func (s *Server) WithReloader(loader *dictionary.RuntimeLoader) *Server {
	s.loader = loader
	return s
}

// Start serves requests from stdin until EOF.
func (s *Server) Start() error {
	s.logger.Debug("Starting server", "config", config.GetActiveConfigPath(s.configPath))
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve decodes requests from r and writes responses to w.
// It returns nil once r is exhausted.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	dec := msgpack.NewDecoder(bufio.NewReader(r))

	if err := s.send(enc, bw, StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			// the stream cannot be resynchronized after a bad frame
			_ = s.send(enc, bw, SuggestError{Error: "invalid msgpack request", Code: 400})
			return fmt.Errorf("failed to decode request: %w", err)
		}

		if err := s.send(enc, bw, s.handleRequest(req)); err != nil {
			return err
		}
	}
}

func (s *Server) send(enc *msgpack.Encoder, bw *bufio.Writer, response any) error {
	if err := enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(req Request) any {
	s.requestCount++
	if s.requestCount%statsInterval == 0 {
		s.logger.Debug("Served requests", "count", s.requestCount, "stats", s.corrector.Stats())
	}

	switch req.Action {
	case "", ActionSuggest:
		return s.handleSuggest(req)
	case ActionDictInfo:
		return s.handleDictInfo(req)
	case ActionReload:
		return s.handleReload(req)
	case ActionCacheInfo:
		return s.handleCacheInfo(req)
	case ActionHealth:
		return StatusResponse{ID: req.ID, Status: "ok"}
	default:
		return SuggestError{ID: req.ID, Error: fmt.Sprintf("unknown action: %s", req.Action), Code: 400}
	}
}

func (s *Server) handleSuggest(req Request) any {
	cfg := s.config.Server
	if err := utils.ValidateInput(req.Word, cfg.MinWordLen, cfg.MaxWordLen); err != nil {
		s.logger.Debug("Rejected request", "id", req.ID, "err", err)
		return SuggestError{ID: req.ID, Error: err.Error(), Code: 400}
	}

	start := time.Now()
	result := s.corrector.Suggest(req.Word)
	elapsed := time.Since(start)

	s.logger.Debugf("Took [ %v ] for word '%s'", elapsed, req.Word)
	return SuggestResponse{
		ID:        req.ID,
		Input:     result.Input,
		Word:      result.Word,
		Outcome:   result.Outcome.String(),
		Distance:  result.Distance,
		Frequency: result.Frequency,
		TimeTaken: elapsed.Microseconds(),
	}
}

func (s *Server) handleDictInfo(req Request) DictionaryResponse {
	stats := s.corrector.Stats()
	resp := DictionaryResponse{
		ID:     req.ID,
		Status: "ok",
		Words:  stats["totalWords"],
		Nodes:  stats["totalNodes"],
	}
	if s.loader != nil {
		resp.Path = s.loader.Path()
		if last, at := s.loader.LastStats(); !at.IsZero() {
			resp.Tokens = last.Tokens
			resp.Skipped = last.Skipped
			resp.LoadedAt = at.Unix()
		}
	}
	return resp
}

func (s *Server) handleCacheInfo(req Request) CacheResponse {
	stats := s.corrector.Stats()
	return CacheResponse{
		ID:      req.ID,
		Enabled: stats["cache"] == 1,
		Entries: stats["cacheEntries"],
		Hits:    stats["cacheHits"],
		Misses:  stats["cacheMisses"],
		Queries: s.corrector.CachedQueries(req.Word),
	}
}

func (s *Server) handleReload(req Request) DictionaryResponse {
	if s.loader == nil {
		return DictionaryResponse{ID: req.ID, Status: "error", Error: "reload is not available"}
	}
	if _, err := s.loader.Reload(); err != nil {
		resp := s.handleDictInfo(req)
		resp.Status = "error"
		resp.Error = err.Error()
		return resp
	}
	return s.handleDictInfo(req)
}
