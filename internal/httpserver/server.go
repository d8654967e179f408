// internal/httpserver/server.go
//
// HTTP assist API for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, request logs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: GET /openers, POST /solve.
//
// Notes:
//   - The API is stateless: each /solve request carries every guess and its
//     feedback so far, and the server replays them from the full word list.
//     Nothing about a game is kept between requests.
//   - CORS is origin‑aware so a browser client on CLIENT_ORIGIN can call in.
//   - While no submitted turn has ruled out a word, /solve answers from the
//     precomputed opener instead of ranking the whole universe again.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/openers"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// maxCandidates caps the candidate list returned by /solve.
const maxCandidates = 20

// maxTurns bounds the replayed history of one /solve request.
const maxTurns = 32

// maxBody bounds the /solve request body in bytes.
const maxBody = 64 << 10

// Server bundles the router and the read-only solver inputs.
type Server struct {
	r        *chi.Mux
	universe []solver.Word
	openers  openers.Result
	opts     []solver.Option
}

// New constructs a Server, installs middleware, and registers routes.
// opening is the precomputed result for universe; origin is the browser
// origin allowed by CORS; opts are passed to solver.Rank.
func New(universe []solver.Word, opening openers.Result, origin string, opts ...solver.Option) *Server {
	s := &Server{r: chi.NewRouter(), universe: universe, openers: opening, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(origin))                    // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","GET /openers","POST /solve"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"universe": len(s.universe), "hash": s.openers.Key})
	})

	// --- solver ---
	s.r.Get("/openers", s.handleOpeners)
	s.r.Post("/solve", s.handleSolve)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status and latency for each request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("reqId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ SOLVER -------------------------------------

type openersRes struct {
	Words     []solver.Word `json:"words"`
	FromCache bool          `json:"fromCache"`
}

func (s *Server) handleOpeners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, openersRes{Words: s.openers.Words, FromCache: s.openers.FromCache})
}

// solveReq/Res payloads for POST /solve.
type turnReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"` // G/Y/X per letter, e.g. "XYGXX"
}
type solveReq struct {
	Turns []turnReq `json:"turns"`
}
type solveRes struct {
	State          string                 `json:"state"` // "playing" | "solved" | "no_candidates"
	Remaining      int                    `json:"remaining"`
	Candidates     []solver.Word          `json:"candidates"`
	Solution       solver.Word            `json:"solution,omitempty"`
	Recommendation *solver.Recommendation `json:"recommendation,omitempty"`
}

// handleSolve replays the submitted turns against the full word list and
// recommends the next guess while more than one candidate remains.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if len(req.Turns) > maxTurns {
		writeError(w, http.StatusBadRequest, "too_many_turns")
		return
	}

	pool := s.universe
	for i, t := range req.Turns {
		guess, err := solver.ParseWord(t.Guess)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("turn %d: %v", i+1, err))
			return
		}
		p, err := solver.ParsePattern(t.Pattern)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("turn %d: %v", i+1, err))
			return
		}
		pool = solver.Filter(pool, guess, p)
	}

	res := solveRes{Remaining: len(pool), Candidates: pool}
	if len(res.Candidates) > maxCandidates {
		res.Candidates = res.Candidates[:maxCandidates]
	}

	switch len(pool) {
	case 0:
		res.State = "no_candidates"
		res.Candidates = []solver.Word{}
	case 1:
		res.State = "solved"
		res.Solution = pool[0]
	default:
		res.State = "playing"
		// Filter only removes words, so an unchanged size means nothing was ruled out.
		if len(pool) == len(s.universe) && s.openers.Best.Word != "" {
			best := s.openers.Best
			res.Recommendation = &best
			break
		}
		rec, err := solver.Rank(s.universe, pool, s.opts...)
		if err != nil {
			log.Error().Err(err).Msg("rank")
			writeError(w, http.StatusInternalServerError, "rank_failed")
			return
		}
		res.Recommendation = &rec
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
