// Package httpserver exposes the slashing service over a JSON http API.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/common/util"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/sql"
	"github.com/spacemeshos/go-slashindicator/staking"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

type Opt func(*Server)

// WithLogger configures logger for the server.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTimeout configures read and write timeouts of the server.
func WithTimeout(timeout time.Duration) Opt {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// WithCorsOrigins configures origins allowed to make cross-origin requests.
func WithCorsOrigins(origins []string) Opt {
	return func(s *Server) {
		s.origins = origins
	}
}

// Server serves the slashing API.
type Server struct {
	logger  *zap.Logger
	address string
	timeout time.Duration
	origins []string

	slasher    slasher
	history    history
	validators validatorSet
	pool       rewardPool

	handler  http.Handler
	listener net.Listener
}

// New creates a server listening on address once Run is called.
func New(
	address string,
	slasher slasher,
	history history,
	validators validatorSet,
	pool rewardPool,
	opts ...Opt,
) *Server {
	s := &Server{
		logger:     zap.NewNop(),
		address:    address,
		timeout:    15 * time.Second,
		origins:    []string{"*"},
		slasher:    slasher,
		history:    history,
		validators: validators,
		pool:       pool,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	// routes are registered on the root router, a subrouter answers 404 on method mismatch
	router := mux.NewRouter()
	router.HandleFunc("/v1/slash/report", s.report).Methods(http.MethodPost)
	router.HandleFunc("/v1/slash/compact", s.compact).Methods(http.MethodPost)
	router.HandleFunc("/v1/slash/evidence", s.evidence).Methods(http.MethodPost)
	router.HandleFunc("/v1/slash/indicators", s.indicators).Methods(http.MethodGet)
	router.HandleFunc("/v1/slash/indicators/{id}", s.indicator).Methods(http.MethodGet)
	router.HandleFunc("/v1/slash/thresholds", s.thresholds).Methods(http.MethodGet)
	router.HandleFunc("/v1/slash/params", s.params).Methods(http.MethodGet)
	router.HandleFunc("/v1/slash/params/{key}", s.updateParam).Methods(http.MethodPut)
	router.HandleFunc("/v1/slash/history/{id}", s.slashHistory).Methods(http.MethodGet)
	router.HandleFunc("/v1/slash/recent", s.recent).Methods(http.MethodGet)
	router.HandleFunc("/v1/staking/validators/{id}", s.validatorStatus).Methods(http.MethodGet)
	router.HandleFunc("/v1/staking/validators/{id}/release", s.release).Methods(http.MethodPost)
	router.HandleFunc("/v1/staking/pool", s.poolBalance).Methods(http.MethodGet)
	router.HandleFunc("/v1/staking/pool/deposit", s.deposit).Methods(http.MethodPost)
	router.Use(s.requestMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

// Handler returns the http handler with all routes and middlewares.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// BoundAddress returns the address the server listens on. Valid after Run started listening.
func (s *Server) BoundAddress() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.listener = listener
	return nil
}

// Run serves requests until ctx is canceled. Listen is called if it was not called before.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	server := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
		IdleTimeout:  4 * s.timeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
	s.logger.Info("starting slashing api", zap.Stringer("address", s.listener.Addr()))
	errch := make(chan error, 1)
	go func() {
		errch <- server.Serve(s.listener)
	}()
	select {
	case err := <-errch:
		return fmt.Errorf("serve api: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown api: %w", err)
	}
	if err := <-errch; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve api: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := log.WithNewRequestID(r.Context())
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r.WithContext(ctx))
		s.logger.Debug("api request",
			log.ZContext(ctx),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("api request failed",
			log.ZContext(r.Context()),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

var errBadRequest = errors.New("bad request")

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, slashing.ErrIdenticalVotes),
		errors.Is(err, slashing.ErrSourceAfterTarget),
		errors.Is(err, slashing.ErrNoViolation),
		errors.Is(err, slashing.ErrInvalidProof),
		errors.Is(err, slashing.ErrInvalidParam),
		errors.Is(err, slashing.ErrUnknownParam):
		return http.StatusBadRequest
	case errors.Is(err, slashing.ErrStaleHeight),
		errors.Is(err, staking.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, slashing.ErrUnknownValidator),
		errors.Is(err, staking.ErrValidatorNotFound),
		errors.Is(err, sql.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %w", errBadRequest, err)
	}
	return nil
}

func validatorVar(r *http.Request) (types.ValidatorID, error) {
	var id types.ValidatorID
	if err := id.UnmarshalText([]byte(mux.Vars(r)["id"])); err != nil {
		return id, fmt.Errorf("%w: validator id: %w", errBadRequest, err)
	}
	return id, nil
}

// ReportRequest reports misbehavior of a validator at a height.
type ReportRequest struct {
	Validator types.ValidatorID `json:"validator"`
	Height    types.Height      `json:"height"`
}

// ReportResponse is the state after an accepted report.
type ReportResponse struct {
	Watermark types.Height        `json:"watermark"`
	Indicator *slashing.Indicator `json:"indicator,omitempty"`
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	indicator, tracked, err := s.slasher.Report(r.Context(), req.Validator, req.Height)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// an accepted report moves the watermark to its height
	rst := ReportResponse{Watermark: req.Height}
	if tracked {
		rst.Indicator = &indicator
	}
	s.writeJSON(w, http.StatusOK, rst)
}

// CompactResponse is the result of a compaction pass.
type CompactResponse struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

func (s *Server) compact(w http.ResponseWriter, r *http.Request) {
	removed, remaining := s.slasher.Compact(r.Context())
	s.writeJSON(w, http.StatusOK, CompactResponse{Removed: removed, Remaining: remaining})
}

// EvidenceRequest submits a finality violation.
type EvidenceRequest struct {
	Evidence  types.FinalityEvidence `json:"evidence"`
	Submitter types.ValidatorID      `json:"submitter"`
}

func (s *Server) evidence(w http.ResponseWriter, r *http.Request) {
	var req EvidenceRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	slash, err := s.slasher.SubmitFinalityEvidence(r.Context(), &req.Evidence, req.Submitter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, slash)
}

func (s *Server) indicators(w http.ResponseWriter, r *http.Request) {
	all := s.slasher.Indicators()
	if all == nil {
		all = []slashing.ValidatorIndicator{}
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) indicator(w http.ResponseWriter, r *http.Request) {
	id, err := validatorVar(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	indicator, exists := s.slasher.Indicator(id)
	if !exists {
		s.writeError(w, r, fmt.Errorf("indicator for %s: %w", id, sql.ErrNotFound))
		return
	}
	s.writeJSON(w, http.StatusOK, slashing.ValidatorIndicator{Validator: id, Indicator: indicator})
}

// ThresholdsResponse holds the escalation thresholds.
type ThresholdsResponse struct {
	Misdemeanor uint64 `json:"misdemeanor"`
	Felony      uint64 `json:"felony"`
}

func (s *Server) thresholds(w http.ResponseWriter, r *http.Request) {
	misdemeanor, felony := s.slasher.Thresholds()
	s.writeJSON(w, http.StatusOK, ThresholdsResponse{Misdemeanor: misdemeanor, Felony: felony})
}

func (s *Server) params(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.slasher.Params())
}

// ParamRequest carries a 0x prefixed hex encoded 32 byte big-endian value.
type ParamRequest struct {
	Value string `json:"value"`
}

func (s *Server) updateParam(w http.ResponseWriter, r *http.Request) {
	var req ParamRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	value, err := util.FromHex(req.Value)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: param value: %w", errBadRequest, err))
		return
	}
	if err := s.slasher.UpdateParam(r.Context(), mux.Vars(r)["key"], value); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) slashHistory(w http.ResponseWriter, r *http.Request) {
	id, err := validatorVar(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxHistoryLimit {
			s.writeError(w, r, fmt.Errorf("%w: limit must be in [1, %d]", errBadRequest, maxHistoryLimit))
			return
		}
		limit = parsed
	}
	slashes, err := s.history.History(r.Context(), id, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if slashes == nil {
		slashes = []events.EventSlash{}
	}
	s.writeJSON(w, http.StatusOK, slashes)
}

func (s *Server) recent(w http.ResponseWriter, r *http.Request) {
	recent := s.history.Recent()
	if recent == nil {
		recent = []events.EventSlash{}
	}
	s.writeJSON(w, http.StatusOK, recent)
}

// ValidatorResponse is the staking status of a validator.
type ValidatorResponse struct {
	staking.Status
	Rewards types.Amount `json:"rewards"`
}

func (s *Server) validatorStatus(w http.ResponseWriter, r *http.Request) {
	id, err := validatorVar(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status, err := s.validators.Status(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ValidatorResponse{Status: status, Rewards: s.pool.Paid(id)})
}

func (s *Server) release(w http.ResponseWriter, r *http.Request) {
	id, err := validatorVar(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.validators.Release(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("validator released", log.ZContext(r.Context()), log.ZShortStringer("validator", id))
	w.WriteHeader(http.StatusNoContent)
}

// PoolResponse is the balance of the reward pool.
type PoolResponse struct {
	Balance types.Amount `json:"balance"`
}

func (s *Server) poolBalance(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, PoolResponse{Balance: s.pool.Balance()})
}

// DepositRequest funds the reward pool.
type DepositRequest struct {
	Amount types.Amount `json:"amount"`
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Amount == 0 {
		s.writeError(w, r, fmt.Errorf("%w: deposit amount must be positive", errBadRequest))
		return
	}
	balance := s.pool.Deposit(req.Amount)
	s.logger.Info("reward pool funded",
		log.ZContext(r.Context()),
		zap.Uint64("amount", uint64(req.Amount)),
		zap.Uint64("balance", uint64(balance)),
	)
	s.writeJSON(w, http.StatusOK, PoolResponse{Balance: balance})
}
