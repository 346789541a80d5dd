package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dorafactory/maci-demo/workflow"
)

// RequestIDHeader carries the id assigned to every api request
const RequestIDHeader = "X-Request-Id"

const apiPrefix = "/api/v1"

//go:generate moq -pkg mock -out ./mock/server.go . Runner

// Runner executes workflow steps and reports the session state
type Runner interface {
	Run(ctx context.Context, step workflow.Step) (workflow.Result, error)
	Status() workflow.Status
}

// StepResponse is the api response to a step request
type StepResponse struct {
	RequestID string             `json:"request_id"`
	Step      string             `json:"step"`
	OK        bool               `json:"ok"`
	Message   string             `json:"message,omitempty"`
	Error     string             `json:"error,omitempty"`
	Tx        *workflow.TxRecord `json:"tx,omitempty"`
}

// NewRouter maps the api onto the given runner
func NewRouter(runner Runner, gatherer prometheus.Gatherer, logger log.Logger) *mux.Router {
	logger = logger.With("module", "server")

	r := mux.NewRouter()
	r.Use(requestID(logger))
	r.MethodNotAllowedHandler = methodNotAllowed(logger)

	r.HandleFunc(apiPrefix+"/steps/{step}", runStep(runner, logger)).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/status", status(runner)).Methods(http.MethodGet)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return r
}

// Serve listens on addr until ctx is done
func Serve(ctx context.Context, addr string, handler http.Handler, logger log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving api", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

func runStep(runner Runner, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := StepResponse{
			RequestID: w.Header().Get(RequestIDHeader),
			Step:      mux.Vars(r)["step"],
		}

		step, err := workflow.ParseStep(res.Step)
		if err != nil {
			res.Error = err.Error()
			writeJSON(w, http.StatusNotFound, res, logger)
			return
		}

		// a started step runs to completion even if the caller goes away
		result, err := runner.Run(context.WithoutCancel(r.Context()), step)
		if err != nil {
			res.Error = err.Error()
			writeJSON(w, statusCode(err), res, logger)
			return
		}

		res.OK = true
		res.Message = result.Message
		if tx, ok := result.Tx.Get(); ok {
			res.Tx = &tx
		}

		writeJSON(w, http.StatusOK, res, logger)
	}
}

func methodNotAllowed(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := StepResponse{Error: fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path)}
		writeJSON(w, http.StatusMethodNotAllowed, res, logger)
	}
}

func status(runner Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, runner.Status(), log.NewNopLogger())
	}
}

func statusCode(err error) int {
	switch {
	case errorsmod.IsOf(err, workflow.ErrUnknownStep):
		return http.StatusNotFound
	case errorsmod.IsOf(err, workflow.ErrStepBusy):
		return http.StatusConflict
	case errorsmod.IsOf(err, workflow.ErrMissingPrerequisite):
		return http.StatusPreconditionFailed
	case errorsmod.IsOf(err, workflow.ErrFeegrantTimeout):
		return http.StatusGatewayTimeout
	case errorsmod.IsOf(err, workflow.ErrWalletUnavailable, workflow.ErrNoAccounts, workflow.ErrRemoteCall):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}, logger log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

func requestID(logger log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set(RequestIDHeader, id)

			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("handled request", "request_id", id, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		})
	}
}
