package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"service-motorizado/internal/apperr"
	"service-motorizado/internal/logx"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("request_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(logger, w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrInvalidTransition), errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(logger, w, r, http.StatusServiceUnavailable, "request cancelled")
	default:
		logger.Error("internal error",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

// decodeOptionalJSON accepts an empty body as the zero value.
func decodeOptionalJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	return decodeJSON(logger, w, r, dst)
}

func queryInt(r *http.Request, name string) (*int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}
