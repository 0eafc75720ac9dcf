package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type body struct {
	Error errorObj `json:"error"`
}

type errorObj struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Write sends err as a JSON error response. 5xx errors are logged with
// their internal cause, which never reaches the client.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	appErr := From(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request error",
			slog.Int("status", appErr.HTTPStatus),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(appErr.HTTPStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(body{Error: errorObj{Code: appErr.Code, Message: appErr.Message}})
}
