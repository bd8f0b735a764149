package handlers

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/almroth/fasskollen/logging"
)

// Responses smaller than this go out uncompressed; gzip overhead beats
// the savings below 1KB.
const compressionThreshold = 1024

// RespondWithJSON marshals payload and writes it with the given status.
// Bodies at or past the compression threshold are gzipped when the
// client advertises support. Headers are complete before the status
// line goes out.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response",
			"error", err,
			"payload_type", fmt.Sprintf("%T", payload))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))

	if len(body) >= compressionThreshold && acceptsGzip(r) {
		header.Set("Content-Encoding", "gzip")
		w.WriteHeader(code)

		gz := gzip.NewWriter(w)
		defer gz.Close()
		if _, err := gz.Write(body); err != nil {
			logging.Error("Failed to write compressed response", "error", err)
		}
		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logging.Error("Failed to write response", "error", err)
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip")
}

// RespondWithError writes the uniform error envelope used by every
// endpoint: error text, human message and the numeric code.
func RespondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	RespondWithJSON(w, r, code, map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	})
}
