package handlers

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-features/api")

func writeJSON(log zerolog.Logger, w http.ResponseWriter, contentType string, maxAge string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Add("Content-Type", contentType)
	if maxAge != "" {
		w.Header().Add("Cache-Control", "max-age="+maxAge)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)

	return nil
}
