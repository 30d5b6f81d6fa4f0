package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/serverless/stream-functions/descriptor"
	"github.com/serverless/stream-functions/function"
	"github.com/serverless/stream-functions/metrics"
	"github.com/serverless/stream-functions/translate"
	"github.com/serverless/stream-functions/validate"
)

// HTTPAPI exposes REST API for validating and translating function configs.
type HTTPAPI struct {
	Validator *validate.Validator
	Log       *zap.Logger
}

// RegisterRoutes register HTTP API routes
func (h HTTPAPI) RegisterRoutes(router *httprouter.Router) {
	router.GET("/v1/status", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {})
	router.Handler("GET", "/metrics", promhttp.Handler())

	router.POST("/v1/functions/validate", h.validateFunction)
	router.POST("/v1/functions/convert", h.convertFunction)
	router.POST("/v1/functions/parse", h.parseFunction)
}

// validateFunction runs the validation pipeline over the posted config. The
// package handle opened for the Java runtime is closed right away; this
// surface only reports the verdict.
func (h HTTPAPI) validateFunction(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	config := function.NewConfig()
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(config)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(NewErrMalformedJSON(err))
		return
	}

	handle, err := h.Validator.Validate(config, r.URL.Query().Get("packageUrl"), "")
	if err != nil {
		metrics.ValidationsRejected.Inc()

		if _, ok := err.(*function.ErrInvalidConfiguration); ok {
			w.WriteHeader(http.StatusBadRequest)
		} else if _, ok := err.(*function.ErrArtifact); ok {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		encoder.Encode(&Response{Errors: []Error{{Message: err.Error()}}})
		return
	}
	if handle != nil {
		handle.Close()
	}

	metrics.ValidationsAccepted.Inc()
	h.Log.Debug("Function config validated.", zap.Object("config", config))
	encoder.Encode(config)
}

// convertFunction translates the posted config into its canonical descriptor.
// Translation is structural only; callers wanting semantic guarantees run
// validate first.
func (h HTTPAPI) convertFunction(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	config := function.NewConfig()
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(config)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(NewErrMalformedJSON(err))
		return
	}

	details, err := translate.ToDetails(config, nil)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(&Response{Errors: []Error{{Message: err.Error()}}})
		return
	}

	metrics.Translations.Inc()
	h.Log.Debug("Function config converted.", zap.Object("details", details))
	encoder.Encode(details)
}

// parseFunction reconstructs an editable config from the posted descriptor.
func (h HTTPAPI) parseFunction(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	details := &descriptor.FunctionDetails{}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(details)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(NewErrMalformedJSON(err))
		return
	}

	config, err := translate.FromDetails(details)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(&Response{Errors: []Error{{Message: err.Error()}}})
		return
	}

	metrics.Translations.Inc()
	encoder.Encode(config)
}
