package metrics

import "github.com/prometheus/client_golang/prometheus"

// RequestDuration is a histogram with buckets that
// are incrementally 10% larger than the last, with valid
// values ranging from 0.1 to ~62370
var RequestDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "functions_request_duration_milliseconds",
		Help:    "Request duration distribution",
		Buckets: prometheus.ExponentialBuckets(0.1, 1.1, 140),
	})

// ValidationsAccepted counts function configs that passed the full
// validation pipeline.
var ValidationsAccepted = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "functions_validations_accepted",
		Help: "Function configs accepted by validation.",
	})

// ValidationsRejected counts function configs rejected by any validation
// stage.
var ValidationsRejected = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "functions_validations_rejected",
		Help: "Function configs rejected by validation.",
	})

// Translations counts config/descriptor conversions in either direction.
var Translations = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "functions_translations",
		Help: "Config to descriptor conversions, both directions.",
	})
