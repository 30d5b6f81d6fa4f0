package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// HTTPLogger logs HTTP requests and collects request related metrics
type HTTPLogger struct {
	Handler         http.Handler
	RequestDuration prometheus.Histogram
	Log             *zap.Logger
}

func (l HTTPLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewV4().String()
	start := time.Now()

	l.Handler.ServeHTTP(w, r)

	duration := time.Since(start)
	l.RequestDuration.Observe(float64(duration) / float64(time.Millisecond))
	l.Log.Debug("Request handled.",
		zap.String("requestId", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("duration", duration))
}
