package main

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/httpapi"
	"github.com/serverless/stream-functions/internal/sync"
	"github.com/serverless/stream-functions/metrics"
	"github.com/serverless/stream-functions/validate"
)

var (
	configPort   uint
	configTLSCrt string
	configTLSKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the configuration API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		prometheus.MustRegister(metrics.RequestDuration)
		prometheus.MustRegister(metrics.ValidationsAccepted)
		prometheus.MustRegister(metrics.ValidationsRejected)
		prometheus.MustRegister(metrics.Translations)

		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		shutdownGuard := sync.NewShutdownGuard()

		loader := artifact.NewFileLoader()
		api := httpapi.HTTPAPI{
			Validator: validate.New(loader, loader, log),
			Log:       log,
		}
		router := httprouter.New()
		api.RegisterRoutes(router)

		handler := httpapi.HTTPLogger{
			Handler:         cors.AllowAll().Handler(router),
			RequestDuration: metrics.RequestDuration,
			Log:             log,
		}
		server := httpapi.Server{
			Config: httpapi.ServerConfig{
				Log:           log,
				TLSCrt:        &configTLSCrt,
				TLSKey:        &configTLSKey,
				Port:          configPort,
				ShutdownGuard: shutdownGuard,
			},
			HTTPHandler: &http.Server{
				Addr:    fmt.Sprintf(":%d", configPort),
				Handler: handler,
			},
		}

		log.Info("Configuration API listening.", zap.Uint("port", configPort))
		server.Listen()
		shutdownGuard.ShutdownAndWait()
		return nil
	},
}

func init() {
	serveCmd.Flags().UintVar(&configPort, "config-port", 4001, "Port to serve configuration API on.")
	serveCmd.Flags().StringVar(&configTLSCrt, "config-tls-cert", "", "Path to configuration API TLS certificate file.")
	serveCmd.Flags().StringVar(&configTLSKey, "config-tls-key", "", "Path to configuration API TLS key file.")
	rootCmd.AddCommand(serveCmd)
}
