package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/serverless/stream-functions/function"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "streamfn",
	Short: "streamfn validates and translates stream-function configs",
	Long: `streamfn is the CLI for the stream-functions configuration layer.

It validates user-authored function configs and translates them to and from
the canonical descriptor submitted to the execution runtime.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadConfig reads a YAML function config, starting from the decode defaults.
func loadConfig(path string) (*function.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	config := function.NewConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return config, nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	return nil
}
