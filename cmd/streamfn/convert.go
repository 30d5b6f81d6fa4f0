package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serverless/stream-functions/descriptor"
	"github.com/serverless/stream-functions/translate"
)

var convertCmd = &cobra.Command{
	Use:   "convert <config.yaml>",
	Short: "Translate a function config into its canonical descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(args[0])
		if err != nil {
			return err
		}

		details, err := translate.ToDetails(config, nil)
		if err != nil {
			return err
		}

		return printJSON(details)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <details.json>",
	Short: "Reconstruct an editable config from a descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		details := &descriptor.FunctionDetails{}
		if err := loadJSON(args[0], details); err != nil {
			return err
		}

		config, err := translate.FromDetails(details)
		if err != nil {
			return err
		}

		return printJSON(config)
	},
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(parseCmd)
}
