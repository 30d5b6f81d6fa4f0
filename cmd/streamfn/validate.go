package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/validate"
)

var packageURL string

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Validate a function config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(args[0])
		if err != nil {
			return err
		}

		loader := artifact.NewFileLoader()
		validator := validate.New(loader, loader, newLogger())
		handle, err := validator.Validate(config, packageURL, "")
		if err != nil {
			return err
		}
		if handle != nil {
			defer handle.Close()
			fmt.Printf("function config is valid (package %s)\n", handle.Location())
			return nil
		}

		fmt.Println("function config is valid")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(
		&packageURL,
		"package-url",
		"",
		"Explicit function package URL, overriding the config's artifact path",
	)
	rootCmd.AddCommand(validateCmd)
}
