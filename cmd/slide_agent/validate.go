package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/slide-redesigner/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against a schema",
	Long:  "Validates a JSON file against an embedded schema (e.g. slide_metadata, prediction_list, layout_template, redesigned_deck) or a schema file path.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema name or path to schema file (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file, or - to read stdin (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if validateJSON == "-" {
		err = validateStdin(cmd.InOrStdin())
	} else {
		err = schemas.ValidateFile(validateSchema, validateJSON)
	}
	if err == nil {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed\n")
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(os.Stdout, "Validation failed:\n")
		for _, fe := range validationErr.Errors {
			_, _ = fmt.Fprintf(os.Stdout, "  %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(validationErr.Errors))
	}
	return err
}

func validateStdin(in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	source, err := schemas.SchemaSource(validateSchema)
	if err != nil {
		return err
	}
	return schemas.ValidateJSONString(source, string(data))
}
