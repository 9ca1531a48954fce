package main

import (
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	skema "github.com/reoring/skema"
)

type report struct {
	Input  string       `json:"input"`
	Valid  bool         `json:"valid"`
	Issues skema.Issues `json:"issues,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var schemaPath, format string
	cmd := &cobra.Command{
		Use:   "validate --schema SCHEMA INPUT...",
		Short: "Validate JSON or YAML documents",
		Long:  `Validates each input against the schema and reports every issue found. "-" reads standard input. Every document of a YAML stream is validated and its issue paths start with the document index. Exits with status 1 if any input is invalid.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}
			s, err := a.loadSchema(schemaPath)
			if err != nil {
				return err
			}
			opt := skema.DefaultParseOpt()

			reports := make([]report, 0, len(args))
			failed := false
			for _, in := range args {
				r := validateOne(cmd, s, in, opt)
				a.logger.Debug("validated", "input", in, "valid", r.Valid)
				failed = failed || !r.Valid
				reports = append(reports, r)
			}
			if err := writeReports(cmd.OutOrStdout(), format, reports); err != nil {
				return err
			}
			if failed {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema descriptor (.json, .yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "report format (text, json)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func validateOne(cmd *cobra.Command, s skema.Schema, in string, opt skema.ParseOpt) report {
	r := report{Input: in}
	var (
		data []byte
		err  error
	)
	if in == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	if isYAML(in) {
		_, err = skema.ParseYAMLStream(cmd.Context(), s, data, opt)
	} else {
		_, err = skema.ParseJSON(cmd.Context(), s, data, opt)
	}
	if err == nil {
		r.Valid = true
		return r
	}
	if iss, ok := skema.AsIssues(err); ok {
		r.Issues = iss
		return r
	}
	r.Error = err.Error()
	return r
}

func writeReports(w io.Writer, format string, reports []report) error {
	if format == "json" {
		enc := j.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	for _, r := range reports {
		switch {
		case r.Valid:
			fmt.Fprintf(w, "%s: ok\n", r.Input)
		case r.Error != "":
			fmt.Fprintf(w, "%s: error: %s\n", r.Input, r.Error)
		default:
			fmt.Fprintf(w, "%s: %d issue(s)\n", r.Input, len(r.Issues))
			for _, it := range r.Issues {
				fmt.Fprintf(w, "  %s: %s (%s)\n", it.Path, it.Message, it.Code)
			}
		}
	}
	return nil
}
