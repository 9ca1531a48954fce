package main

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	tekuri "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/reoring/skema/dsl"
)

func newInspectCmd(a *app) *cobra.Command {
	var schemaPath string
	var check bool
	cmd := &cobra.Command{
		Use:   "inspect --schema SCHEMA",
		Short: "Print the canonical form of a descriptor",
		Long:  `Imports the descriptor and prints it as exported back, which is how skema understood it. --check also compiles the result with an independent JSON Schema validator.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(schemaPath)
			if err != nil {
				return err
			}
			desc, err := dsl.Export(s)
			if err != nil {
				return err
			}
			out, err := j.MarshalIndent(desc, "", "  ")
			if err != nil {
				return err
			}
			if check {
				if err := compileDescriptor(out); err != nil {
					return fmt.Errorf("descriptor does not compile: %w", err)
				}
				a.logger.Info("descriptor compiles", "schema", schemaPath)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema descriptor (.json, .yaml)")
	cmd.Flags().BoolVar(&check, "check", false, "compile the exported descriptor")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func compileDescriptor(desc []byte) error {
	c := tekuri.NewCompiler()
	c.Draft = tekuri.Draft2020
	if err := c.AddResource("inspect.json", bytes.NewReader(desc)); err != nil {
		return err
	}
	_, err := c.Compile("inspect.json")
	return err
}
