package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newExportCmd(c *cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, doc, err := c.client().Export()
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(output, raw, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries (%s) to %s\n",
				len(doc.Movies), humanize.Bytes(uint64(len(raw))), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

// importRecords accepts either a bare array of records or an export
// document and returns the records array.
func importRecords(data []byte) (json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.RawMessage(data), nil
	}
	var doc struct {
		Movies json.RawMessage `json:"movies"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(doc.Movies) == 0 || doc.Movies[0] != '[' {
		return nil, fmt.Errorf("import file has no movies array")
	}
	return doc.Movies, nil
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with an exported document",
		Long: `Replace the collection with an exported document.

All existing entries are deleted first. Records the server rejects are
skipped. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			records, err := importRecords(data)
			if err != nil {
				return err
			}
			resp, err := c.client().Import(records)
			if err != nil {
				return err
			}
			if c.jsonOutput {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d entries (%s)\n",
				resp.Imported, resp.Total, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}
}
