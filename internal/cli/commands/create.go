package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/restorm-go/restorm/internal/cli/ui"
)

var createData string

// NewCreateCommand creates the create command.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <resource-path>",
		Short: "Create a resource from a JSON document",
		Long: `POST a JSON document to a collection and print the created resource.

Examples:
  restorm create users --data '{"name": "Cedric"}'
  restorm create users/42/medias --data '{"kind": "video"}'
  cat user.json | restorm create users`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createData, "data", "d", "", "Resource attributes as a JSON object (reads stdin when omitted)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	adapter, err := newAdapter()
	if err != nil {
		return err
	}

	raw := []byte(createData)
	if createData == "" {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var attrs map[string]any
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	b, err := buildDescriptor(args[0])
	if err != nil {
		return err
	}
	b.ClearID().SetMethod(http.MethodPost).SetBody(attrs)

	resp, err := adapter.Call(cmd.Context(), b)
	if err != nil {
		return err
	}

	ui.Success("created %s", args[0])
	return ui.PrintJSON(resp.Data)
}
