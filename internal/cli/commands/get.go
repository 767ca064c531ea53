package commands

import (
	"github.com/spf13/cobra"

	"github.com/restorm-go/restorm/internal/cli/ui"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource-path> <id>",
		Short: "Fetch a single resource by id",
		Long: `Fetch one resource and print it as JSON.

Examples:
  restorm get users 42
  restorm get users/42/medias 7`,
		Args: cobra.ExactArgs(2),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	adapter, err := newAdapter()
	if err != nil {
		return err
	}

	b, err := buildDescriptor(args[0])
	if err != nil {
		return err
	}
	b.SetID(args[1])

	resp, err := adapter.Call(cmd.Context(), b)
	if err != nil {
		return err
	}
	return ui.PrintJSON(resp.Data)
}
