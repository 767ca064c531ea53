package commands

import (
	"fmt"
	"net/http"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/restorm-go/restorm/internal/cli/ui"
)

var deleteYes bool

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <resource-path> <id>",
		Short: "Delete a resource by id",
		Long: `Delete one resource. Prompts for confirmation unless --yes is given.

Examples:
  restorm delete users 42
  restorm delete users/42/medias 7 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !deleteYes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete %s/%s?", args[0], args[1]),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			ui.Error("aborted")
			return nil
		}
	}

	adapter, err := newAdapter()
	if err != nil {
		return err
	}

	b, err := buildDescriptor(args[0])
	if err != nil {
		return err
	}
	b.SetID(args[1]).SetMethod(http.MethodDelete)

	if _, err := adapter.Call(cmd.Context(), b); err != nil {
		return err
	}

	ui.Success("deleted %s/%s", args[0], args[1])
	return nil
}
