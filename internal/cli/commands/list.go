package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/restorm-go/restorm/internal/cli/ui"
)

var (
	listWhere   []string
	listSort    string
	listDir     string
	listPage    int
	listPerPage int
	listLimit   int
	listFormat  string
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <resource-path>",
		Short: "Fetch a resource collection",
		Long: `Fetch a collection, optionally filtered, sorted, and paginated.

Examples:
  restorm list users
  restorm list users --where role=admin --sort created_at --dir desc
  restorm list users/42/medias --page 2 --per-page 25`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().StringArrayVarP(&listWhere, "where", "w", nil, "Condition as key=value (repeatable)")
	cmd.Flags().StringVar(&listSort, "sort", "", "Sort attribute")
	cmd.Flags().StringVar(&listDir, "dir", "", "Sort direction (asc, desc)")
	cmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	cmd.Flags().IntVar(&listPerPage, "per-page", 0, "Results per page")
	cmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of results")
	cmd.Flags().StringVarP(&listFormat, "format", "f", "json", "Output format (json, table)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	adapter, err := newAdapter()
	if err != nil {
		return err
	}

	b, err := buildDescriptor(args[0])
	if err != nil {
		return err
	}
	b.ClearID()

	conditions, err := parseConditions(listWhere)
	if err != nil {
		return err
	}
	if conditions != nil {
		b.Where(conditions)
	}
	if listSort != "" {
		b.OrderBy(listSort, listDir)
	}
	if listPage > 0 {
		perPage := listPerPage
		if perPage <= 0 {
			perPage = 10
		}
		b.Paginate(listPage, perPage)
	}
	if listLimit > 0 {
		b.Limit(listLimit)
	}

	resp, err := adapter.Call(cmd.Context(), b)
	if err != nil {
		return err
	}

	if listFormat == "table" {
		items, ok := resp.Data.([]any)
		if !ok && resp.Data != nil {
			items = []any{resp.Data}
		}
		ui.NewTable(os.Stdout, items).Render()
		return nil
	}
	return ui.PrintJSON(resp.Data)
}
