// Package commands implements the restorm CLI subcommands. Each command
// drives the query builder and REST adapter directly against the API
// configured in restorm.yaml.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/restorm-go/restorm/adapter/rest"
	"github.com/restorm-go/restorm/cache"
	"github.com/restorm-go/restorm/internal/cli/config"
	"github.com/restorm-go/restorm/query"
)

var (
	flagBaseURL string
	flagVerbose bool
)

// NewRootCommand creates the restorm root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restorm",
		Short: "Ad-hoc REST resource client",
		Long: `restorm talks to a JSON REST API the way the restorm library does:
resources are addressed as collection paths (users, users/1/medias),
conditions become query parameters, and responses print as JSON.

Configuration is read from restorm.yaml in the working directory:

  base_url: https://api.example.com
  headers:
    authorization: Bearer <token>
  timeout: 30s
  cache_ttl: 5m`,
	}

	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (overrides config)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests")

	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewDeleteCommand())

	return cmd
}

// newAdapter assembles a REST adapter from the config file plus any
// flag overrides.
func newAdapter() (*rest.Adapter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no base URL configured: set base_url in restorm.yaml or pass --base-url")
	}

	var logger *zap.Logger
	if flagVerbose || cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	return rest.New(rest.Config{
		BaseURL:  cfg.BaseURL,
		Headers:  cfg.Headers,
		Timeout:  cfg.Timeout,
		Cache:    cache.NewMemory(),
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})
}

// parseConditions turns repeated key=value flags into a condition map.
func parseConditions(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	conditions := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid condition %q: expected key=value", pair)
		}
		conditions[key] = value
	}
	return conditions, nil
}

// buildDescriptor turns a resource path like users/1/medias into a
// parent-chained builder: segments alternate resource and id, and the
// last builder in the chain describes the target.
func buildDescriptor(path string) (*query.Builder, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return nil, fmt.Errorf("empty resource path")
	}
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("invalid resource path %q", path)
		}
	}

	var b *query.Builder
	for i := 0; i < len(segments); i += 2 {
		next := query.New(segments[i])
		if b != nil {
			next.SetParent(b)
		}
		if i+1 < len(segments) {
			next.SetID(segments[i+1])
		}
		b = next
	}
	return b, nil
}
