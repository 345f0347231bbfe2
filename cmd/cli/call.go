package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/cortexai/cosmosdb-mcp/internal/server"
	"github.com/spf13/cobra"
)

var errToolFailed = errors.New("tool call failed")

func NewCallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [arguments-json]",
		Short: "Invoke one tool directly and print its result",
		Example: `  cosmosdb-mcp call get_item '{"containerName":"tasks","id":"42"}'
  cosmosdb-mcp call check_certificate_expiry '{"certificateName":"api-tls"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := parseToolArguments(args[1:])
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := server.New(cfg)
			if err != nil {
				return err
			}

			res := srv.Dispatcher().Call(ctx, args[0], toolArgs)
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if res.IsError {
				return errToolFailed
			}
			return nil
		},
	}
}

func parseToolArguments(args []string) (map[string]any, error) {
	if len(args) == 0 || args[0] == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(args[0]), &out); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
