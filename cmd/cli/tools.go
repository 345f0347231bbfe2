package cli

import (
	"encoding/json"

	"github.com/cortexai/cosmosdb-mcp/internal/tools"
	"github.com/spf13/cobra"
)

type toolListing struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := tools.Catalog()
			out := make([]toolListing, 0, len(catalog))
			for _, d := range catalog {
				out = append(out, toolListing{Name: d.Name, Description: d.Description, InputSchema: d.InputSchema()})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
