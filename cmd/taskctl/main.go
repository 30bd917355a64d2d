package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taskboard/taskboard-api/internal/client"
)

var (
	serverURL string
	api       *client.Client
)

func main() {
	root := &cobra.Command{
		Use:   "taskctl",
		Short: "Command-line client for the taskboard API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api = client.New(serverURL, zap.NewNop())
		},
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the taskboard API")

	root.AddCommand(
		newListCmd(),
		newGetCmd(),
		newCreateCmd(),
		newUpdateCmd(),
		newCompleteCmd(),
		newDeleteCmd(),
		newStatsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
