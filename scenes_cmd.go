package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List built-in and discovered scenes",
	Args:  cobra.NoArgs,
	RunE:  runScenes,
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}

func runScenes(cmd *cobra.Command, args []string) error {
	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, group := range response.Groups {
		fmt.Fprintf(out, "%s\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(out, "  %s\t%s\t%s\n", info.ID, info.DisplayName, info.Description)
		}
		fmt.Fprintln(out)
	}
	return out.Flush()
}
