package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zmeter/pkg/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the canonical circuit templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range preset.All() {
			fmt.Printf("%s (%s) - %s\n", p.Key, p.Topology, p.Title)
			fmt.Println(p.Diagram)
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
