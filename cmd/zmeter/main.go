package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zmeter",
	Short: "AC impedance calculator for series/parallel RLC networks",
	Long: `zmeter models resistors, capacitors, inductors, diodes and transistors,
composes them into series or parallel networks and reports complex
impedance and phase at a chosen frequency or across a frequency sweep.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
