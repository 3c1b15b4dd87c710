// Package main is the entry point for the career game API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career-api",
	Short: "VJ Career Game API Server",
	Long:  `Career API serves the player progress store for the VJ career game: stats, skills, equipment, achievements, and save slots backed by Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
