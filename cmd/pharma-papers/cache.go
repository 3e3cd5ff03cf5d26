// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pharma-papers/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the local record cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the number of cached records",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("cache-dir")
		s, err := store.Open(dir)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%d records cached in %s\n", n, dir)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached records",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("cache-dir")
		s, err := store.Open(dir)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", defaultCacheDir, "directory for the record cache")
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
