package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studiz/internal/history"
	"github.com/abhisek/studiz/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved study sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := history.New(s.KV()).List(context.Background())
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-10s  %s\n", "Date", "Kind", "Topic")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range entries {
			topic := e.Topic
			if len(topic) > 44 {
				topic = topic[:44]
			}
			fmt.Printf("%-16s  %-10s  %s\n",
				e.Created.Local().Format("2006-01-02 15:04"),
				e.Kind,
				topic)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := history.New(s.KV()).Clear(context.Background()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}
