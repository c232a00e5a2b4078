package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL    string
	storeKind string
	dbPath    string
	fresh     bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Bondify conversation decks in the terminal",
	Long: `Play Bondify conversation decks: reveal prompts, favorite the ones you
love, mark them answered and earn XP. Progress is kept per deck.

With --api the decks come from a Bondify backend; otherwise the bundled
catalog is used.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlayer(cmd.Context(), "")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the available decks",
	Args:  cobra.NoArgs,
	RunE:  listDecks,
}

var deckCmd = &cobra.Command{
	Use:   "deck [category]",
	Short: "Open a deck directly",
	Example: `  play deck mirror
  play deck lovers --fresh`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlayer(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("BONDIFY_API_URL", ""), "backend base URL (bundled catalog when empty)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", envOr("BONDIFY_STORE", "local"), "progress store: local, memory or redis")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "local progress database (default ~/.bondify/progress.db)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", envOr("BONDIFY_LOG_FILE", ""), "log file (default ~/.bondify/play.log)")
	deckCmd.Flags().BoolVar(&fresh, "fresh", false, "clear saved progress when the deck opens")

	rootCmd.AddCommand(listCmd, deckCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
