package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the keys bound to each action in the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(keysTable(cfg.Keys))
	fmt.Println()
	fmt.Println("Edit the keys section of your config to change them.")
}

// keysTable renders one row per intent.
func keysTable(keys config.KeysConfig) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Action", "Keys")
	for _, intent := range core.Intents {
		t.Row(intent.String(), tui.HelpKeys(keys.For(intent)))
	}
	return t.String()
}
