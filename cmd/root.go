package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/fundacionaurora/clinica_backend/cmd/http"
	systemcmd "github.com/fundacionaurora/clinica_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinica",
	Short: "Administration backend for the Fundación Aurora therapy clinic.",
	Long: `Clinica is the administration backend for the Fundación Aurora therapy
clinic: patients, captured payments, and therapist payout settlement with
commission and deduction rates.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
