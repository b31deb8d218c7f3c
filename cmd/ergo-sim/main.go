// Package main runs the simulated Ergo signer in the terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/internal/logging"
	"github.com/status-im/status-ergo-go/internal/sim"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/format"
	"github.com/status-im/status-ergo-go/pkg/keystore"
)

var (
	network    string
	digits     int
	mnemonic   string
	passphrase string
	logFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd runs the TUI by default.
var rootCmd = &cobra.Command{
	Use:     "ergo-sim",
	Short:   "Simulated Ergo signer with on-device confirmation",
	Version: internal.AppVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Console logs would corrupt the TUI.
		return logging.Install(logFile != "", logFile)
	},
	RunE: runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&network, "network", "mainnet", "address network (mainnet or testnet)")
	flags.StringVar(&mnemonic, "mnemonic", "", "seed phrase of the device (a new one is generated when empty)")
	flags.StringVar(&passphrase, "passphrase", "", "BIP39 passphrase")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().IntVar(&digits, "digits", internal.ErgFractionDigitCount, "fraction digits of displayed amounts")

	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(mnemonicCmd)
}

func loadMnemonic() (string, error) {
	if mnemonic != "" {
		return mnemonic, nil
	}
	m, err := keystore.GenerateMnemonic(256)
	if err != nil {
		return "", err
	}
	zap.L().Info("generated a new seed phrase")
	return m, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	n, err := address.ParseNetwork(network)
	if err != nil {
		return err
	}
	m, err := loadMnemonic()
	if err != nil {
		return err
	}

	model, err := sim.New(sim.Config{Network: n, FractionDigits: digits, Mnemonic: m, Passphrase: passphrase})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running simulator: %w", err)
	}
	return nil
}

// addressCmd derives an address without going through the display.
var addressCmd = &cobra.Command{
	Use:   "address <path>",
	Short: "Print the address at a derivation path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if mnemonic == "" {
			return fmt.Errorf("--mnemonic is required")
		}
		n, err := address.ParseNetwork(network)
		if err != nil {
			return err
		}
		path, err := format.ParsePath(args[0])
		if err != nil {
			return err
		}

		ks := keystore.New()
		if err := ks.LoadMnemonic(mnemonic, passphrase); err != nil {
			return err
		}
		raw, err := ks.Address(n, path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), raw.String())
		return nil
	},
}

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic",
	Short: "Generate a seed phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := keystore.GenerateMnemonic(256)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m)
		return nil
	},
}
