package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func run(t *testing.T, args ...string) (string, error) {
	t.Cleanup(func() { mnemonic, network, passphrase, logFile = "", "mainnet", "", "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAddressCommand(t *testing.T) {
	out, err := run(t, "address", "--mnemonic", testMnemonic, "m/44'/429'/0'/0/0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "9"), out)

	testnet, err := run(t, "address", "--network", "testnet", "--mnemonic", testMnemonic, "m/44'/429'/0'/0/0")
	require.NoError(t, err)
	assert.NotEqual(t, out, testnet)

	_, err = run(t, "address", "m/44'/429'/0'/0/0")
	assert.Error(t, err)
	_, err = run(t, "address", "--mnemonic", testMnemonic, "44/429")
	assert.Error(t, err)
}

func TestMnemonicCommand(t *testing.T) {
	out, err := run(t, "mnemonic")
	require.NoError(t, err)
	assert.True(t, bip39.IsMnemonicValid(out))
	assert.Len(t, strings.Fields(out), 24)
}
