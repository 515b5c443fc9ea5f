package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSessionCommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	// Both session modes are first-class subcommands: collect drives
	// the live executor, simulate the collection simulator.
	for _, name := range []string{"collect", "simulate", "scan", "report", "forecast"} {
		assert.True(t, names[name], "missing subcommand %q", name)
	}
}

func TestSessionCommands_ShareSessionFlags(t *testing.T) {
	for _, name := range []string{"collect", "simulate"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())

		for _, flag := range []string{"source", "budget", "iterations", "throttle", "seed"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "%s missing --%s", name, flag)
		}
	}
}
