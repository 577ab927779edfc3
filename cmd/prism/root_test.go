package main

import (
	"strings"
	"testing"
)

func TestVersionStringCarriesBuildTime(t *testing.T) {
	if !strings.Contains(rootCmd.Version, Version) {
		t.Errorf("version %q does not contain %q", rootCmd.Version, Version)
	}
	if !strings.Contains(rootCmd.Version, BuildTime) {
		t.Errorf("version %q does not contain build time %q", rootCmd.Version, BuildTime)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"kinds", "describe", "apply"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}
