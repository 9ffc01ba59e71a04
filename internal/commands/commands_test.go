package commands

import "testing"

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "run", "mockfeed"} {
		if !names[want] {
			t.Errorf("expected subcommand %q to be registered", want)
		}
	}

	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected persistent --config flag")
	}
}

func TestMockfeedFlags(t *testing.T) {
	if mockfeedCmd.Flags().Lookup("addr") == nil {
		t.Error("expected --addr flag on mockfeed")
	}
	if mockfeedCmd.Flags().Lookup("count") == nil {
		t.Error("expected --count flag on mockfeed")
	}
}
