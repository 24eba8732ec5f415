package main

import "testing"

func TestRootCommand_RegistersAllOperations(t *testing.T) {
	t.Parallel()

	commands := []string{
		"access-schemas",
		"integration-schemas",
		"create-access-config",
		"create-integration-config",
		"latest-execution",
		"provision",
	}

	for _, name := range commands {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd == nil || cmd.Name() != name {
			t.Fatalf("%s command not registered: cmd=%v err=%v", name, cmd, err)
		}
	}
}

func TestSubcommandsAcceptTokenAndOrgPositionals(t *testing.T) {
	t.Parallel()

	cmd, _, err := rootCmd.Find([]string{"provision"})
	if err != nil {
		t.Fatalf("Find(provision) error = %v", err)
	}
	if err := cmd.Args(cmd, []string{"Token AAA", "org-1"}); err != nil {
		t.Fatalf("two positionals should be accepted: %v", err)
	}
	if err := cmd.Args(cmd, []string{"Token AAA", "org-1", "extra"}); err == nil {
		t.Fatal("three positionals should be rejected")
	}
}
