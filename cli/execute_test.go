package cli

import (
	"testing"
)

func TestExecuteWrapper(t *testing.T) {
	defer resetCLI()
	// force a fresh session so PersistentPreRunE runs the real setup
	sess = nil
	rootCmd.PersistentFlags().Set("seed", "builtin")
	rootCmd.SetArgs([]string{"products"})
	if _, err := captureOutput(Execute); err != nil {
		t.Fatalf("Execute wrapper failed: %v", err)
	}
}
