package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/open-cli-collective/searchui-cli/internal/cmd/lint"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		// lint already printed its findings
		if !errors.Is(err, lint.ErrDiagnosticsFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
