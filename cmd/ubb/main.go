package main

import (
	"os"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		root.ReportError(cmd, err)
		os.Exit(1)
	}
}
