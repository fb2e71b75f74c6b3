package main

import (
	"os"

	"github.com/arthur-debert/hostboi/cmd/hostboi"
)

func main() {
	rootCmd := hostboi.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		hostboi.ReportError(rootCmd, err)
		os.Exit(1)
	}
}
