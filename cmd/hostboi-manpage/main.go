package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/hostboi/cmd/hostboi"
	"github.com/arthur-debert/hostboi/internal/version"
)

func main() {
	rootCmd := hostboi.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HOSTBOI",
		Section: "1",
		Source:  "hostboi " + version.Version,
		Manual:  "hostboi manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
