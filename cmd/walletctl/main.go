package main

import (
	"fmt"
	"os"

	"marketplace-wallet/config"
)

var Version = "dev"

func main() {
	rootCmd := newRootCmd(func(path string) (*config.Config, error) {
		return config.Load(path)
	}, os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
