package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ftl-tools",
	Short: "Serve and exercise FTL tool components",
	Long: `ftl-tools hosts tool components over the FTL dispatch protocol.

The serve command exposes registered tools over HTTP: GET / lists tool
metadata and POST /{name} invokes a tool. Tools can be sourced from an
OpenAPI specification, in which case calls are proxied to the upstream API.

The token command generates signed test tokens for exercising deployments
that sit behind the authorizer gateway.`,
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
