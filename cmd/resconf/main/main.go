package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/resconf/cmd/resconf"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/output"
)

func main() {
	rootCmd := resconf.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger := logging.WithFields(errors.GetErrorDetails(err))
		logger.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Command failed")

		errorStyle := output.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// No match is an answer, not a usage problem
		if errors.IsErrorCode(err, errors.ErrNoMatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
