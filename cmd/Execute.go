package cmd

import (
	"errors"
	"fmt"
	"os"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errCommandsFailed) {
			// The summary line has already been printed; just carry the verdict.
			exitFunc(1)
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
		return
	}
}
