// Command gen-icons packs the material-design-icons baseline rasters into an
// embeddable Go package.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kenshaw/mdicons/gen"
)

func main() {
	err := gen.Run(os.Args)
	var uerr *gen.UsageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp), errors.As(err, &uerr):
		// usage and flag errors are already printed
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(gen.ExitCode(err))
}
