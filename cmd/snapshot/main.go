package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sentinel-snapshot/internal/adapters/copernicus"
)

// main is the application composition root.
// It hands OS fundamentals to run so the whole flow can be tested in-process.
func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err unless run already reported it: a failed image
// request has been printed to stdout with its status and body.
func reportError(w io.Writer, err error) {
	var apiErr *copernicus.APIError
	if errors.As(err, &apiErr) {
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}
