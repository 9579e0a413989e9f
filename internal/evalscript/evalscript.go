// Package evalscript provides the shading script evaluated per pixel by the
// Process API.
package evalscript

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultBrightness matches the exposure baked into the built-in script.
const DefaultBrightness = 2.0

const exposurePlaceholder = "let exposure = 2;"

// trueColor renders bands B04, B03, B02 as RGB. Raw reflectance is dark, so
// every band is multiplied by an exposure factor.
const trueColor = `//VERSION=3
function setup() {
  return {
    input: ["B02", "B03", "B04"],
    output: { bands: 3 },
  }
}
function evaluatePixel(sample) {
  let exposure = 2;
  return [sample.B04 * exposure, sample.B03 * exposure, sample.B02 * exposure];
}
`

// Default returns the built-in true-colour script with the exposure set to brightness.
func Default(brightness float64) string {
	exposure := strconv.FormatFloat(brightness, 'f', -1, 64)
	return strings.Replace(trueColor, exposurePlaceholder, "let exposure = "+exposure+";", 1)
}

// Resolve returns the script to send with a request.
//
// A path of one character or less means no custom script. An unreadable file
// is logged and replaced by the built-in script; a readable empty file is
// returned as-is.
func Resolve(path string, brightness float64, logger *slog.Logger) string {
	if len(path) <= 1 {
		return Default(brightness)
	}

	script, err := Load(path)
	if err != nil {
		logger.Warn("cannot read evalscript, using default", "path", path, "err", err)
		return Default(brightness)
	}

	logger.Debug("using custom evalscript", "path", path, "bytes", len(script))
	return script
}

// Load reads a custom script and fails instead of falling back.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load evalscript %q: %w", path, err)
	}
	return string(b), nil
}
