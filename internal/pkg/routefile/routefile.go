// Package routefile extracts route geometry from uploaded KML and GPX files.
package routefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/route-scout/internal/pkg/geo"
)

// ErrUnsupportedFormat is returned for file formats other than kml and gpx
var ErrUnsupportedFormat = errors.New("unsupported route file format")

// ErrNoCoordinates is returned when a file parses but contains no usable points
var ErrNoCoordinates = errors.New("route file contains no coordinates")

// Parse extracts an ordered list of route points from file content.
// format is the file extension ("kml" or "gpx"), case-insensitive.
func Parse(content []byte, format string) ([]geo.Point, error) {
	switch strings.ToLower(format) {
	case "gpx":
		return parseGPX(content)
	case "kml":
		return parseKML(content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
