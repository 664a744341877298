package routefile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/route-scout/internal/pkg/geo"
)

// parseKML extracts points from every <coordinates> element in the document,
// in document order. The scan is namespace-agnostic, so Placemark, Point,
// LineString and gx:Track geometries are all picked up. KML stores tuples as
// "lon,lat[,alt]"; altitude is ignored and lat/lon are swapped into place.
func parseKML(content []byte) ([]geo.Point, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var points []geo.Point
	inCoordinates := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode kml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			inCoordinates = t.Name.Local == "coordinates"
		case xml.EndElement:
			inCoordinates = false
		case xml.CharData:
			if !inCoordinates {
				continue
			}
			parsed, err := parseCoordinateText(string(t))
			if err != nil {
				return nil, err
			}
			points = append(points, parsed...)
		}
	}

	if len(points) == 0 {
		return nil, ErrNoCoordinates
	}

	return points, nil
}

// parseCoordinateText splits a KML coordinates block into points. Tuples are
// whitespace-separated, components comma-separated.
func parseCoordinateText(text string) ([]geo.Point, error) {
	var points []geo.Point

	for _, tuple := range strings.Fields(text) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}

		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parse kml longitude %q: %w", parts[0], err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse kml latitude %q: %w", parts[1], err)
		}

		p, err := geo.NewPoint(lat, lon)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}
