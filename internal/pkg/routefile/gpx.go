package routefile

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/route-scout/internal/pkg/geo"
)

type gpxFile struct {
	Tracks    []gpxTrack    `xml:"trk"`
	Routes    []gpxRoute    `xml:"rte"`
	Waypoints []gpxWaypoint `xml:"wpt"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxWaypoint `xml:"trkpt"`
}

type gpxRoute struct {
	Points []gpxWaypoint `xml:"rtept"`
}

type gpxWaypoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// parseGPX extracts points from GPX content. Track points take priority;
// route points and then waypoints are used as fallbacks, matching how
// recording apps structure their exports.
func parseGPX(content []byte) ([]geo.Point, error) {
	var g gpxFile
	if err := xml.NewDecoder(bytes.NewReader(content)).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode gpx: %w", err)
	}

	var points []geo.Point
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			for _, wp := range segment.Points {
				p, err := geo.NewPoint(wp.Lat, wp.Lon)
				if err != nil {
					return nil, err
				}
				points = append(points, p)
			}
		}
	}

	if len(points) == 0 {
		for _, route := range g.Routes {
			for _, wp := range route.Points {
				p, err := geo.NewPoint(wp.Lat, wp.Lon)
				if err != nil {
					return nil, err
				}
				points = append(points, p)
			}
		}
	}

	if len(points) == 0 {
		for _, wp := range g.Waypoints {
			p, err := geo.NewPoint(wp.Lat, wp.Lon)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
	}

	if len(points) == 0 {
		return nil, ErrNoCoordinates
	}

	return points, nil
}
