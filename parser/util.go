package parser

import (
	"math"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	. "github.com/ttpr0/go-navigation/util"
)

//*******************************************
// utility methods
//*******************************************

var name_replacer = strings.NewReplacer("'", "", "-", "_", ".", "", "/", "_")

// Turns an OSM name into a single whitespace free token. Runs of any
// unicode space become one underscore.
func CleanName(name string) string {
	return name_replacer.Replace(strings.Join(strings.FieldsFunc(name, unicode.IsSpace), "_"))
}

// Length of a polyline in meters.
func _LineLength(points List[orb.Point]) float64 {
	length := 0.0
	for i := 1; i < points.Length(); i++ {
		length += geo.Distance(points[i-1], points[i])
	}
	return length
}

func _Centroid(points List[orb.Point]) orb.Point {
	if points.Length() == 0 {
		return orb.Point{}
	}
	var lon, lat float64
	for _, p := range points {
		lon += p[0]
		lat += p[1]
	}
	n := float64(points.Length())
	return orb.Point{lon / n, lat / n}
}

// Index of the node closest to point, -1 if there are no nodes.
func _ClosestNode(nodes List[orb.Point], point orb.Point) int32 {
	closest := int32(-1)
	min_dist := math.Inf(1)
	for i, node := range nodes {
		dist := geo.Distance(node, point)
		if dist < min_dist {
			min_dist = dist
			closest = int32(i)
		}
	}
	return closest
}
