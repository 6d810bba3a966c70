package parser

import (
	. "github.com/ttpr0/go-navigation/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	IsLandmark(tags Dict[string, string]) bool
}

type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "unclassified": true, "road": true}

var landmark_types = Dict[string, Dict[string, bool]]{
	"amenity": {"university": true, "hospital": true, "cinema": true, "marketplace": true, "bus_station": true,
		"mall": true, "police": true, "fire_station": true, "fuel": true, "bank": true},
	"tourism":  {"attraction": true, "hotel": true, "museum": true, "theme_park": true},
	"shop":     {"mall": true, "supermarket": true},
	"historic": {"monument": true, "memorial": true},
	"building": {"train_station": true},
	"highway":  {"bus_stop": true},
}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !driving_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}

// Named features of one of the landmark kinds. Roads never are landmarks.
func (self *DrivingDecoder) IsLandmark(tags Dict[string, string]) bool {
	if tags.Get("name") == "" {
		return false
	}
	for key, values := range landmark_types {
		if values.ContainsKey(tags.Get(key)) {
			return true
		}
	}
	return false
}
