package nearest

import (
	"encoding/json"
	"errors"
	"strings"
)

//*******************************************
// match modes
//*******************************************

type MatchMode byte

const (
	// normalized name contains the keyword
	SUBSTRING MatchMode = 0
	// keyword appears between underscores or at either end of the name
	WHOLE_WORD MatchMode = 1
	// name contains "petrol_pump" or "petrol_station", the keyword is ignored
	COMPOUND_OR MatchMode = 2
)

var fuel_keywords = [2]string{"petrol_pump", "petrol_station"}

func (self MatchMode) String() string {
	switch self {
	case SUBSTRING:
		return "substring"
	case WHOLE_WORD:
		return "whole-word"
	case COMPOUND_OR:
		return "compound"
	default:
		panic("unknown match mode")
	}
}
func (self MatchMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}

func MatchModeFromString(s string) (MatchMode, error) {
	switch s {
	case "substring":
		return SUBSTRING, nil
	case "whole-word":
		return WHOLE_WORD, nil
	case "compound":
		return COMPOUND_OR, nil
	default:
		return SUBSTRING, errors.New("unknown match mode")
	}
}

// Tests a normalized landmark name against a normalized keyword.
func (self MatchMode) Matches(name string, keyword string) bool {
	switch self {
	case SUBSTRING:
		return strings.Contains(name, keyword)
	case WHOLE_WORD:
		return strings.Contains("_"+name+"_", "_"+keyword+"_")
	case COMPOUND_OR:
		return strings.Contains(name, fuel_keywords[0]) || strings.Contains(name, fuel_keywords[1])
	default:
		return false
	}
}

//*******************************************
// facility presets
//*******************************************

type Facility struct {
	Mode    MatchMode `json:"mode"`
	Keyword string    `json:"keyword"`
}

var facilities = map[string]Facility{
	"police":   {SUBSTRING, "police"},
	"hospital": {SUBSTRING, "hospital"},
	"fire":     {SUBSTRING, "fire"},
	"bus":      {WHOLE_WORD, "bus"},
	"fuel":     {COMPOUND_OR, "petrol"},
}

// Returns the search settings of a named facility kind.
func FacilityFor(name string) (Facility, bool) {
	f, ok := facilities[strings.ToLower(name)]
	return f, ok
}
