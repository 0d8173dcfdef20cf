package discovery

import (
	"fmt"
	"strings"
)

// attrMap is the single authoritative table mapping filter names to
// the query parameters the Discovery API expects (ex: market_id maps
// to marketId). It is used for both directions; init proves it is a
// bijection so decode and encode stay symmetric.
var attrMap = map[string]string{
	"start_date_time":        "startDateTime",
	"end_date_time":          "endDateTime",
	"onsale_start_date_time": "onsaleStartDateTime",
	"onsale_end_date_time":   "onsaleEndDateTime",
	"country_code":           "countryCode",
	"state_code":             "stateCode",
	"venue_id":               "venueId",
	"attraction_id":          "attractionId",
	"segment_id":             "segmentId",
	"segment_name":           "segmentName",
	"classification_name":    "classificationName",
	"classification_id":      "classificationId",
	"market_id":              "marketId",
	"promoter_id":            "promoterId",
	"dma_id":                 "dmaId",
	"include_tba":            "includeTBA",
	"include_tbd":            "includeTBD",
	"include_test":           "includeTest",
	"client_visibility":      "clientVisibility",
	"keyword":                "keyword",
	"id":                     "id",
	"sort":                   "sort",
	"page":                   "page",
	"size":                   "size",
	"locale":                 "locale",
	"latlong":                "latlong",
	"radius":                 "radius",
	"unit":                   "unit",
	"source":                 "source",
}

var attrMapInverse = make(map[string]string, len(attrMap))

func init() {
	for name, param := range attrMap {
		if prev, dup := attrMapInverse[param]; dup {
			panic(fmt.Sprintf("attrMap is not a bijection: %q and %q both map to %q", prev, name, param))
		}
		attrMapInverse[param] = name
	}
}

// apiParamName translates a filter name into its API query parameter.
// Names already in API form pass through.
func apiParamName(name string) string {
	if param, ok := attrMap[name]; ok {
		return param
	}
	return name
}

// filterName translates an API query parameter back into its filter
// name, false when the parameter is not in the table.
func filterName(param string) (string, bool) {
	name, ok := attrMapInverse[param]
	return name, ok
}

// yesNoOnly normalizes the values of parameters expecting
// yes/no/only, accepting true/false spellings as well.
func yesNoOnly(s string) string {
	s = strings.ToLower(s)
	switch s {
	case "true", "yes":
		return "yes"
	case "false", "no":
		return "no"
	}
	return s
}
