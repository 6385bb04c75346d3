package models

type MatchType string

const (
	MatchTypeExact  MatchType = "exact"
	MatchTypeNearby MatchType = "nearby"
)

// DriverMatch is one candidate driver for a requested route, with the price
// that was resolved for it and the composite score used for ranking.
type DriverMatch struct {
	Driver      Driver    `json:"driver"`
	Price       int       `json:"price"`
	RouteKey    string    `json:"route_key"`
	MatchType   MatchType `json:"match_type"`
	ViaLocation string    `json:"via_location,omitempty"`
	MatchScore  float64   `json:"match_score"`
}

// MatchResult is the ranked candidate list plus the three recommendation
// slots the clients render.
type MatchResult struct {
	From        string        `json:"from"`
	To          string        `json:"to"`
	Matches     []DriverMatch `json:"matches"`
	BestValue   *DriverMatch  `json:"best_value,omitempty"`
	LowestPrice *DriverMatch  `json:"lowest_price,omitempty"`
	BestRated   *DriverMatch  `json:"best_rated,omitempty"`
}
