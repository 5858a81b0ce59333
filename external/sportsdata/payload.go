package sportsdata

type scoreboardEnvelope struct {
	Season struct {
		Year int `json:"year"`
	} `json:"season"`
	Week struct {
		Number int `json:"number"`
	} `json:"week"`
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status struct {
		Type struct {
			Name      string `json:"name"`
			Completed bool   `json:"completed"`
		} `json:"type"`
	} `json:"status"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Venue struct {
		FullName string `json:"fullName"`
	} `json:"venue"`
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
}

// splitStat holds one metric across windows. Absent windows stay nil.
type splitStat struct {
	Season *float64 `json:"season"`
	Last3  *float64 `json:"last3"`
	Last1  *float64 `json:"last1"`
	Home   *float64 `json:"home"`
	Away   *float64 `json:"away"`
}

type teamStatisticsEnvelope struct {
	Team struct {
		ID string `json:"id"`
	} `json:"team"`
	Season int `json:"season"`
	Stats  struct {
		YardsPerGame      splitStat `json:"yardsPerGame"`
		PointsPerGame     splitStat `json:"pointsPerGame"`
		TouchdownsPerGame splitStat `json:"touchdownsPerGame"`
		YardsPerPoint     splitStat `json:"yardsPerPoint"`
		Defense           struct {
			YardsAllowedPerGame  *float64 `json:"yardsAllowedPerGame"`
			PointsAllowedPerGame *float64 `json:"pointsAllowedPerGame"`
		} `json:"defense"`
		FPI struct {
			Overall *float64 `json:"overall"`
			Offense *float64 `json:"offense"`
			Defense *float64 `json:"defense"`
		} `json:"fpi"`
	} `json:"stats"`
}
