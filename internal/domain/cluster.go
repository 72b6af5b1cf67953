package domain

// NeighborhoodCluster is a derived grouping of nearby reports. Recomputed on
// demand, never persisted.
type NeighborhoodCluster struct {
	Location     Coordinate `json:"location"`
	DominantVibe string     `json:"dominant_vibe"`
	VibeScore    int        `json:"vibe_score"`
	ReportCount  int        `json:"report_count"`
	DistanceKm   float64    `json:"distance_km"`
}

type CommunityScore struct {
	Score        int    `json:"score"`
	DominantVibe string `json:"dominant_vibe"`
	ReportCount  int    `json:"report_count"`
}
