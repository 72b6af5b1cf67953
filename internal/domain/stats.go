package domain

type EngineStats struct {
	ActiveVibes   int64 `json:"active_vibes"`
	ActiveEvents  int64 `json:"active_events"`
	ActiveSOS     int64 `json:"active_sos"`
	ArchivedVibes int64 `json:"archived_vibes"`
	ArchivedSOS   int64 `json:"archived_sos"`
	ActiveZones   int   `json:"active_zones"`
}
