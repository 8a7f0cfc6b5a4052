package model

// DashboardStats are the aggregate counters served to the dashboard.
// AverageProcessingTime is a humanized duration ("1.2s") or "N/A" when no
// documents have been processed yet.
type DashboardStats struct {
	DocumentsProcessed    int    `json:"documentsProcessed"`
	RiskyDocuments        int    `json:"riskyDocuments"`
	AverageProcessingTime string `json:"averageProcessingTime"`
}

// Settings is the flat application settings mapping. There is no backing
// store: GET returns env-derived defaults and PUT echoes the merged input.
type Settings struct {
	Endpoint             string  `json:"endpoint"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	RiskThreshold        float64 `json:"riskThreshold"`
	RetentionDays        int     `json:"retentionDays"`
}
