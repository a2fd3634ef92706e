package model

// Dashboard is the admin overview of the seminar back office.
type Dashboard struct {
	TotalRegistrations  int             `json:"totalRegistrations"`
	TotalMessages       int             `json:"totalMessages"`
	UnreadMessages      int             `json:"unreadMessages"`
	TotalContestants    int             `json:"totalContestants"`
	TotalPanelists      int             `json:"totalPanelists"`
	LatestRegistrations []*Registration `json:"latestRegistrations"`
	EventDate           string          `json:"eventDate"`
	DaysToEvent         int             `json:"daysToEvent"`
}
