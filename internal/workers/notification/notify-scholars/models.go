// internal/workers/notification/notify-scholars/models.go
package notifyscholars

type Input struct {
	RunID    string    `json:"runId"`
	Scholars []Scholar `json:"scholars"`
}

// Scholar pairs a selection result with the contact details collected during
// application intake.
type Scholar struct {
	Name       string  `json:"name"`
	Rank       int     `json:"rank"`
	TotalScore float64 `json:"totalScore"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
}

type Output struct {
	RunID      string   `json:"runId"`
	EmailsSent int      `json:"emailsSent"`
	SMSSent    int      `json:"smsSent"`
	Skipped    int      `json:"skipped"`
	Failures   []string `json:"failures,omitempty"`
}
