package serviceability_changed

// changedEvent is the payload of the serviceability topic.
type changedEvent struct {
	Pincode        string `json:"pincode"`
	Provider       string `json:"provider"`
	TurnaroundDays *int   `json:"tat"`
	Deleted        bool   `json:"deleted"`
}
