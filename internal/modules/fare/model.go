// README: Fare estimate value object returned by the calculator.
package fare

// Estimate is computed on demand and never persisted; only Total is frozen
// onto a ride at booking time. The itemized fields are display values: each
// is discounted and rounded independently, so they do not necessarily sum to
// Total. That matches the published breakdown and is not a cross-check.
type Estimate struct {
	BaseFare      int64   `json:"baseFare"`
	DistanceFare  int64   `json:"distanceFare"`
	TimeFare      int64   `json:"timeFare"`
	Total         int64   `json:"total"`
	SharedTotal   int64   `json:"sharedTotal"`
	Distance      float64 `json:"distance"`
	EstimatedTime int     `json:"estimatedTime"`
	Currency      string  `json:"currency"`
}
