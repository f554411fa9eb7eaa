// README: Geographic point shared by the driver presence and geo index code.
package types

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
