// README: Feedback record; a sibling entity with no state machine.
package feedback

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StudentID *string   `json:"studentId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Rating    *int      `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
