// README: Common money value object used across modules.
package types

import "fmt"

// Money is an integer amount in the currency's minor unit. UGX has no
// fractional unit, so Amount is the fare in whole shillings.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
