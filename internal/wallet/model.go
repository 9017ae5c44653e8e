package wallet

import "time"

// Transaction is one point-earning (or spending) event in a user's
// ledger. Rows are append-only: nothing updates or deletes them.
type Transaction struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	Description string    `db:"description" json:"description"`
	Points      int       `db:"points" json:"points"`
	Date        time.Time `db:"date" json:"date"`
}

type BalanceResponse struct {
	TotalPoints int `json:"total_points"`
}
