package catalog

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID         string         `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Tagline    string         `db:"tagline" json:"tagline"`
	Price      int            `db:"price" json:"price"`
	ImageURL   string         `db:"image_url" json:"image_url"`
	Category   string         `db:"category" json:"category"`
	Occasion   string         `db:"occasion" json:"occasion"`
	Mood       string         `db:"mood" json:"mood"`
	PlayersMin int            `db:"players_min" json:"players_min"`
	PlayersMax string         `db:"players_max" json:"players_max"`
	Badges     pq.StringArray `db:"badges" json:"badges" swaggertype:"array,string"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

type PurchaseResponse struct {
	Message       string `json:"message"`
	PointsAwarded int    `json:"points_awarded"`
}
