package event

import "time"

type Event struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Date        time.Time `db:"date" json:"date"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	Price       int       `db:"price" json:"price"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	IsPast      bool      `db:"is_past" json:"is_past"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Registration struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	EventID   string    `db:"event_id" json:"event_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RegistrationWithEvent struct {
	Registration
	EventName string    `db:"event_name" json:"event_name"`
	EventDate time.Time `db:"event_date" json:"event_date"`
	Location  string    `db:"location" json:"location"`
}

type RegisterResponse struct {
	Message       string `json:"message"`
	PointsAwarded int    `json:"points_awarded"`
}
