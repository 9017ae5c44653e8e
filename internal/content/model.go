package content

import "time"

// BlogPost is a read-only article for the site's blog page.
type BlogPost struct {
	ID       string    `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"`
	Date     time.Time `db:"date" json:"date"`
	Excerpt  string    `db:"excerpt" json:"excerpt"`
	ImageURL string    `db:"image_url" json:"imageUrl"`
}
