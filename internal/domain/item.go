package domain

// Item is a category of recyclable material (e.g. batteries, lamps).
// The catalog is seeded once and read-only to the API.
type Item struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}
