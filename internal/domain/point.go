package domain

// Point is a registered physical collection location for recyclable materials.
type Point struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
	Image     string  `json:"image"`
}

// PointDetail is a point together with the titles of the item
// categories it accepts.
type PointDetail struct {
	Point Point    `json:"point"`
	Items []string `json:"items"`
}
