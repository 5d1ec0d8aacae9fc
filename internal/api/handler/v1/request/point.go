package request

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreatePointRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
	Items     []uint  `json:"items"`
}

func (req *CreatePointRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Whatsapp, validation.Required, validation.Length(8, 20)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.UF, validation.Required, validation.Length(2, 2)),
		validation.Field(&req.Items, validation.Required, validation.Length(1, 0)),
	)
}

// ParseItemIDs parses a comma-separated list of item ids, as sent on
// GET /points ("1, 2,3"). Entries are trimmed; anything that is not a
// positive integer is rejected.
func ParseItemIDs(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return []uint{}, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q", strings.TrimSpace(part))
		}

		ids = append(ids, uint(id))
	}

	return ids, nil
}
