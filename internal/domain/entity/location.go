package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Location ubicación resuelta por el servicio de geocodificación.
// Se adjunta al detalle en lectura; nunca se persiste.
type Location struct {
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	Type               string          `json:"type"`
	Name               string          `json:"name"`
	Number             *string         `json:"number,omitempty"`
	PostalCode         *string         `json:"postal_code,omitempty"`
	Street             *string         `json:"street,omitempty"`
	Confidence         decimal.Decimal `json:"confidence"` // 0..1
	Region             *string         `json:"region,omitempty"`
	RegionCode         *string         `json:"region_code,omitempty"`
	County             *string         `json:"county,omitempty"`
	Locality           *string         `json:"locality,omitempty"`
	AdministrativeArea json.RawMessage `json:"administrative_area,omitempty"`
	Neighbourhood      *string         `json:"neighbourhood,omitempty"`
	Country            *string         `json:"country,omitempty"`
	CountryCode        *string         `json:"country_code,omitempty"`
	Continent          *string         `json:"continent,omitempty"`
	Label              *string         `json:"label,omitempty"`
}

// MarshalJSON escribe confidence como número JSON, igual que lo entrega el proveedor.
func (l Location) MarshalJSON() ([]byte, error) {
	type plain Location
	return json.Marshal(struct {
		plain
		Confidence json.Number `json:"confidence"`
	}{plain: plain(l), Confidence: json.Number(l.Confidence.String())})
}
