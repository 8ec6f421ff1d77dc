package gmaps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Component adalah satu komponen alamat hasil geocoding (mis. locality,
// administrative_area_level_1).
type Component struct {
	LongName  string
	ShortName string
	Types     []string
}

// Candidate adalah satu kandidat hasil geocoding dari provider.
type Candidate struct {
	PlaceID          string
	FormattedAddress string
	Components       []Component
	Lat              float64
	Lon              float64
	PartialMatch     bool
}

// ComponentValue mengembalikan long_name komponen pertama yang bertipe
// componentType, atau string kosong.
func (c Candidate) ComponentValue(componentType string) string {
	for _, comp := range c.Components {
		for _, t := range comp.Types {
			if t == componentType {
				return comp.LongName
			}
		}
	}
	return ""
}

// ComponentShortValue seperti ComponentValue tetapi mengembalikan short_name.
func (c Candidate) ComponentShortValue(componentType string) string {
	for _, comp := range c.Components {
		for _, t := range comp.Types {
			if t == componentType {
				return comp.ShortName
			}
		}
	}
	return ""
}

// Provider adalah kontrak sempit ke penyedia geocoding eksternal supaya
// resolver bisa diuji tanpa akses jaringan.
type Provider interface {
	Geocode(ctx context.Context, query string) ([]Candidate, error)
	PlaceDetails(ctx context.Context, placeID string) (Candidate, error)
}

// GoogleProvider mengimplementasikan Provider di atas Google Maps Geocoding
// dan Places API. Setiap panggilan dibatasi timeout pendek supaya resolver
// tidak menggantung ketika provider bermasalah.
type GoogleProvider struct {
	client  *maps.Client
	timeout time.Duration
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %v", err)
	}
	return &GoogleProvider{client: client, timeout: 4 * time.Second}, nil
}

func (g *GoogleProvider) Geocode(ctx context.Context, query string) ([]Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %v", err)
	}

	candidates := make([]Candidate, 0, len(results))
	for _, res := range results {
		candidates = append(candidates, fromGeocodingResult(res))
	}
	return candidates, nil
}

func (g *GoogleProvider) PlaceDetails(ctx context.Context, placeID string) (Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID})
	if err != nil {
		return Candidate{}, fmt.Errorf("place details request failed: %v", err)
	}

	candidate := Candidate{
		PlaceID:          res.PlaceID,
		FormattedAddress: res.FormattedAddress,
		Lat:              res.Geometry.Location.Lat,
		Lon:              res.Geometry.Location.Lng,
	}
	for _, comp := range res.AddressComponents {
		candidate.Components = append(candidate.Components, Component{
			LongName:  comp.LongName,
			ShortName: comp.ShortName,
			Types:     comp.Types,
		})
	}
	return candidate, nil
}

func fromGeocodingResult(res maps.GeocodingResult) Candidate {
	candidate := Candidate{
		PlaceID:          res.PlaceID,
		FormattedAddress: res.FormattedAddress,
		Lat:              res.Geometry.Location.Lat,
		Lon:              res.Geometry.Location.Lng,
		PartialMatch:     res.PartialMatch,
	}
	for _, comp := range res.AddressComponents {
		candidate.Components = append(candidate.Components, Component{
			LongName:  comp.LongName,
			ShortName: comp.ShortName,
			Types:     comp.Types,
		})
	}
	return candidate
}
