package resolver

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"bazaarkart_be/config"
	"bazaarkart_be/helper/gmaps"
	"bazaarkart_be/model"
)

var (
	// ErrMalformedPincode: input bukan 6 digit, ditolak sebelum panggilan
	// jaringan apa pun.
	ErrMalformedPincode = errors.New("pincode must be exactly 6 digits")
	// ErrUnresolved: provider dan fallback heuristik sama-sama gagal.
	ErrUnresolved = errors.New("location could not be resolved")
)

var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// ValidPincode memeriksa format pincode tanpa menyentuh jaringan.
func ValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// Cache adalah cache pincode -> lokasi di depan provider. Mapping pincode ke
// lokasi praktis statis sehingga TTL-nya berhari-hari.
type Cache interface {
	Get(ctx context.Context, pincode string) (model.ResolvedLocation, bool)
	Put(ctx context.Context, pincode string, loc model.ResolvedLocation)
}

// Resolver menormalkan pincode menjadi ResolvedLocation lewat rantai
// fallback: cache -> query kode polos -> query berhint negara -> heuristik
// prefiks pincode.
type Resolver struct {
	Provider gmaps.Provider
	Cache    Cache
}

func New(provider gmaps.Provider, cache Cache) *Resolver {
	return &Resolver{Provider: provider, Cache: cache}
}

// Resolve menjalankan rantai fallback. Kegagalan provider (timeout, error
// transient) diperlakukan sebagai "tolak, coba query berikutnya" sehingga
// outage provider berakhir di jalur heuristik, bukan error total.
func (rs *Resolver) Resolve(ctx context.Context, pincode string) (model.ResolvedLocation, error) {
	if !ValidPincode(pincode) {
		return model.ResolvedLocation{}, ErrMalformedPincode
	}

	if rs.Cache != nil {
		if loc, ok := rs.Cache.Get(ctx, pincode); ok {
			return loc, nil
		}
	}

	if rs.Provider != nil {
		queries := []string{pincode, pincode + " " + config.CountryHint}
		for _, query := range queries {
			candidates, err := rs.Provider.Geocode(ctx, query)
			if err != nil {
				log.Printf("[WARNING] Geocode query %q failed: %v", query, err)
				continue
			}
			for _, candidate := range candidates {
				loc, ok := buildLocation(candidate, pincode)
				if !ok {
					continue
				}
				if rs.Cache != nil {
					rs.Cache.Put(ctx, pincode, loc)
				}
				return loc, nil
			}
		}
	}

	if loc, ok := heuristicResolve(pincode); ok {
		log.Printf("[INFO] Pincode %s resolved via prefix heuristic", pincode)
		return loc, nil
	}

	return model.ResolvedLocation{}, ErrUnresolved
}

// ResolvePlace me-resolve place-id provider menjadi lokasi ternormalisasi.
func (rs *Resolver) ResolvePlace(ctx context.Context, placeID string) (model.ResolvedLocation, error) {
	if rs.Provider == nil {
		return model.ResolvedLocation{}, ErrUnresolved
	}
	candidate, err := rs.Provider.PlaceDetails(ctx, placeID)
	if err != nil {
		log.Printf("[WARNING] Place details for %q failed: %v", placeID, err)
		return model.ResolvedLocation{}, ErrUnresolved
	}
	loc, ok := buildLocation(candidate, candidate.ComponentValue("postal_code"))
	if !ok {
		return model.ResolvedLocation{}, ErrUnresolved
	}
	return loc, nil
}

// buildLocation mengekstrak komponen terstruktur dari satu kandidat provider
// dan memutuskan apakah kandidat itu layak diterima.
//
// Penerimaan sengaja berupa disjungsi sinyal yang saling menguatkan: hasil
// provider berisik, strategi "hasil pertama menang" terlalu mudah menerima
// fallback kasar sekaligus menolak hasil benar yang minim detail.
func buildLocation(candidate gmaps.Candidate, pincode string) (model.ResolvedLocation, bool) {
	area := firstComponent(candidate, "sublocality", "locality", "neighborhood")
	district := firstComponent(candidate, "administrative_area_level_2", "administrative_area_level_3")
	if district == "" {
		// fallback: locality yang berbeda dari area terpilih
		if locality := candidate.ComponentValue("locality"); locality != "" && locality != area {
			district = locality
		}
	}

	state := candidate.ComponentValue("administrative_area_level_1")
	if state == "" {
		state = candidate.ComponentShortValue("administrative_area_level_1")
	}
	state = config.CanonicalState(state)
	country := candidate.ComponentValue("country")

	postalComponent := candidate.ComponentValue("postal_code")
	containsCode := pincode != "" && strings.Contains(candidate.FormattedAddress, pincode)

	// Tolak fallback generik: provider yang gagal me-resolve kode sering
	// mengembalikan centroid setingkat state tanpa komponen pincode.
	if postalComponent == "" && !containsCode {
		return model.ResolvedLocation{}, false
	}

	if state == "" {
		return model.ResolvedLocation{}, false
	}
	if postalComponent != pincode && !containsCode && area == "" && district == "" {
		return model.ResolvedLocation{}, false
	}

	area = config.CanonicalPlace(area)
	district = config.CanonicalPlace(district)

	// Hindari label dobel ketika area dan distrik sama persis.
	if area != "" && area == district {
		area = district + " City"
	}

	return model.ResolvedLocation{
		Pincode:          pincode,
		FormattedAddress: candidate.FormattedAddress,
		Area:             area,
		District:         district,
		State:            state,
		Country:          country,
		Lat:              candidate.Lat,
		Lon:              candidate.Lon,
		PlaceID:          candidate.PlaceID,
	}, true
}

func firstComponent(candidate gmaps.Candidate, types ...string) string {
	for _, t := range types {
		if value := candidate.ComponentValue(t); value != "" {
			return value
		}
	}
	return ""
}

// heuristicResolve mensintesis lokasi terdegradasi dari prefiks numerik
// pincode supaya sistem tetap jalan saat provider down, dengan mengorbankan
// presisi. Hasilnya tidak di-cache.
func heuristicResolve(pincode string) (model.ResolvedLocation, bool) {
	hint, ok := config.PincodePrefixes[pincode[:2]]
	if !ok {
		return model.ResolvedLocation{}, false
	}
	return model.ResolvedLocation{
		Pincode:          pincode,
		FormattedAddress: pincode + ", " + hint.State + ", " + config.CountryHint,
		State:            hint.State,
		Country:          config.CountryHint,
		Lat:              hint.Lat,
		Lon:              hint.Lon,
		Degraded:         true,
	}, true
}
