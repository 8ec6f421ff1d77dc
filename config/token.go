package config

import (
	"log"
	"os"

	"bazaarkart_be/helper/gmaps"
)

var PRIVATEKEY = os.Getenv("PRIVATEKEY")
var PUBLICKEY = os.Getenv("PUBLICKEY")

var GMAPSKEY = os.Getenv("GMAPSKEY")

// Geocoder adalah provider geocoding global. Nil kalau GMAPSKEY tidak di-set;
// resolver akan langsung jatuh ke fallback heuristik.
var Geocoder gmaps.Provider

func init() {
	if GMAPSKEY == "" {
		log.Println("[WARNING] GMAPSKEY not set, geocoding provider disabled")
		return
	}
	provider, err := gmaps.NewGoogleProvider(GMAPSKEY)
	if err != nil {
		log.Printf("[ERROR] Failed to create geocoding provider: %v", err)
		return
	}
	Geocoder = provider
}
