package config

// CountryHint dipakai resolver untuk query fallback ke provider geocoding.
var CountryHint = "India"

// SupportedRootRegions adalah daftar state yang dilayani kebijakan default.
// Perluasan area layanan cukup menambah entri di sini, bukan mengubah kode.
var SupportedRootRegions = map[string]bool{
	"Karnataka": true,
}

// StateAliases memetakan singkatan/varian nama state dari provider ke nama
// kanonik yang dipakai registry.
var StateAliases = map[string]string{
	"KA":         "Karnataka",
	"Karnatak":   "Karnataka",
	"Karnataka ": "Karnataka",
	"Mysore State": "Karnataka",
	"TN":         "Tamil Nadu",
	"MH":         "Maharashtra",
	"KL":         "Kerala",
	"AP":         "Andhra Pradesh",
	"TS":         "Telangana",
	"DL":         "Delhi",
}

// CityRenames memetakan nama kota/distrik lama ke nama resminya sekarang.
// Provider geocoding masih sering mengembalikan nama lama.
var CityRenames = map[string]string{
	"Bangalore":       "Bengaluru",
	"Bangalore Urban": "Bengaluru Urban",
	"Bangalore Rural": "Bengaluru Rural",
	"Mysore":          "Mysuru",
	"Mangalore":       "Mangaluru",
	"Belgaum":         "Belagavi",
	"Gulbarga":        "Kalaburagi",
	"Bellary":         "Ballari",
	"Bijapur":         "Vijayapura",
	"Tumkur":          "Tumakuru",
	"Shimoga":         "Shivamogga",
	"Hospet":          "Hosapete",
	"Chikmagalur":     "Chikkamagaluru",
}

// MetroDistricts mendapat estimasi pengiriman cepat dan tarif dasar lebih
// murah pada kebijakan default.
var MetroDistricts = map[string]bool{
	"Bengaluru Urban": true,
	"Bengaluru Rural": true,
	"Mysuru":          true,
	"Mangaluru":       true,
	"Dakshina Kannada": true,
}

// Tarif dan estimasi default ketika tidak ada data pincode/area.
var (
	DefaultMetroDays        = 3
	DefaultOutstationDays   = 7
	DefaultMetroCharge      = 40.0
	DefaultOutstationCharge = 70.0
)

// RegionHint adalah perkiraan lokasi dari prefiks pincode, dipakai saat
// provider geocoding tidak bisa me-resolve kode.
type RegionHint struct {
	State string
	Lat   float64
	Lon   float64
}

// PincodePrefixes memetakan dua digit awal pincode ke perkiraan region.
// 56xxxx-59xxxx adalah blok pincode Karnataka.
var PincodePrefixes = map[string]RegionHint{
	"56": {State: "Karnataka", Lat: 12.9716, Lon: 77.5946},
	"57": {State: "Karnataka", Lat: 12.2958, Lon: 76.6394},
	"58": {State: "Karnataka", Lat: 15.3647, Lon: 75.1240},
	"59": {State: "Karnataka", Lat: 16.1850, Lon: 75.6961},
}

// CanonicalState menormalkan nama state dari provider ke nama kanonik.
func CanonicalState(state string) string {
	if canonical, ok := StateAliases[state]; ok {
		return canonical
	}
	return state
}

// CanonicalPlace menormalkan nama kota/distrik yang sudah berganti nama.
func CanonicalPlace(name string) string {
	if renamed, ok := CityRenames[name]; ok {
		return renamed
	}
	return name
}
