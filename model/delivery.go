package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostalCode adalah override admin per-pincode. Paling banyak satu record per
// kode (upsert by code).
type PostalCode struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Code             string             `bson:"code" json:"code"`
	State            string             `bson:"state" json:"state"`
	DeliveryEnabled  bool               `bson:"delivery_enabled" json:"delivery_enabled"`
	EstimatedDays    int                `bson:"estimated_days" json:"estimated_days"`
	ShippingCharge   float64            `bson:"shipping_charge" json:"shipping_charge"`
	CODAvailable     bool               `bson:"cod_available" json:"cod_available"`
	ExpressAvailable bool               `bson:"express_available" json:"express_available"`
}

// ServiceableArea adalah region kurasi admin (state + daftar distrik) dengan
// ketentuan pengiriman default, dipakai saat tidak ada override pincode.
type ServiceableArea struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	State            string             `bson:"state" json:"state"`
	Districts        []string           `bson:"districts" json:"districts"`
	DeliveryEnabled  bool               `bson:"delivery_enabled" json:"delivery_enabled"`
	DefaultDays      int                `bson:"default_days" json:"default_days"`
	DefaultCharge    float64            `bson:"default_charge" json:"default_charge"`
	CODAvailable     bool               `bson:"cod_available" json:"cod_available"`
	ExpressAvailable bool               `bson:"express_available" json:"express_available"`
}

// ResolvedLocation adalah hasil normalisasi pincode/place-id. Transien,
// dibuat per request.
type ResolvedLocation struct {
	Pincode          string  `bson:"pincode" json:"pincode"`
	FormattedAddress string  `bson:"formatted_address" json:"formatted_address"`
	Area             string  `bson:"area" json:"area"`
	District         string  `bson:"district" json:"district"`
	State            string  `bson:"state" json:"state"`
	Country          string  `bson:"country" json:"country"`
	Lat              float64 `bson:"lat" json:"lat"`
	Lon              float64 `bson:"lon" json:"lon"`
	PlaceID          string  `bson:"place_id,omitempty" json:"place_id,omitempty"`
	// Degraded true kalau lokasi disintesis dari prefiks pincode karena
	// provider geocoding gagal.
	Degraded bool `bson:"degraded,omitempty" json:"degraded,omitempty"`
}

// GeocacheEntry adalah dokumen cache pincode -> lokasi di mongo geo.
type GeocacheEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Pincode   string             `bson:"pincode" json:"pincode"`
	Location  ResolvedLocation   `bson:"location" json:"location"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
}

// ServiceabilityResult adalah keputusan kebijakan untuk satu lokasi.
type ServiceabilityResult struct {
	Deliverable      bool    `json:"deliverable"`
	Reason           string  `json:"reason,omitempty"`
	EstimatedDays    int     `json:"estimated_days,omitempty"`
	Charge           float64 `json:"charge"`
	CODAvailable     bool    `json:"cod_available"`
	ExpressAvailable bool    `json:"express_available"`
	// Source mencatat tier mana yang memutuskan: allow_list, deny_list,
	// postal_code, serviceable_area, region_default, unserviceable
	Source string `json:"source,omitempty"`
}

// ShippingOverride adalah pengaturan pengiriman khusus per produk milik
// vendor: allow-list/deny-list pincode dan tarif eksplisit.
type ShippingOverride struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID     int64              `bson:"product_id" json:"product_id"`
	ShopID        int64              `bson:"shop_id" json:"shop_id"`
	AllowPincodes []string           `bson:"allow_pincodes,omitempty" json:"allow_pincodes,omitempty"`
	DenyPincodes  []string           `bson:"deny_pincodes,omitempty" json:"deny_pincodes,omitempty"`
	BaseRate      *float64           `bson:"base_rate,omitempty" json:"base_rate,omitempty"`
	MinDays       int                `bson:"min_days,omitempty" json:"min_days,omitempty"`
	MaxDays       int                `bson:"max_days,omitempty" json:"max_days,omitempty"`
}
