package model

import "time"

// Shop adalah record vendor di PostgreSQL. Kolom shipping_* adalah
// VendorShippingConfig yang dibaca rate engine saat quote.
type Shop struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID               int64     `gorm:"not null" json:"owner_id"`
	Name                  string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone                 string    `gorm:"type:varchar(15)" json:"phone"`
	Email                 string    `gorm:"type:varchar(100)" json:"email"`
	ShippingEnabled       bool      `gorm:"default:true" json:"shipping_enabled"`
	BaseRate              float64   `gorm:"type:numeric(10,2);default:0" json:"base_rate"`
	FreeShippingThreshold float64   `gorm:"type:numeric(10,2);default:0" json:"free_shipping_threshold"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ShopShipping adalah subset konfigurasi shop yang dibutuhkan rate engine.
type ShopShipping struct {
	ShopID                int64   `json:"shop_id"`
	ShippingEnabled       bool    `json:"shipping_enabled"`
	BaseRate              float64 `json:"base_rate"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
}

// LineItem adalah satu baris keranjang milik satu vendor.
type LineItem struct {
	ProductID int64   `json:"product_id"`
	ShopID    int64   `json:"shop_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	WeightKg  float64 `json:"weight_kg,omitempty"`
}

// CartGroup adalah partisi keranjang per vendor. Transien, dibuat per quote.
type CartGroup struct {
	ShopID     int64      `json:"shop_id"`
	Items      []LineItem `json:"items"`
	OrderValue float64    `json:"order_value"`
	WeightKg   float64    `json:"weight_kg"`
}

// VendorQuote adalah hasil perhitungan ongkir satu vendor.
type VendorQuote struct {
	ShopID        int64   `json:"shop_id"`
	Charge        float64 `json:"charge"`
	FreeShipping  bool    `json:"free_shipping"`
	EstimatedDays int     `json:"estimated_days,omitempty"`
	Failed        bool    `json:"failed"`
	Reason        string  `json:"reason,omitempty"`
}

// ShippingQuote adalah agregat quote seluruh keranjang. Partial true kalau
// minimal satu vendor gagal di-quote; vendor lain tetap dihitung.
type ShippingQuote struct {
	PerVendor []VendorQuote `json:"per_vendor"`
	Total     float64       `json:"total"`
	Partial   bool          `json:"partial"`
}
