package rate

import (
	"context"
	"log"
	"sort"
	"sync"

	"bazaarkart_be/engine/policy"
	"bazaarkart_be/helper/format"
	"bazaarkart_be/model"
)

// VendorStore adalah akses baca ke konfigurasi pengiriman vendor dan
// override per produk. Mengembalikan (nil, nil) kalau tidak ada.
type VendorStore interface {
	ShopConfig(ctx context.Context, shopID int64) (*model.ShopShipping, error)
	ProductOverride(ctx context.Context, productID int64) (*model.ShippingOverride, error)
}

// Checker adalah kontrak ServiceabilityPolicy yang dipakai engine; dipisah
// supaya bisa di-fake di test.
type Checker interface {
	Check(ctx context.Context, loc model.ResolvedLocation, ov *policy.Overrides) model.ServiceabilityResult
}

// Engine menghitung ongkir keranjangan multi-vendor: partisi per vendor,
// quote tiap grup secara independen, lalu agregasi.
type Engine struct {
	Vendors VendorStore
	Policy  Checker
}

func New(vendors VendorStore, checker Checker) *Engine {
	return &Engine{Vendors: vendors, Policy: checker}
}

// Partition membagi keranjang menjadi CartGroup per vendor, terurut shop id
// supaya hasil quote deterministik. Setiap line item masuk tepat satu grup.
func Partition(cart []model.LineItem) []model.CartGroup {
	byShop := make(map[int64]*model.CartGroup)
	for _, item := range cart {
		group, ok := byShop[item.ShopID]
		if !ok {
			group = &model.CartGroup{ShopID: item.ShopID}
			byShop[item.ShopID] = group
		}
		group.Items = append(group.Items, item)
		group.OrderValue += float64(item.Quantity) * item.UnitPrice

		weight := item.WeightKg
		if weight <= 0 {
			weight = 1
		}
		group.WeightKg += float64(item.Quantity) * weight
	}

	groups := make([]model.CartGroup, 0, len(byShop))
	for _, group := range byShop {
		group.OrderValue = format.Round2(group.OrderValue)
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ShopID < groups[j].ShopID })
	return groups
}

// Quote menghitung ongkir untuk seluruh keranjang. Quote per vendor berjalan
// paralel (dibatasi jumlah vendor di keranjang) dan hasil join selalu urut
// shop id, bukan urutan selesai. Grup yang gagal tetap muncul di PerVendor
// dengan alasannya tapi tidak menyumbang total.
func (e *Engine) Quote(ctx context.Context, cart []model.LineItem, loc model.ResolvedLocation) (model.ShippingQuote, error) {
	groups := Partition(cart)
	if len(groups) == 0 {
		return model.ShippingQuote{PerVendor: []model.VendorQuote{}}, nil
	}

	quotes := make([]model.VendorQuote, len(groups))
	var wg sync.WaitGroup
	for i := range groups {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quotes[i] = e.quoteGroup(ctx, groups[i], loc)
		}(i)
	}
	wg.Wait()

	// quote yang sudah disusul pembatalan (user ganti alamat) dibuang
	if err := ctx.Err(); err != nil {
		return model.ShippingQuote{}, err
	}

	result := model.ShippingQuote{PerVendor: quotes}
	for _, q := range quotes {
		if q.Failed {
			result.Partial = true
			continue
		}
		result.Total += q.Charge
	}
	result.Total = format.Round2(result.Total)
	return result, nil
}

// EstimateVendor adalah quote satu vendor untuk nilai order tertentu.
func (e *Engine) EstimateVendor(ctx context.Context, shopID int64, loc model.ResolvedLocation, orderValue float64) model.VendorQuote {
	group := model.CartGroup{ShopID: shopID, OrderValue: orderValue}
	return e.quoteGroup(ctx, group, loc)
}

func (e *Engine) quoteGroup(ctx context.Context, group model.CartGroup, loc model.ResolvedLocation) model.VendorQuote {
	quote := model.VendorQuote{ShopID: group.ShopID}

	cfg, err := e.Vendors.ShopConfig(ctx, group.ShopID)
	if err != nil {
		log.Printf("[ERROR] Failed to load shipping config for shop %d: %v", group.ShopID, err)
		quote.Failed = true
		quote.Reason = "vendor shipping configuration unavailable"
		return quote
	}
	if cfg == nil {
		quote.Failed = true
		quote.Reason = "vendor not found"
		return quote
	}
	// Dibedakan dari gratis ongkir: vendor ini memang tidak menawarkan
	// pengiriman.
	if !cfg.ShippingEnabled {
		quote.Failed = true
		quote.Reason = "shipping disabled, contact vendor"
		return quote
	}

	// Override per produk bisa memblokir seluruh grup.
	var explicitRate *float64
	overrideDays := 0
	for _, item := range group.Items {
		ov, err := e.Vendors.ProductOverride(ctx, item.ProductID)
		if err != nil {
			log.Printf("[WARNING] Override lookup for product %d failed: %v", item.ProductID, err)
			continue
		}
		if ov == nil {
			continue
		}
		res := e.Policy.Check(ctx, loc, &policy.Overrides{Allow: ov.AllowPincodes, Deny: ov.DenyPincodes})
		if !res.Deliverable && (res.Source == "allow_list" || res.Source == "deny_list") {
			quote.Failed = true
			quote.Reason = res.Reason
			return quote
		}
		if ov.BaseRate != nil {
			explicitRate = ov.BaseRate
		}
		if ov.MaxDays > 0 {
			overrideDays = ov.MaxDays
		}
	}

	baseCharge := cfg.BaseRate
	estimatedDays := overrideDays
	switch {
	case explicitRate != nil:
		baseCharge = *explicitRate
	case baseCharge <= 0:
		// vendor tanpa tarif flat sendiri memakai kebijakan lokasi
		res := e.Policy.Check(ctx, loc, nil)
		if !res.Deliverable {
			quote.Failed = true
			quote.Reason = res.Reason
			return quote
		}
		baseCharge = res.Charge
		if estimatedDays == 0 {
			estimatedDays = res.EstimatedDays
		}
	}

	quote.EstimatedDays = estimatedDays

	// Perbandingan threshold memakai >=, nilai order pas di threshold tetap
	// gratis.
	if cfg.FreeShippingThreshold > 0 && group.OrderValue >= cfg.FreeShippingThreshold {
		quote.Charge = 0
		quote.FreeShipping = true
		return quote
	}

	quote.Charge = format.Round2(baseCharge)
	return quote
}
