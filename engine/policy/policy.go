package policy

import (
	"context"
	"log"
	"strings"

	"bazaarkart_be/config"
	"bazaarkart_be/model"
)

// Store adalah akses baca ke registry PostalCode dan ServiceableArea.
// Mengembalikan (nil, nil) kalau record tidak ada.
type Store interface {
	PostalCode(ctx context.Context, code string) (*model.PostalCode, error)
	ServiceableArea(ctx context.Context, state string) (*model.ServiceableArea, error)
}

// Overrides adalah allow/deny list pincode milik satu produk.
type Overrides struct {
	Allow []string
	Deny  []string
}

// Policy memutuskan apakah sebuah lokasi bisa dilayani dan dengan ketentuan
// apa. Evaluasi berupa rantai tier berurutan yang berhenti di tier pertama
// yang match: data paling spesifik selalu menang atas data umum.
type Policy struct {
	Store Store
}

func New(store Store) *Policy {
	return &Policy{Store: store}
}

type tierFunc func(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult

// Check mengevaluasi urutan tier: allow-list produk, deny-list produk,
// registry pincode, registry area, default region, lalu tolak.
func (p *Policy) Check(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) model.ServiceabilityResult {
	tiers := []tierFunc{
		p.allowListTier,
		p.denyListTier,
		p.postalCodeTier,
		p.areaTier,
		p.regionDefaultTier,
	}
	for _, tier := range tiers {
		if result := tier(ctx, loc, ov); result != nil {
			return *result
		}
	}
	return model.ServiceabilityResult{
		Deliverable: false,
		Reason:      "delivery is not available for " + locationLabel(loc),
		Source:      "unserviceable",
	}
}

// allowListTier: vendor yang hanya mengirim ke daftar pincode eksplisit.
// Kalau allow-list terisi, semua sinyal lain diabaikan.
func (p *Policy) allowListTier(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult {
	if ov == nil || len(ov.Allow) == 0 {
		return nil
	}
	for _, code := range ov.Allow {
		if code == loc.Pincode {
			return &model.ServiceabilityResult{
				Deliverable: true,
				Source:      "allow_list",
			}
		}
	}
	return &model.ServiceabilityResult{
		Deliverable: false,
		Reason:      "this product does not ship to pincode " + loc.Pincode,
		Source:      "allow_list",
	}
}

func (p *Policy) denyListTier(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult {
	if ov == nil {
		return nil
	}
	for _, code := range ov.Deny {
		if code == loc.Pincode {
			return &model.ServiceabilityResult{
				Deliverable: false,
				Reason:      "this product is not deliverable to pincode " + loc.Pincode,
				Source:      "deny_list",
			}
		}
	}
	return nil
}

func (p *Policy) postalCodeTier(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult {
	if p.Store == nil {
		return nil
	}
	record, err := p.Store.PostalCode(ctx, loc.Pincode)
	if err != nil {
		log.Printf("[WARNING] Postal code lookup for %s failed: %v", loc.Pincode, err)
		return nil
	}
	if record == nil {
		return nil
	}
	if !record.DeliveryEnabled {
		return &model.ServiceabilityResult{
			Deliverable: false,
			Reason:      "delivery is currently disabled for pincode " + loc.Pincode,
			Source:      "postal_code",
		}
	}
	return &model.ServiceabilityResult{
		Deliverable:      true,
		EstimatedDays:    record.EstimatedDays,
		Charge:           record.ShippingCharge,
		CODAvailable:     record.CODAvailable,
		ExpressAvailable: record.ExpressAvailable,
		Source:           "postal_code",
	}
}

func (p *Policy) areaTier(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult {
	if p.Store == nil {
		return nil
	}
	area, err := p.Store.ServiceableArea(ctx, config.CanonicalState(loc.State))
	if err != nil {
		log.Printf("[WARNING] Serviceable area lookup for %s failed: %v", loc.State, err)
		return nil
	}
	if area == nil || !districtListed(area.Districts, loc.District) {
		return nil
	}
	if !area.DeliveryEnabled {
		return &model.ServiceabilityResult{
			Deliverable: false,
			Reason:      "delivery is currently disabled for " + locationLabel(loc),
			Source:      "serviceable_area",
		}
	}
	return &model.ServiceabilityResult{
		Deliverable:      true,
		EstimatedDays:    area.DefaultDays,
		Charge:           area.DefaultCharge,
		CODAvailable:     area.CODAvailable,
		ExpressAvailable: area.ExpressAvailable,
		Source:           "serviceable_area",
	}
}

// regionDefaultTier: kebijakan global untuk state yang dilayani tanpa data
// spesifik; distrik metro dapat estimasi lebih cepat dan tarif lebih murah.
func (p *Policy) regionDefaultTier(ctx context.Context, loc model.ResolvedLocation, ov *Overrides) *model.ServiceabilityResult {
	if !config.SupportedRootRegions[config.CanonicalState(loc.State)] {
		return nil
	}
	days := config.DefaultOutstationDays
	charge := config.DefaultOutstationCharge
	if config.MetroDistricts[config.CanonicalPlace(strings.TrimSpace(loc.District))] {
		days = config.DefaultMetroDays
		charge = config.DefaultMetroCharge
	}
	return &model.ServiceabilityResult{
		Deliverable:   true,
		EstimatedDays: days,
		Charge:        charge,
		CODAvailable:  true,
		Source:        "region_default",
	}
}

// districtListed membandingkan distrik hasil resolve dengan daftar distrik
// entri admin. Nama entri admin adalah teks bebas, jadi perbandingan
// dinormalkan (trim + alias rename + case-insensitive) tanpa mengubah data
// tersimpan.
func districtListed(districts []string, district string) bool {
	target := config.CanonicalPlace(strings.TrimSpace(district))
	if target == "" {
		return false
	}
	for _, d := range districts {
		if strings.EqualFold(config.CanonicalPlace(strings.TrimSpace(d)), target) {
			return true
		}
	}
	return false
}

func locationLabel(loc model.ResolvedLocation) string {
	parts := []string{}
	for _, part := range []string{loc.Area, loc.District, loc.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "pincode " + loc.Pincode
	}
	return strings.Join(parts, ", ")
}
