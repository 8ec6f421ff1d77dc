package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bazaarkart_be/model"
)

type fakeStore struct {
	postal map[string]*model.PostalCode
	areas  map[string]*model.ServiceableArea
}

func (f *fakeStore) PostalCode(ctx context.Context, code string) (*model.PostalCode, error) {
	return f.postal[code], nil
}

func (f *fakeStore) ServiceableArea(ctx context.Context, state string) (*model.ServiceableArea, error) {
	return f.areas[state], nil
}

func emptyStore() *fakeStore {
	return &fakeStore{
		postal: map[string]*model.PostalCode{},
		areas:  map[string]*model.ServiceableArea{},
	}
}

func karnatakaLoc(pincode, district string) model.ResolvedLocation {
	return model.ResolvedLocation{
		Pincode:  pincode,
		District: district,
		State:    "Karnataka",
		Country:  "India",
	}
}

func TestAllowListWinsOverEverything(t *testing.T) {
	store := emptyStore()
	// 560002 global serviceable lewat registry pincode
	store.postal["560002"] = &model.PostalCode{
		Code: "560002", DeliveryEnabled: true, EstimatedDays: 2, ShippingCharge: 30,
	}
	p := New(store)
	ov := &Overrides{Allow: []string{"560001"}}

	res := p.Check(context.Background(), karnatakaLoc("560002", "Bengaluru Urban"), ov)
	require.False(t, res.Deliverable, "allow-list must reject codes outside the list even if globally serviceable")
	require.Equal(t, "allow_list", res.Source)

	res = p.Check(context.Background(), karnatakaLoc("560001", "Bengaluru Urban"), ov)
	require.True(t, res.Deliverable)
	require.Equal(t, "allow_list", res.Source)
}

func TestDenyListBlocksPincode(t *testing.T) {
	p := New(emptyStore())
	ov := &Overrides{Deny: []string{"560001"}}

	res := p.Check(context.Background(), karnatakaLoc("560001", "Bengaluru Urban"), ov)
	require.False(t, res.Deliverable)
	require.Equal(t, "deny_list", res.Source)

	// kode lain tetap jatuh ke tier berikutnya
	res = p.Check(context.Background(), karnatakaLoc("560002", "Bengaluru Urban"), ov)
	require.True(t, res.Deliverable)
	require.Equal(t, "region_default", res.Source)
}

func TestPostalCodeTierUsedBeforeArea(t *testing.T) {
	store := emptyStore()
	store.postal["560001"] = &model.PostalCode{
		Code: "560001", State: "Karnataka", DeliveryEnabled: true,
		EstimatedDays: 2, ShippingCharge: 35, CODAvailable: true, ExpressAvailable: true,
	}
	store.areas["Karnataka"] = &model.ServiceableArea{
		State: "Karnataka", Districts: []string{"Bengaluru Urban"},
		DeliveryEnabled: true, DefaultDays: 5, DefaultCharge: 60,
	}
	p := New(store)

	res := p.Check(context.Background(), karnatakaLoc("560001", "Bengaluru Urban"), nil)
	require.True(t, res.Deliverable)
	require.Equal(t, "postal_code", res.Source)
	require.Equal(t, 2, res.EstimatedDays)
	require.Equal(t, 35.0, res.Charge)
	require.True(t, res.ExpressAvailable)
}

func TestDisabledPostalCodeDenies(t *testing.T) {
	store := emptyStore()
	store.postal["560001"] = &model.PostalCode{Code: "560001", DeliveryEnabled: false}
	p := New(store)

	res := p.Check(context.Background(), karnatakaLoc("560001", "Bengaluru Urban"), nil)
	require.False(t, res.Deliverable)
	require.Equal(t, "postal_code", res.Source)
	require.NotEmpty(t, res.Reason)
}

func TestAreaTierMatchesNormalizedDistrict(t *testing.T) {
	store := emptyStore()
	store.areas["Karnataka"] = &model.ServiceableArea{
		State: "Karnataka", Districts: []string{" Bengaluru Urban "},
		DeliveryEnabled: true, DefaultDays: 4, DefaultCharge: 55, CODAvailable: true,
	}
	p := New(store)

	// provider mengembalikan nama distrik lama: harus tetap match
	res := p.Check(context.Background(), karnatakaLoc("560068", "Bangalore Urban"), nil)
	require.True(t, res.Deliverable)
	require.Equal(t, "serviceable_area", res.Source)
	require.Equal(t, 4, res.EstimatedDays)
	require.Equal(t, 55.0, res.Charge)
}

func TestAreaTierSkipsUnlistedDistrict(t *testing.T) {
	store := emptyStore()
	store.areas["Karnataka"] = &model.ServiceableArea{
		State: "Karnataka", Districts: []string{"Mysuru"},
		DeliveryEnabled: true, DefaultDays: 4, DefaultCharge: 55,
	}
	p := New(store)

	// distrik tidak terdaftar: jatuh ke default region, bukan ditolak
	res := p.Check(context.Background(), karnatakaLoc("580001", "Dharwad"), nil)
	require.True(t, res.Deliverable)
	require.Equal(t, "region_default", res.Source)
}

func TestRegionDefaultMetroVersusOutstation(t *testing.T) {
	p := New(emptyStore())

	metro := p.Check(context.Background(), karnatakaLoc("560001", "Bengaluru Urban"), nil)
	require.True(t, metro.Deliverable)
	require.Equal(t, 3, metro.EstimatedDays)
	require.Equal(t, 40.0, metro.Charge)

	outstation := p.Check(context.Background(), karnatakaLoc("583101", "Ballari"), nil)
	require.True(t, outstation.Deliverable)
	require.Equal(t, 7, outstation.EstimatedDays)
	require.Equal(t, 70.0, outstation.Charge)
}

func TestUnsupportedStateDenied(t *testing.T) {
	p := New(emptyStore())

	loc := model.ResolvedLocation{Pincode: "400001", District: "Mumbai", State: "Maharashtra"}
	res := p.Check(context.Background(), loc, nil)
	require.False(t, res.Deliverable)
	require.Equal(t, "unserviceable", res.Source)
	// alasan harus menyebut lokasi yang ditolak supaya UI bisa menampilkannya
	require.Contains(t, res.Reason, "Mumbai")
	require.Contains(t, res.Reason, "Maharashtra")
}
