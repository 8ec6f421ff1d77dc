package resolver

import (
	"context"
	"errors"
	"testing"

	"bazaarkart_be/helper/gmaps"
	"bazaarkart_be/model"
)

type fakeProvider struct {
	responses map[string][]gmaps.Candidate
	errs      map[string]error
	details   map[string]gmaps.Candidate
	calls     []string
}

func (f *fakeProvider) Geocode(ctx context.Context, query string) ([]gmaps.Candidate, error) {
	f.calls = append(f.calls, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	return f.responses[query], nil
}

func (f *fakeProvider) PlaceDetails(ctx context.Context, placeID string) (gmaps.Candidate, error) {
	f.calls = append(f.calls, "place:"+placeID)
	if c, ok := f.details[placeID]; ok {
		return c, nil
	}
	return gmaps.Candidate{}, errors.New("place not found")
}

type fakeCache struct {
	entries map[string]model.ResolvedLocation
	puts    int
}

func (f *fakeCache) Get(ctx context.Context, pincode string) (model.ResolvedLocation, bool) {
	loc, ok := f.entries[pincode]
	return loc, ok
}

func (f *fakeCache) Put(ctx context.Context, pincode string, loc model.ResolvedLocation) {
	f.puts++
	f.entries[pincode] = loc
}

func comp(longName string, types ...string) gmaps.Component {
	return gmaps.Component{LongName: longName, ShortName: longName, Types: types}
}

func TestResolveRejectsMalformedBeforeNetwork(t *testing.T) {
	provider := &fakeProvider{}
	rs := New(provider, nil)

	for _, input := range []string{"", "12345", "1234567", "abcdef", "56000a", "56 001"} {
		_, err := rs.Resolve(context.Background(), input)
		if !errors.Is(err, ErrMalformedPincode) {
			t.Fatalf("input %q: expected ErrMalformedPincode, got %v", input, err)
		}
	}
	if len(provider.calls) != 0 {
		t.Fatalf("provider must not be called for malformed input, got %d calls", len(provider.calls))
	}
}

func TestResolveAcceptsExactPostalMatch(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string][]gmaps.Candidate{
			"560001": {{
				PlaceID:          "pl-blr",
				FormattedAddress: "Shivajinagar, Bengaluru, Karnataka 560001, India",
				Lat:              12.9833,
				Lon:              77.6089,
				Components: []gmaps.Component{
					comp("Shivajinagar", "sublocality", "sublocality_level_1"),
					comp("Bengaluru", "locality"),
					comp("Bangalore Urban", "administrative_area_level_2"),
					comp("Karnataka", "administrative_area_level_1"),
					comp("India", "country"),
					comp("560001", "postal_code"),
				},
			}},
		},
	}
	cache := &fakeCache{entries: map[string]model.ResolvedLocation{}}
	rs := New(provider, cache)

	loc, err := rs.Resolve(context.Background(), "560001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Area != "Shivajinagar" {
		t.Fatalf("area = %q, want Shivajinagar", loc.Area)
	}
	// nama distrik lama dari provider harus dinormalkan
	if loc.District != "Bengaluru Urban" {
		t.Fatalf("district = %q, want Bengaluru Urban", loc.District)
	}
	if loc.State != "Karnataka" || loc.Country != "India" {
		t.Fatalf("state/country = %q/%q", loc.State, loc.Country)
	}
	if loc.Degraded {
		t.Fatal("exact provider match must not be marked degraded")
	}
	if len(provider.calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(provider.calls))
	}
	if cache.puts != 1 {
		t.Fatalf("accepted result should be cached, puts = %d", cache.puts)
	}
}

func TestResolveRejectsCoarseFallbackThenRetries(t *testing.T) {
	// Respons pertama adalah centroid setingkat state tanpa komponen pincode:
	// harus ditolak, lalu query berhint negara dicoba.
	coarse := gmaps.Candidate{
		FormattedAddress: "Karnataka, India",
		Components: []gmaps.Component{
			comp("Karnataka", "administrative_area_level_1"),
			comp("India", "country"),
		},
	}
	good := gmaps.Candidate{
		FormattedAddress: "Jayanagar, Bengaluru, Karnataka 560041, India",
		Components: []gmaps.Component{
			comp("Jayanagar", "sublocality"),
			comp("Bangalore Urban", "administrative_area_level_2"),
			comp("Karnataka", "administrative_area_level_1"),
			comp("India", "country"),
			comp("560041", "postal_code"),
		},
	}
	provider := &fakeProvider{
		responses: map[string][]gmaps.Candidate{
			"560041":       {coarse},
			"560041 India": {good},
		},
	}
	rs := New(provider, nil)

	loc, err := rs.Resolve(context.Background(), "560041")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Area != "Jayanagar" {
		t.Fatalf("area = %q, want Jayanagar", loc.Area)
	}
	if len(provider.calls) != 2 {
		t.Fatalf("expected both fallback queries, got calls %v", provider.calls)
	}
}

func TestResolveAcceptsSparseResultWithCodeInAddress(t *testing.T) {
	// Hasil benar tapi minim detail: tidak ada area/distrik, kode muncul di
	// formatted address. Harus diterima.
	provider := &fakeProvider{
		responses: map[string][]gmaps.Candidate{
			"577101": {{
				FormattedAddress: "577101 Chikkamagaluru, Karnataka 577101, India",
				Components: []gmaps.Component{
					comp("Karnataka", "administrative_area_level_1"),
					comp("India", "country"),
					comp("577101", "postal_code"),
				},
			}},
		},
	}
	rs := New(provider, nil)

	loc, err := rs.Resolve(context.Background(), "577101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.State != "Karnataka" {
		t.Fatalf("state = %q, want Karnataka", loc.State)
	}
}

func TestResolveRenamesAreaEqualToDistrict(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string][]gmaps.Candidate{
			"570001": {{
				FormattedAddress: "Mysuru, Karnataka 570001, India",
				Components: []gmaps.Component{
					comp("Mysuru", "locality"),
					comp("Mysuru", "administrative_area_level_2"),
					comp("Karnataka", "administrative_area_level_1"),
					comp("India", "country"),
					comp("570001", "postal_code"),
				},
			}},
		},
	}
	rs := New(provider, nil)

	loc, err := rs.Resolve(context.Background(), "570001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.District != "Mysuru" {
		t.Fatalf("district = %q, want Mysuru", loc.District)
	}
	if loc.Area != "Mysuru City" {
		t.Fatalf("area = %q, want Mysuru City", loc.Area)
	}
}

func TestResolveNormalizesStateAlias(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string][]gmaps.Candidate{
			"560095": {{
				FormattedAddress: "Koramangala, Bengaluru 560095, India",
				Components: []gmaps.Component{
					comp("Koramangala", "sublocality"),
					comp("Mysore State", "administrative_area_level_1"),
					comp("India", "country"),
					comp("560095", "postal_code"),
				},
			}},
		},
	}
	rs := New(provider, nil)

	loc, err := rs.Resolve(context.Background(), "560095")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.State != "Karnataka" {
		t.Fatalf("state = %q, want Karnataka", loc.State)
	}
}

func TestResolveHeuristicWhenProviderDown(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{
			"560103":       errors.New("context deadline exceeded"),
			"560103 India": errors.New("context deadline exceeded"),
		},
	}
	rs := New(provider, nil)

	loc, err := rs.Resolve(context.Background(), "560103")
	if err != nil {
		t.Fatalf("expected degraded resolution, got error: %v", err)
	}
	if !loc.Degraded {
		t.Fatal("heuristic result must be marked degraded")
	}
	if loc.State != "Karnataka" {
		t.Fatalf("state = %q, want Karnataka", loc.State)
	}
	if loc.Lat == 0 || loc.Lon == 0 {
		t.Fatal("heuristic result must carry centroid coordinates")
	}
}

func TestResolveNilProviderUsesHeuristic(t *testing.T) {
	rs := New(nil, nil)

	loc, err := rs.Resolve(context.Background(), "560001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loc.Degraded {
		t.Fatal("expected degraded result without provider")
	}
}

func TestResolveUnresolvable(t *testing.T) {
	// tidak ada hasil provider, prefiks 99 tidak dikenal
	provider := &fakeProvider{}
	rs := New(provider, nil)

	_, err := rs.Resolve(context.Background(), "999999")
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
}

func TestResolveServedFromCache(t *testing.T) {
	cached := model.ResolvedLocation{Pincode: "560001", State: "Karnataka", District: "Bengaluru Urban"}
	cache := &fakeCache{entries: map[string]model.ResolvedLocation{"560001": cached}}
	provider := &fakeProvider{}
	rs := New(provider, cache)

	loc, err := rs.Resolve(context.Background(), "560001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != cached {
		t.Fatalf("expected cached location, got %+v", loc)
	}
	if len(provider.calls) != 0 {
		t.Fatal("provider must not be called on cache hit")
	}
}

func TestResolvePlace(t *testing.T) {
	provider := &fakeProvider{
		details: map[string]gmaps.Candidate{
			"pl-123": {
				PlaceID:          "pl-123",
				FormattedAddress: "Indiranagar, Bengaluru, Karnataka 560038, India",
				Components: []gmaps.Component{
					comp("Indiranagar", "sublocality"),
					comp("Bangalore Urban", "administrative_area_level_2"),
					comp("Karnataka", "administrative_area_level_1"),
					comp("India", "country"),
					comp("560038", "postal_code"),
				},
			},
		},
	}
	rs := New(provider, nil)

	loc, err := rs.ResolvePlace(context.Background(), "pl-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Pincode != "560038" || loc.Area != "Indiranagar" {
		t.Fatalf("unexpected location: %+v", loc)
	}

	if _, err := rs.ResolvePlace(context.Background(), "missing"); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved for unknown place, got %v", err)
	}
}
