package store

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bazaarkart_be/config"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/model"
)

const (
	PostalCodeCollection = "postalcodes"
	AreaCollection       = "serviceable_areas"
	OverrideCollection   = "shipping_overrides"
	GeocacheCollection   = "geocache"
)

// GeocacheTTL: data pincode -> lokasi hampir tidak pernah berubah, 30 hari.
const GeocacheTTL = 30 * 24 * time.Hour

// PolicyStore membaca registry PostalCode dan ServiceableArea dari MongoDB.
// Record yang tidak ada dikembalikan sebagai (nil, nil), bukan error.
type PolicyStore struct{}

func (PolicyStore) PostalCode(ctx context.Context, code string) (*model.PostalCode, error) {
	if config.Mongoconn == nil {
		return nil, nil
	}
	record, err := atdb.GetOneDoc[model.PostalCode](config.Mongoconn, PostalCodeCollection, bson.M{"code": code})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (PolicyStore) ServiceableArea(ctx context.Context, state string) (*model.ServiceableArea, error) {
	if config.Mongoconn == nil {
		return nil, nil
	}
	record, err := atdb.GetOneDoc[model.ServiceableArea](config.Mongoconn, AreaCollection, bson.M{"state": state})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ProductOverride mengambil pengaturan pengiriman khusus satu produk.
func ProductOverride(productID int64) (*model.ShippingOverride, error) {
	if config.Mongoconn == nil {
		return nil, nil
	}
	record, err := atdb.GetOneDoc[model.ShippingOverride](config.Mongoconn, OverrideCollection, bson.M{"product_id": productID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Geocache menyimpan hasil resolve pincode di mongo geo. Kegagalan cache tidak
// pernah menggagalkan resolve, hanya di-log.
type Geocache struct{}

func (Geocache) Get(ctx context.Context, pincode string) (model.ResolvedLocation, bool) {
	if config.MongoconnGeo == nil {
		return model.ResolvedLocation{}, false
	}
	entry, err := atdb.GetOneDoc[model.GeocacheEntry](config.MongoconnGeo, GeocacheCollection, bson.M{"pincode": pincode})
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("[WARNING] Geocache lookup for %s failed: %v", pincode, err)
		}
		return model.ResolvedLocation{}, false
	}
	if time.Now().After(entry.ExpiresAt) {
		// entri basi dibersihkan saat terbaca
		if _, err := atdb.DeleteOneDoc(config.MongoconnGeo, GeocacheCollection, bson.M{"pincode": pincode}); err != nil {
			log.Printf("[WARNING] Failed to evict stale geocache entry %s: %v", pincode, err)
		}
		return model.ResolvedLocation{}, false
	}
	return entry.Location, true
}

func (Geocache) Put(ctx context.Context, pincode string, loc model.ResolvedLocation) {
	if config.MongoconnGeo == nil {
		return
	}
	entry := model.GeocacheEntry{
		Pincode:   pincode,
		Location:  loc,
		ExpiresAt: time.Now().Add(GeocacheTTL),
	}
	if _, err := atdb.ReplaceOneDoc(config.MongoconnGeo, GeocacheCollection, bson.M{"pincode": pincode}, entry); err != nil {
		log.Printf("[WARNING] Failed to cache location for %s: %v", pincode, err)
	}
}
