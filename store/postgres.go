package store

import (
	"context"
	"database/sql"
	"errors"

	"bazaarkart_be/config"
	"bazaarkart_be/model"
)

// VendorStore adalah sumber data rate engine: konfigurasi shop dari
// PostgreSQL, override produk dari MongoDB.
type VendorStore struct{}

func (VendorStore) ShopConfig(ctx context.Context, shopID int64) (*model.ShopShipping, error) {
	sqlDB, err := pgDB()
	if err != nil {
		return nil, err
	}

	var cfg model.ShopShipping
	query := `SELECT id, shipping_enabled, base_rate, free_shipping_threshold FROM shops WHERE id = $1`
	err = sqlDB.QueryRowContext(ctx, query, shopID).Scan(
		&cfg.ShopID, &cfg.ShippingEnabled, &cfg.BaseRate, &cfg.FreeShippingThreshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (VendorStore) ProductOverride(ctx context.Context, productID int64) (*model.ShippingOverride, error) {
	return ProductOverride(productID)
}

// ShopByOwner mencari shop milik satu akun. (nil, nil) kalau akun belum punya
// shop.
func ShopByOwner(ctx context.Context, ownerID int64) (*model.Shop, error) {
	sqlDB, err := pgDB()
	if err != nil {
		return nil, err
	}

	var shop model.Shop
	query := `SELECT id, owner_id, name, shipping_enabled, base_rate, free_shipping_threshold FROM shops WHERE owner_id = $1`
	err = sqlDB.QueryRowContext(ctx, query, ownerID).Scan(
		&shop.ID, &shop.OwnerID, &shop.Name, &shop.ShippingEnabled, &shop.BaseRate, &shop.FreeShippingThreshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func pgDB() (*sql.DB, error) {
	if config.PostgresDB == nil {
		return nil, errors.New("postgres is not configured")
	}
	return config.PostgresDB.DB()
}
