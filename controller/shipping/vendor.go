package shipping

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bazaarkart_be/config"
	"bazaarkart_be/engine/resolver"
	"bazaarkart_be/helper/at"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/helper/watoken"
	"bazaarkart_be/model"
	"bazaarkart_be/store"
)

// vendorShop memvalidasi token lalu mencari shop milik akun yang login.
// Mengembalikan nil kalau response error sudah ditulis.
func vendorShop(w http.ResponseWriter, r *http.Request) *model.Shop {
	token := at.GetLoginFromHeader(r)
	if token == "" {
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Missing token", "Please provide a login token in the request header.")
		return nil
	}
	payload, err := watoken.Decode(config.PUBLICKEY, token)
	if err != nil {
		log.Printf("[WARNING] Invalid token from %s: %v", at.GetIPaddress(r), err)
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Invalid token", "The login token is invalid or has expired.")
		return nil
	}

	if config.PostgresDB == nil {
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Database connection error", "PostgreSQL is not configured.")
		return nil
	}
	sqlDB, err := config.PostgresDB.DB()
	if err != nil {
		log.Printf("[ERROR] Database connection error: %v", err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Database connection error", "An error occurred while connecting to the database.")
		return nil
	}

	akunID, err := atdb.GetOne[int64](sqlDB, `SELECT id FROM akun WHERE phone = $1`, payload.Id)
	if err != nil {
		log.Printf("[WARNING] Account lookup for %s failed: %v", payload.Id, err)
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Unknown user", "No account matches this token.")
		return nil
	}

	shop, err := store.ShopByOwner(r.Context(), akunID)
	if err != nil {
		log.Printf("[ERROR] Shop lookup for account %d failed: %v", akunID, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch shop", err.Error())
		return nil
	}
	if shop == nil {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Shop not found", "This account does not own a shop.")
		return nil
	}
	return shop
}

// GetShopShipping mengembalikan konfigurasi pengiriman shop milik vendor
// yang login.
func GetShopShipping(w http.ResponseWriter, r *http.Request) {
	shop := vendorShop(w, r)
	if shop == nil {
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": model.ShopShipping{
			ShopID:                shop.ID,
			ShippingEnabled:       shop.ShippingEnabled,
			BaseRate:              shop.BaseRate,
			FreeShippingThreshold: shop.FreeShippingThreshold,
		},
	})
}

func UpdateShopShipping(w http.ResponseWriter, r *http.Request) {
	shop := vendorShop(w, r)
	if shop == nil {
		return
	}

	var request struct {
		ShippingEnabled       bool    `json:"shipping_enabled"`
		BaseRate              float64 `json:"base_rate"`
		FreeShippingThreshold float64 `json:"free_shipping_threshold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if request.BaseRate < 0 || request.FreeShippingThreshold < 0 {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid shipping config", "Base rate and free shipping threshold must not be negative.")
		return
	}

	sqlDB, err := config.PostgresDB.DB()
	if err != nil {
		log.Printf("[ERROR] Database connection error: %v", err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Database connection error", "An error occurred while connecting to the database.")
		return
	}

	query := `UPDATE shops SET shipping_enabled = $1, base_rate = $2, free_shipping_threshold = $3, updated_at = NOW() WHERE id = $4`
	if _, err := atdb.UpdateOne(sqlDB, query, request.ShippingEnabled, request.BaseRate, request.FreeShippingThreshold, shop.ID); err != nil {
		log.Printf("[ERROR] Failed to update shipping config for shop %d: %v", shop.ID, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update shipping config", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Shipping config updated successfully",
		"data": model.ShopShipping{
			ShopID:                shop.ID,
			ShippingEnabled:       request.ShippingEnabled,
			BaseRate:              request.BaseRate,
			FreeShippingThreshold: request.FreeShippingThreshold,
		},
	})
}

// CreateShippingOverride menambah atau menimpa pengaturan pengiriman satu
// produk: allow/deny list pincode dan tarif eksplisit. Satu record per
// produk, jadi operasi ini upsert.
func CreateShippingOverride(w http.ResponseWriter, r *http.Request) {
	shop := vendorShop(w, r)
	if shop == nil {
		return
	}

	var override model.ShippingOverride
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if override.ProductID <= 0 {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Field product_id is required.")
		return
	}
	for _, code := range append(append([]string{}, override.AllowPincodes...), override.DenyPincodes...) {
		if !resolver.ValidPincode(code) {
			atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode "+code+" must be exactly 6 digits.")
			return
		}
	}
	if override.BaseRate != nil && *override.BaseRate < 0 {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid base rate", "Field base_rate must not be negative.")
		return
	}

	// vendor hanya boleh mengatur produk shop-nya sendiri
	override.ShopID = shop.ID
	override.ID = primitive.NilObjectID

	if _, err := atdb.ReplaceOneDoc(config.Mongoconn, store.OverrideCollection, bson.M{"product_id": override.ProductID}, override); err != nil {
		log.Printf("[ERROR] Failed to save shipping override for product %d: %v", override.ProductID, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save shipping override", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Shipping override saved successfully",
		"data":    override,
	})
}

func GetShippingOverride(w http.ResponseWriter, r *http.Request) {
	shop := vendorShop(w, r)
	if shop == nil {
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid product id", "Product id must be numeric.")
		return
	}

	override, err := store.ProductOverride(productID)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch shipping override for product %d: %v", productID, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch shipping override", err.Error())
		return
	}
	if override == nil || override.ShopID != shop.ID {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Shipping override not found", "No shipping override exists for this product.")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   override,
	})
}
