package shipping

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bazaarkart_be/config"
	"bazaarkart_be/engine/policy"
	"bazaarkart_be/engine/rate"
	"bazaarkart_be/engine/resolver"
	"bazaarkart_be/helper/at"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/helper/format"
	"bazaarkart_be/model"
	"bazaarkart_be/store"
)

var (
	locator = resolver.New(config.Geocoder, store.Geocache{})
	engine  = rate.New(store.VendorStore{}, policy.New(store.PolicyStore{}))
)

// QuoteShipping menghitung ongkir seluruh keranjang: partisi per vendor,
// quote paralel, breakdown per vendor plus total.
func QuoteShipping(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Pincode string           `json:"pincode"`
		Items   []model.LineItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if !resolver.ValidPincode(request.Pincode) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}
	for _, item := range request.Items {
		if item.ShopID <= 0 || item.Quantity <= 0 || item.UnitPrice < 0 {
			atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid cart item", "Each item needs a shop id, a positive quantity, and a non-negative unit price.")
			return
		}
	}

	loc, err := locator.Resolve(r.Context(), request.Pincode)
	if err != nil {
		if errors.Is(err, resolver.ErrUnresolved) {
			atdb.SendErrorResponse(w, http.StatusBadRequest, "Unresolved pincode", "Pincode "+request.Pincode+" could not be resolved to a location.")
			return
		}
		log.Printf("[ERROR] Failed to resolve pincode %s: %v", request.Pincode, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to resolve pincode", err.Error())
		return
	}

	quote, err := engine.Quote(r.Context(), request.Items, loc)
	if err != nil {
		// request disusul pembatalan dari client
		log.Printf("[WARNING] Shipping quote abandoned: %v", err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Quote abandoned", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"location":        loc,
		"quote":           quote,
		"total_formatted": format.FormatCurrency(quote.Total),
	})
}

// EstimateCost adalah quote satu vendor untuk nilai order tertentu, dipakai
// halaman produk sebelum checkout.
func EstimateCost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ShopID     int64   `json:"shop_id"`
		Pincode    string  `json:"pincode"`
		OrderValue float64 `json:"order_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if request.ShopID <= 0 {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Field shop_id is required.")
		return
	}
	if !resolver.ValidPincode(request.Pincode) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}
	if request.OrderValue < 0 {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid order value", "Field order_value must not be negative.")
		return
	}

	loc, err := locator.Resolve(r.Context(), request.Pincode)
	if err != nil {
		if errors.Is(err, resolver.ErrUnresolved) {
			atdb.SendErrorResponse(w, http.StatusBadRequest, "Unresolved pincode", "Pincode "+request.Pincode+" could not be resolved to a location.")
			return
		}
		log.Printf("[ERROR] Failed to resolve pincode %s: %v", request.Pincode, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to resolve pincode", err.Error())
		return
	}

	quote := engine.EstimateVendor(r.Context(), request.ShopID, loc, request.OrderValue)

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "success",
		"location":         loc,
		"estimate":         quote,
		"charge_formatted": format.FormatCurrency(quote.Charge),
	})
}
