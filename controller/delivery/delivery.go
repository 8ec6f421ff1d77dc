package delivery

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bazaarkart_be/config"
	"bazaarkart_be/engine/policy"
	"bazaarkart_be/engine/resolver"
	"bazaarkart_be/helper/at"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/model"
	"bazaarkart_be/store"
)

var (
	locator = resolver.New(config.Geocoder, store.Geocache{})
	checker = policy.New(store.PolicyStore{})
)

// CheckDelivery memeriksa apakah sebuah pincode bisa dilayani. Pincode yang
// tidak bisa di-resolve tetap 200 dengan deliverable false, bukan error:
// user salah ketik pincode bukan kegagalan server.
func CheckDelivery(w http.ResponseWriter, r *http.Request) {
	pincode := mux.Vars(r)["pincode"]
	if !resolver.ValidPincode(pincode) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}

	loc, err := locator.Resolve(r.Context(), pincode)
	if err != nil {
		if errors.Is(err, resolver.ErrUnresolved) {
			at.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"status":      "success",
				"deliverable": false,
				"message":     "We could not identify this pincode. Please re-check it.",
			})
			return
		}
		log.Printf("[ERROR] Failed to resolve pincode %s: %v", pincode, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to resolve pincode", err.Error())
		return
	}

	result := checker.Check(r.Context(), loc, nil)
	writeCheckResult(w, loc, result)
}

// CheckProductDelivery sama dengan CheckDelivery tapi menghormati
// allow/deny list produk terlebih dahulu.
func CheckProductDelivery(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pincode := vars["pincode"]
	if !resolver.ValidPincode(pincode) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid product id", "Product id must be numeric.")
		return
	}

	var overrides *policy.Overrides
	ov, err := store.ProductOverride(productID)
	if err != nil {
		log.Printf("[WARNING] Override lookup for product %d failed: %v", productID, err)
	}
	if ov != nil {
		overrides = &policy.Overrides{Allow: ov.AllowPincodes, Deny: ov.DenyPincodes}
	}

	loc, err := locator.Resolve(r.Context(), pincode)
	if err != nil {
		if errors.Is(err, resolver.ErrUnresolved) {
			at.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"status":      "success",
				"deliverable": false,
				"message":     "We could not identify this pincode. Please re-check it.",
			})
			return
		}
		log.Printf("[ERROR] Failed to resolve pincode %s: %v", pincode, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to resolve pincode", err.Error())
		return
	}

	result := checker.Check(r.Context(), loc, overrides)
	writeCheckResult(w, loc, result)
}

func writeCheckResult(w http.ResponseWriter, loc model.ResolvedLocation, result model.ServiceabilityResult) {
	response := map[string]interface{}{
		"status":      "success",
		"deliverable": result.Deliverable,
		"location":    loc,
		"result":      result,
	}
	if !result.Deliverable {
		response["message"] = result.Reason
	}
	at.WriteJSON(w, http.StatusOK, response)
}
