package delivery

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bazaarkart_be/config"
	"bazaarkart_be/engine/resolver"
	"bazaarkart_be/helper/at"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/helper/watoken"
	"bazaarkart_be/model"
	"bazaarkart_be/store"
)

// requireAdmin memvalidasi token paseto di header lalu mengecek role akun di
// database. Mengembalikan false kalau response error sudah ditulis.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := at.GetLoginFromHeader(r)
	if token == "" {
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Missing token", "Please provide a login token in the request header.")
		return false
	}

	payload, err := watoken.Decode(config.PUBLICKEY, token)
	if err != nil {
		log.Printf("[WARNING] Invalid token from %s: %v", at.GetIPaddress(r), err)
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Invalid token", "The login token is invalid or has expired.")
		return false
	}

	if config.PostgresDB == nil {
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Database connection error", "PostgreSQL is not configured.")
		return false
	}
	sqlDB, err := config.PostgresDB.DB()
	if err != nil {
		log.Printf("[ERROR] Database connection error: %v", err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Database connection error", "An error occurred while connecting to the database.")
		return false
	}

	var rolename string
	query := `SELECT r.rolename FROM akun a JOIN role r ON r.id = a.role_id WHERE a.phone = $1`
	if err := sqlDB.QueryRow(query, payload.Id).Scan(&rolename); err != nil {
		log.Printf("[WARNING] Role lookup for %s failed: %v", payload.Id, err)
		atdb.SendErrorResponse(w, http.StatusUnauthorized, "Unknown user", "No account matches this token.")
		return false
	}
	if rolename != "admin" {
		atdb.SendErrorResponse(w, http.StatusForbidden, "Forbidden", "This endpoint requires an admin account.")
		return false
	}
	return true
}

// CreateServiceableArea menambah atau menimpa region layanan per state.
// Satu record per state, jadi operasi ini upsert.
func CreateServiceableArea(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var area model.ServiceableArea
	if err := json.NewDecoder(r.Body).Decode(&area); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	area.State = strings.TrimSpace(area.State)
	if area.State == "" {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Field state is required.")
		return
	}
	area.State = config.CanonicalState(area.State)
	area.Districts = dedupeDistricts(area.Districts)
	area.ID = primitive.NilObjectID

	if _, err := atdb.ReplaceOneDoc(config.Mongoconn, store.AreaCollection, bson.M{"state": area.State}, area); err != nil {
		log.Printf("[ERROR] Failed to save serviceable area %s: %v", area.State, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save serviceable area", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Serviceable area saved successfully",
		"data":    area,
	})
}

func GetServiceableAreas(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	areas, err := atdb.GetAllDoc[[]model.ServiceableArea](config.Mongoconn, store.AreaCollection, bson.M{})
	if err != nil {
		log.Printf("[ERROR] Failed to fetch serviceable areas: %v", err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch serviceable areas", err.Error())
		return
	}
	if areas == nil {
		areas = []model.ServiceableArea{}
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   areas,
	})
}

func UpdateServiceableArea(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var area model.ServiceableArea
	if err := json.NewDecoder(r.Body).Decode(&area); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	area.State = config.CanonicalState(strings.TrimSpace(area.State))
	if area.State == "" {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Field state is required.")
		return
	}
	area.Districts = dedupeDistricts(area.Districts)

	update := bson.M{
		"districts":         area.Districts,
		"delivery_enabled":  area.DeliveryEnabled,
		"default_days":      area.DefaultDays,
		"default_charge":    area.DefaultCharge,
		"cod_available":     area.CODAvailable,
		"express_available": area.ExpressAvailable,
	}
	result, err := atdb.UpdateOneDoc(config.Mongoconn, store.AreaCollection, bson.M{"state": area.State}, update)
	if err != nil {
		log.Printf("[ERROR] Failed to update serviceable area %s: %v", area.State, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update serviceable area", err.Error())
		return
	}
	if result.MatchedCount == 0 {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Serviceable area not found", "No serviceable area exists for state "+area.State+".")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Serviceable area updated successfully",
	})
}

func DeleteServiceableArea(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	state := config.CanonicalState(strings.TrimSpace(r.URL.Query().Get("state")))
	if state == "" {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Query parameter state is required.")
		return
	}

	result, err := atdb.DeleteOneDoc(config.Mongoconn, store.AreaCollection, bson.M{"state": state})
	if err != nil {
		log.Printf("[ERROR] Failed to delete serviceable area %s: %v", state, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to delete serviceable area", err.Error())
		return
	}
	if result.DeletedCount == 0 {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Serviceable area not found", "No serviceable area exists for state "+state+".")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Serviceable area deleted successfully",
	})
}

// CreatePostalCode menambah atau menimpa override per-pincode. Paling banyak
// satu record per kode.
func CreatePostalCode(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var record model.PostalCode
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if !resolver.ValidPincode(record.Code) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}
	record.State = config.CanonicalState(strings.TrimSpace(record.State))
	record.ID = primitive.NilObjectID

	if _, err := atdb.ReplaceOneDoc(config.Mongoconn, store.PostalCodeCollection, bson.M{"code": record.Code}, record); err != nil {
		log.Printf("[ERROR] Failed to save postal code %s: %v", record.Code, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to save postal code", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Postal code saved successfully",
		"data":    record,
	})
}

func GetPostalCode(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	code := mux.Vars(r)["code"]
	if !resolver.ValidPincode(code) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}

	record, err := atdb.GetOneDoc[model.PostalCode](config.Mongoconn, store.PostalCodeCollection, bson.M{"code": code})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			atdb.SendErrorResponse(w, http.StatusNotFound, "Postal code not found", "No record exists for pincode "+code+".")
			return
		}
		log.Printf("[ERROR] Failed to fetch postal code %s: %v", code, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to fetch postal code", err.Error())
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   record,
	})
}

func UpdatePostalCode(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var record model.PostalCode
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid request payload", "The JSON request body could not be decoded.")
		return
	}
	if !resolver.ValidPincode(record.Code) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}

	update := bson.M{
		"state":             config.CanonicalState(strings.TrimSpace(record.State)),
		"delivery_enabled":  record.DeliveryEnabled,
		"estimated_days":    record.EstimatedDays,
		"shipping_charge":   record.ShippingCharge,
		"cod_available":     record.CODAvailable,
		"express_available": record.ExpressAvailable,
	}
	result, err := atdb.UpdateOneDoc(config.Mongoconn, store.PostalCodeCollection, bson.M{"code": record.Code}, update)
	if err != nil {
		log.Printf("[ERROR] Failed to update postal code %s: %v", record.Code, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update postal code", err.Error())
		return
	}
	if result.MatchedCount == 0 {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Postal code not found", "No record exists for pincode "+record.Code+".")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Postal code updated successfully",
	})
}

func DeletePostalCode(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	code := r.URL.Query().Get("code")
	if !resolver.ValidPincode(code) {
		atdb.SendErrorResponse(w, http.StatusBadRequest, "Invalid pincode", "Pincode must be exactly 6 digits.")
		return
	}

	result, err := atdb.DeleteOneDoc(config.Mongoconn, store.PostalCodeCollection, bson.M{"code": code})
	if err != nil {
		log.Printf("[ERROR] Failed to delete postal code %s: %v", code, err)
		atdb.SendErrorResponse(w, http.StatusInternalServerError, "Failed to delete postal code", err.Error())
		return
	}
	if result.DeletedCount == 0 {
		atdb.SendErrorResponse(w, http.StatusNotFound, "Postal code not found", "No record exists for pincode "+code+".")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Postal code deleted successfully",
	})
}

// dedupeDistricts membersihkan input admin: trim, buang kosong, buang
// duplikat case-insensitive tanpa mengubah ejaan entri pertama.
func dedupeDistricts(districts []string) []string {
	seen := make(map[string]bool, len(districts))
	cleaned := make([]string, 0, len(districts))
	for _, d := range districts {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		key := strings.ToLower(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, d)
	}
	return cleaned
}
