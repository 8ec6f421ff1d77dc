package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/oauth2/v1"
	"google.golang.org/api/option"

	"bazaarkart_be/config"
	"bazaarkart_be/helper/watoken"
	"bazaarkart_be/model"
)

func LoginUsers(w http.ResponseWriter, r *http.Request) {
	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// Decode JSON dari request body
	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		http.Error(w, `{"error":"Invalid request payload","message":"The JSON request body could not be decoded. Please check the structure of your request."}`, http.StatusBadRequest)
		return
	}

	if loginData.Email == "" || loginData.Password == "" {
		http.Error(w, `{"error":"Missing required fields","message":"Email and password must not be empty."}`, http.StatusBadRequest)
		return
	}

	if config.PostgresDB == nil {
		log.Println("[ERROR] PostgreSQL is not configured")
		http.Error(w, `{"error":"Database connection error","message":"Failed to connect to the database."}`, http.StatusInternalServerError)
		return
	}

	var akun model.Akun
	query := `SELECT id, name, phone, email, password, role_id FROM akun WHERE email = $1`
	result := config.PostgresDB.Raw(query, loginData.Email).Scan(&akun)
	if result.RowsAffected == 0 {
		log.Printf("[WARNING] Login attempt for unregistered email %s", loginData.Email)
		http.Error(w, `{"error":"User not found","message":"Email is not registered."}`, http.StatusUnauthorized)
		return
	}

	if akun.Password == "" {
		log.Printf("[ERROR] Account %s has no password set", loginData.Email)
		http.Error(w, `{"error":"Internal error","message":"Account data is incomplete."}`, http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(akun.Password), []byte(loginData.Password)); err != nil {
		http.Error(w, `{"error":"Invalid password","message":"Wrong password."}`, http.StatusUnauthorized)
		return
	}

	// Ambil nama role berdasarkan role id
	var role model.Role
	if err := config.PostgresDB.First(&role, akun.RoleID).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch role name: %v", err)
		http.Error(w, `{"error":"Query failed","message":"Failed to fetch role."}`, http.StatusInternalServerError)
		return
	}

	token, err := watoken.EncodeforHours(akun.Phone, akun.Name, config.PRIVATEKEY, 18)
	if err != nil {
		log.Printf("[ERROR] Failed to generate token: %v", err)
		http.Error(w, `{"error":"Token generation failed","message":"Failed to create token."}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"status":  "success",
		"message": "Login successful",
		"token":   token,
		"name":    akun.Name,
		"role":    role.Rolename,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "Invalid request payload",
			"message": "The JSON request body could not be decoded. Please provide a valid ID token.",
		})
		return
	}

	// Verifikasi ID Token menggunakan Google API
	oauth2Service, err := oauth2.NewService(r.Context(), option.WithoutAuthentication())
	if err != nil {
		log.Printf("[ERROR] Failed to create OAuth2 service: %v", err)
		http.Error(w, "Failed to create OAuth2 service", http.StatusInternalServerError)
		return
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(requestBody.IDToken)
	tokenInfo, err := tokenInfoCall.Do()
	if err != nil {
		log.Printf("[WARNING] Failed to verify ID token: %v", err)
		http.Error(w, "Invalid Google ID token", http.StatusUnauthorized)
		return
	}

	email := tokenInfo.Email

	// Periksa apakah pengguna sudah terdaftar di database
	var akun model.Akun
	query := `SELECT id, email, role_id FROM akun WHERE email = $1`
	result := config.PostgresDB.Raw(query, email).Scan(&akun)

	if result.RowsAffected == 0 {
		// Jika pengguna belum terdaftar, daftarkan secara otomatis
		insertQuery := `
			INSERT INTO akun (email, role_id)
			VALUES ($1, $2)
			RETURNING id, email
		`
		if err := config.PostgresDB.Raw(insertQuery, email, 2).Scan(&akun).Error; err != nil {
			log.Printf("[ERROR] Failed to create new user: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}
	}

	token, err := watoken.EncodeforHours(akun.Phone, email, config.PRIVATEKEY, 18)
	if err != nil {
		log.Printf("[ERROR] Failed to generate token: %v", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Login with Google successful",
		"token":   token,
		"user": map[string]interface{}{
			"id_user": akun.ID,
			"email":   akun.Email,
		},
	})
}
