package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bazaarkart_be/config"
	"bazaarkart_be/helper/atdb"
	"bazaarkart_be/model"
)

func RegisterUser(w http.ResponseWriter, r *http.Request) {

	var user model.Akun
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Invalid request payload",
			"message": "The JSON request body could not be decoded. Please check the structure of your request.",
		})
		return
	}

	// default: customer biasa
	if user.RoleID == 0 {
		user.RoleID = 2
	}

	if user.Name == "" || user.Phone == "" || user.Email == "" || user.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Missing required fields",
			"message": "Please fill in name, phone, email, and password.",
		})
		return
	}

	sqlDB, err := config.PostgresDB.DB()
	if err != nil {
		log.Printf("[ERROR] Database connection error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Database connection error",
			"message": "An error occurred while connecting to the database.",
		})
		return
	}

	// Check if email or phone number already exists
	checkQuery := `SELECT COUNT(*) FROM akun WHERE email = $1 OR phone = $2`
	existing, err := atdb.GetCount(sqlDB, checkQuery, user.Email, user.Phone)
	if err != nil {
		log.Printf("[ERROR] Failed to check existing account: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Query failed",
			"message": "An error occurred while checking existing accounts.",
		})
		return
	}
	if existing > 0 {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Conflict",
			"message": "Email or phone number is already registered. Please use a different one.",
		})
		return
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to hash password",
			"message": "An error occurred while hashing the password.",
		})
		return
	}
	user.Password = string(hashedPassword)

	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	query := `INSERT INTO akun (name, phone, email, password, role_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	insertedID, err := atdb.InsertOne(sqlDB, query, user.Name, user.Phone, user.Email, user.Password, user.RoleID)
	if err != nil {
		log.Printf("[ERROR] Database insertion error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to create user",
			"message": "An error occurred while saving the user to the database.",
		})
		return
	}

	response := map[string]interface{}{
		"status":  "success",
		"message": "User created successfully",
		"data": map[string]interface{}{
			"user_id": insertedID,
			"name":    user.Name,
			"phone":   user.Phone,
			"email":   user.Email,
			"id_role": user.RoleID,
		},
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}
