package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"bazaarkart_be/config"
)

func ResetPassword(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var request struct {
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		NewPassword string `json:"new_password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Invalid request payload",
			"message": "The JSON request body could not be decoded. Please check the structure of your request.",
		})
		return
	}

	if request.Email == "" || request.Phone == "" || request.NewPassword == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Missing required fields",
			"message": "Please provide email, phone number, and the new password.",
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

	// Email dan nomor telepon harus cocok pada akun yang sama
	var userID int
	query := `SELECT id FROM akun WHERE email = $1 AND phone = $2`
	err = sqlDB.QueryRow(query, request.Email, request.Phone).Scan(&userID)
	if err != nil {
		log.Printf("[WARNING] Reset password rejected, no matching account: %v", err)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "User not found",
			"message": "The provided email and phone number do not match any account.",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Failed to hash password: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to hash password",
			"message": "An error occurred while hashing the password.",
		})
		return
	}

	updateQuery := `UPDATE akun SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err = sqlDB.Exec(updateQuery, hashedPassword, userID)
	if err != nil {
		log.Printf("[ERROR] Failed to update password: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to update password",
			"message": "An error occurred while updating the password in the database.",
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Password reset successfully. You can now log in with the new password.",
	})
}
