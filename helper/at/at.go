package at

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WriteJSON menulis response JSON dengan status code yang diberikan
func WriteJSON(respw http.ResponseWriter, statusCode int, content any) {
	respw.Header().Set("Content-Type", "application/json")
	respw.WriteHeader(statusCode)
	json.NewEncoder(respw).Encode(content)
}

// GetLoginFromHeader mengambil token login dari header request
func GetLoginFromHeader(req *http.Request) string {
	login := req.Header.Get("login")
	if login == "" {
		login = req.Header.Get("Login")
	}
	if login == "" {
		// fallback: Authorization: Bearer <token>
		auth := req.Header.Get("Authorization")
		login = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer"))
	}
	return login
}

func GetIPaddress(req *http.Request) string {
	forwarded := req.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host := req.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
