package routes

import (
	"net/http"

	"bazaarkart_be/config"
	"bazaarkart_be/controller"
	"bazaarkart_be/controller/auth"
	"bazaarkart_be/controller/delivery"
	"bazaarkart_be/controller/shipping"

	"github.com/gorilla/mux"
)

func InitializeRoutes() *mux.Router {
	router := mux.NewRouter()

	// Middleware CORS global dari config
	router.Use(config.CORSMiddleware)

	// Root route
	router.HandleFunc("/", controller.GetHome).Methods("GET", "OPTIONS")

	// Auth
	router.HandleFunc("/regis", handleCORS(auth.RegisterUser)).Methods("POST", "OPTIONS")
	router.HandleFunc("/login", handleCORS(auth.LoginUsers)).Methods("POST", "OPTIONS")
	router.HandleFunc("/login/google", handleCORS(auth.LoginWithGoogle)).Methods("POST", "OPTIONS")
	router.HandleFunc("/reset-password", handleCORS(auth.ResetPassword)).Methods("POST", "OPTIONS")

	// Delivery check
	router.HandleFunc("/delivery/check/{pincode}", handleCORS(delivery.CheckDelivery)).Methods("GET", "OPTIONS")
	router.HandleFunc("/delivery/check/{productId}/{pincode}", handleCORS(delivery.CheckProductDelivery)).Methods("POST", "OPTIONS")

	// Serviceable area management (admin)
	router.HandleFunc("/delivery/areas", handleCORS(delivery.CreateServiceableArea)).Methods("POST", "OPTIONS")
	router.HandleFunc("/delivery/areas", handleCORS(delivery.GetServiceableAreas)).Methods("GET", "OPTIONS")
	router.HandleFunc("/delivery/areas/update", handleCORS(delivery.UpdateServiceableArea)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delivery/areas/delete", handleCORS(delivery.DeleteServiceableArea)).Methods("DELETE", "OPTIONS")

	// Postal code registry (admin)
	router.HandleFunc("/delivery/pincode", handleCORS(delivery.CreatePostalCode)).Methods("POST", "OPTIONS")
	router.HandleFunc("/delivery/pincode/update", handleCORS(delivery.UpdatePostalCode)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/delivery/pincode/delete", handleCORS(delivery.DeletePostalCode)).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/delivery/pincode/{code}", handleCORS(delivery.GetPostalCode)).Methods("GET", "OPTIONS")

	// Shipping quotes
	router.HandleFunc("/shipping/quote", handleCORS(shipping.QuoteShipping)).Methods("POST", "OPTIONS")
	router.HandleFunc("/shipping/estimate-cost", handleCORS(shipping.EstimateCost)).Methods("POST", "OPTIONS")

	// Vendor shipping config
	router.HandleFunc("/shop/shipping", handleCORS(shipping.GetShopShipping)).Methods("GET", "OPTIONS")
	router.HandleFunc("/shop/shipping/update", handleCORS(shipping.UpdateShopShipping)).Methods("PUT", "OPTIONS")
	router.HandleFunc("/product/shipping-override", handleCORS(shipping.CreateShippingOverride)).Methods("POST", "OPTIONS")
	router.HandleFunc("/product/shipping-override/{productId}", handleCORS(shipping.GetShippingOverride)).Methods("GET", "OPTIONS")

	return router
}

// handleCORS adalah wrapper untuk menangani preflight request
func handleCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Tangani preflight request
		if r.Method == http.MethodOptions {
			if origin := r.Header.Get("Origin"); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, login")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Tambahkan header CORS untuk semua request
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, login")

		// Lanjutkan ke handler berikutnya
		next(w, r)
	}
}
