package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/handlers"
	"github.com/Spyboss/tmr-tradinglanka-sub000/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	billHandler *handlers.BillHandler,
	inventoryHandler *handlers.InventoryHandler,
	quotationHandler *handlers.QuotationHandler,
	brandingHandler *handlers.BrandingHandler,
	userHandler *handlers.UserHandler,
	totpHandler *handlers.TOTPHandler,
	loginLogHandler *handlers.LoginLogHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Public branding read so the login page can show the dealer identity
	r.HandleFunc("/api/branding", brandingHandler.Get).Methods("GET")

	// Protected API routes - Bills
	billsAPI := r.PathPrefix("/api/bills").Subrouter()
	billsAPI.Use(authMiddleware.Authenticate)
	billsAPI.HandleFunc("", billHandler.List).Methods("GET")
	billsAPI.HandleFunc("", billHandler.Create).Methods("POST")
	billsAPI.HandleFunc("/number/{number}", billHandler.GetByNumber).Methods("GET")
	billsAPI.HandleFunc("/{id}", billHandler.Get).Methods("GET")
	billsAPI.HandleFunc("/{id}", billHandler.Update).Methods("PUT")
	billsAPI.HandleFunc("/{id}", billHandler.Delete).Methods("DELETE")
	billsAPI.HandleFunc("/{id}/status", billHandler.UpdateStatus).Methods("PATCH")
	billsAPI.HandleFunc("/{id}/pdf", billHandler.PDF).Methods("GET")

	// Protected API routes - Inventory
	inventoryAPI := r.PathPrefix("/api/inventory").Subrouter()
	inventoryAPI.Use(authMiddleware.Authenticate)
	inventoryAPI.HandleFunc("", inventoryHandler.List).Methods("GET")
	inventoryAPI.HandleFunc("", inventoryHandler.Create).Methods("POST")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.Get).Methods("GET")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.Update).Methods("PUT")
	inventoryAPI.HandleFunc("/{id}/status", inventoryHandler.UpdateStatus).Methods("PATCH")
	inventoryAPI.HandleFunc("/{id}", inventoryHandler.Delete).Methods("DELETE")

	// Protected API routes - Quotations
	quotationsAPI := r.PathPrefix("/api/quotations").Subrouter()
	quotationsAPI.Use(authMiddleware.Authenticate)
	quotationsAPI.HandleFunc("", quotationHandler.List).Methods("GET")
	quotationsAPI.HandleFunc("", quotationHandler.Create).Methods("POST")
	quotationsAPI.HandleFunc("/{id}", quotationHandler.Get).Methods("GET")
	quotationsAPI.HandleFunc("/{id}/status", quotationHandler.UpdateStatus).Methods("PATCH")
	quotationsAPI.HandleFunc("/{id}/convert", quotationHandler.Convert).Methods("POST")
	quotationsAPI.HandleFunc("/{id}/pdf", quotationHandler.PDF).Methods("GET")

	// Protected API routes - Branding (writes are admin only)
	brandingAPI := r.PathPrefix("/api/branding").Subrouter()
	brandingAPI.Use(authMiddleware.RequireAdmin)
	brandingAPI.HandleFunc("", brandingHandler.Update).Methods("PUT")
	brandingAPI.HandleFunc("/logo", brandingHandler.UploadLogo).Methods("POST")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.List).Methods("GET")
	usersAPI.HandleFunc("", userHandler.Create).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.Get).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.Update).Methods("PUT")
	usersAPI.HandleFunc("/{id}/active", userHandler.SetActive).Methods("PATCH")

	// Protected API routes - 2FA for the logged-in user
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.Setup).Methods("POST")
	totpAPI.HandleFunc("/verify", totpHandler.Verify).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.Disable).Methods("POST")

	// Protected API routes - Login logs (admin only)
	loginLogsAPI := r.PathPrefix("/api/login-logs").Subrouter()
	loginLogsAPI.Use(authMiddleware.RequireAdmin)
	loginLogsAPI.HandleFunc("", loginLogHandler.List).Methods("GET")

	// Health endpoints for Kubernetes probes
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	return r
}
