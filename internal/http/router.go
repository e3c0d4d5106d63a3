package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"apotek-backend/internal/handlers"
	"apotek-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	barangHandler *handlers.BarangHandler,
	supplierHandler *handlers.SupplierHandler,
	karyawanHandler *handlers.KaryawanHandler,
	transaksiMasukHandler *handlers.TransaksiMasukHandler,
	transaksiKeluarHandler *handlers.TransaksiKeluarHandler,
	logHandler *handlers.LogActivityHandler,
	permissionHandler *handlers.PermissionHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Public API routes - Authentication
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Protected API routes - Session and profile
	authAPI := api.PathPrefix("/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/logout-all", authHandler.LogoutAll).Methods("POST")
	authAPI.HandleFunc("/profile", authHandler.GetProfile).Methods("GET")
	authAPI.HandleFunc("/profile", authHandler.UpdateProfile).Methods("PUT")
	authAPI.HandleFunc("/change-password", authHandler.ChangePassword).Methods("PUT")
	authAPI.HandleFunc("/permissions", permissionHandler.ForActor).Methods("GET")
	authAPI.HandleFunc("/tokens/cleanup", authMiddleware.RequireAdmin(http.HandlerFunc(authHandler.CleanupTokens)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Users (admin only)
	usersAPI := api.PathPrefix("/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.GetUser)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.UpdateUser)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.DeleteUser)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Barang (all roles can view, admin/manager can modify)
	barangAPI := api.PathPrefix("/barang").Subrouter()
	barangAPI.Use(authMiddleware.Authenticate)
	barangAPI.HandleFunc("", barangHandler.List).Methods("GET")
	barangAPI.HandleFunc("", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(barangHandler.Create)).ServeHTTP).Methods("POST")
	barangAPI.HandleFunc("/{id}", barangHandler.Get).Methods("GET")
	barangAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(barangHandler.Update)).ServeHTTP).Methods("PUT")
	barangAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(barangHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Supplier
	supplierAPI := api.PathPrefix("/supplier").Subrouter()
	supplierAPI.Use(authMiddleware.Authenticate)
	supplierAPI.HandleFunc("", supplierHandler.List).Methods("GET")
	supplierAPI.HandleFunc("", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(supplierHandler.Create)).ServeHTTP).Methods("POST")
	supplierAPI.HandleFunc("/{id}", supplierHandler.Get).Methods("GET")
	supplierAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(supplierHandler.Update)).ServeHTTP).Methods("PUT")
	supplierAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(supplierHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Karyawan
	karyawanAPI := api.PathPrefix("/karyawan").Subrouter()
	karyawanAPI.Use(authMiddleware.Authenticate)
	karyawanAPI.HandleFunc("", karyawanHandler.List).Methods("GET")
	karyawanAPI.HandleFunc("", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(karyawanHandler.Create)).ServeHTTP).Methods("POST")
	karyawanAPI.HandleFunc("/{id}", karyawanHandler.Get).Methods("GET")
	karyawanAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(karyawanHandler.Update)).ServeHTTP).Methods("PUT")
	karyawanAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin", "manager")(http.HandlerFunc(karyawanHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Transaksi Masuk (admin only)
	masukAPI := api.PathPrefix("/transaksi-masuk").Subrouter()
	masukAPI.Use(authMiddleware.Authenticate)
	masukAPI.Use(authMiddleware.RequireAdmin)
	masukAPI.HandleFunc("", transaksiMasukHandler.List).Methods("GET")
	masukAPI.HandleFunc("", transaksiMasukHandler.Create).Methods("POST")
	masukAPI.HandleFunc("/{id}", transaksiMasukHandler.Get).Methods("GET")
	masukAPI.HandleFunc("/{id}", transaksiMasukHandler.UpdateHeader).Methods("PUT")
	masukAPI.HandleFunc("/{id}", transaksiMasukHandler.Delete).Methods("DELETE")
	masukAPI.HandleFunc("/{id}/details", transaksiMasukHandler.AddDetail).Methods("POST")
	masukAPI.HandleFunc("/{id}/details/{detailId}", transaksiMasukHandler.UpdateDetail).Methods("PUT")
	masukAPI.HandleFunc("/{id}/details/{detailId}", transaksiMasukHandler.DeleteDetail).Methods("DELETE")

	// Protected API routes - Transaksi Keluar (admin only)
	keluarAPI := api.PathPrefix("/transaksi-keluar").Subrouter()
	keluarAPI.Use(authMiddleware.Authenticate)
	keluarAPI.Use(authMiddleware.RequireAdmin)
	keluarAPI.HandleFunc("", transaksiKeluarHandler.List).Methods("GET")
	keluarAPI.HandleFunc("", transaksiKeluarHandler.Create).Methods("POST")
	keluarAPI.HandleFunc("/{id}", transaksiKeluarHandler.Get).Methods("GET")
	keluarAPI.HandleFunc("/{id}", transaksiKeluarHandler.UpdateHeader).Methods("PUT")
	keluarAPI.HandleFunc("/{id}", transaksiKeluarHandler.Delete).Methods("DELETE")
	keluarAPI.HandleFunc("/{id}/details", transaksiKeluarHandler.AddDetail).Methods("POST")
	keluarAPI.HandleFunc("/{id}/details/{detailId}", transaksiKeluarHandler.UpdateDetail).Methods("PUT")
	keluarAPI.HandleFunc("/{id}/details/{detailId}", transaksiKeluarHandler.DeleteDetail).Methods("DELETE")

	// Protected API routes - Activity Logs (admin only)
	logsAPI := api.PathPrefix("/logs").Subrouter()
	logsAPI.Use(authMiddleware.Authenticate)
	logsAPI.Use(authMiddleware.RequireAdmin)
	logsAPI.HandleFunc("", logHandler.List).Methods("GET")
	logsAPI.HandleFunc("", logHandler.Create).Methods("POST")
	logsAPI.HandleFunc("/search", logHandler.Search).Methods("GET")
	logsAPI.HandleFunc("/statistics", logHandler.Statistics).Methods("GET")
	logsAPI.HandleFunc("/user/{id}", logHandler.ByUser).Methods("GET")
	logsAPI.HandleFunc("/cleanup", logHandler.Cleanup).Methods("DELETE")
	logsAPI.HandleFunc("/{id}", logHandler.Get).Methods("GET")

	// Protected API routes - Permissions (admin only; seeded read-only data)
	permissionsAPI := api.PathPrefix("/permissions").Subrouter()
	permissionsAPI.Use(authMiddleware.Authenticate)
	permissionsAPI.Use(authMiddleware.RequireAdmin)
	permissionsAPI.HandleFunc("", permissionHandler.List).Methods("GET")
	permissionsAPI.HandleFunc("/role/{role}", permissionHandler.ByRole).Methods("GET")

	// Health endpoints (no auth required - for orchestrator probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
