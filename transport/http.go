package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/markbaxman/WightCars-sub000/application/admin"
	carapp "github.com/markbaxman/WightCars-sub000/application/car"
	favoriteapp "github.com/markbaxman/WightCars-sub000/application/favorite"
	messageapp "github.com/markbaxman/WightCars-sub000/application/message"
	reportapp "github.com/markbaxman/WightCars-sub000/application/report"
	userapp "github.com/markbaxman/WightCars-sub000/application/user"
	"github.com/markbaxman/WightCars-sub000/cmd/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	CarApp      carapp.CarApp
	FavoriteApp favoriteapp.FavoriteApp
	MessageApp  messageapp.MessageApp
	ReportApp   reportapp.ReportApp
	AdminApp    adminapp.AdminApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, CarApp carapp.CarApp, FavoriteApp favoriteapp.FavoriteApp, MessageApp messageapp.MessageApp, ReportApp reportapp.ReportApp, AdminApp adminapp.AdminApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     UserApp,
		CarApp:      CarApp,
		FavoriteApp: FavoriteApp,
		MessageApp:  MessageApp,
		ReportApp:   ReportApp,
		AdminApp:    AdminApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Prometheus scrape endpoint, keyed for internal callers only
	mux.Handle("/metrics", InternalMiddleware(cfg.Internal.APIKey)(promhttp.Handler())).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/cars", rh.ListCars).Methods(http.MethodGet)
	mux.HandleFunc("/cars/{id:[0-9]+}", rh.GetCar).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/profile", rh.Profile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/profile/password", rh.ChangePassword).Methods(http.MethodPut)
	mux.HandleFunc("/cars", rh.CreateCar).Methods(http.MethodPost)
	mux.HandleFunc("/cars/{id:[0-9]+}", rh.UpdateCar).Methods(http.MethodPut)
	mux.HandleFunc("/cars/{id:[0-9]+}", rh.DeleteCar).Methods(http.MethodDelete)
	mux.HandleFunc("/cars/{id:[0-9]+}/status", rh.UpdateCarStatus).Methods(http.MethodPut)
	mux.HandleFunc("/cars/{id:[0-9]+}/save", rh.ToggleFavorite).Methods(http.MethodPost)
	mux.HandleFunc("/cars/{id:[0-9]+}/messages", rh.SendMessage).Methods(http.MethodPost)
	mux.HandleFunc("/cars/{id:[0-9]+}/messages", rh.CarThread).Methods(http.MethodGet)
	mux.HandleFunc("/favorites", rh.ListFavorites).Methods(http.MethodGet)
	mux.HandleFunc("/my/cars", rh.MyCars).Methods(http.MethodGet)
	mux.HandleFunc("/messages", rh.Inbox).Methods(http.MethodGet)
	mux.HandleFunc("/messages/unread-count", rh.UnreadCount).Methods(http.MethodGet)
	mux.HandleFunc("/messages/{id:[0-9]+}/read", rh.MarkMessageRead).Methods(http.MethodPut)
	mux.HandleFunc("/reports", rh.CreateReport).Methods(http.MethodPost)

	// admin routes (is_admin enforced in the application layer)
	mux.HandleFunc("/admin/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/admin/stats/growth", rh.Growth).Methods(http.MethodGet)
	mux.HandleFunc("/admin/cars", rh.AdminCars).Methods(http.MethodGet)
	mux.HandleFunc("/admin/cars/{id:[0-9]+}/moderation", rh.ModerateCar).Methods(http.MethodPut)
	mux.HandleFunc("/admin/cars/{id:[0-9]+}/featured", rh.FeatureCar).Methods(http.MethodPut)
	mux.HandleFunc("/admin/cars/{id:[0-9]+}", rh.AdminDeleteCar).Methods(http.MethodDelete)
	mux.HandleFunc("/admin/users", rh.AdminUsers).Methods(http.MethodGet)
	mux.HandleFunc("/admin/users/{id:[0-9]+}/suspend", rh.SuspendUser).Methods(http.MethodPut)
	mux.HandleFunc("/admin/reports", rh.AdminReports).Methods(http.MethodGet)
	mux.HandleFunc("/admin/reports/{id:[0-9]+}", rh.ResolveReport).Methods(http.MethodPut)
	mux.HandleFunc("/admin/logs", rh.AdminLogs).Methods(http.MethodGet)
	mux.HandleFunc("/admin/settings", rh.GetSettings).Methods(http.MethodGet)
	mux.HandleFunc("/admin/settings", rh.UpdateSetting).Methods(http.MethodPut)

	// middleware
	mux.Use(RecoveryMiddleware())
	mux.Use(MetricsMiddleware())
	mux.Use(LoggingMiddleware())
	if cfg.RateLimit.Enabled {
		mux.Use(RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
