package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/tibungco/portal/internal/announcement"
	"github.com/tibungco/portal/internal/auth"
	"github.com/tibungco/portal/internal/config"
	httpmiddleware "github.com/tibungco/portal/internal/http/middleware"
	"github.com/tibungco/portal/internal/request"
	"github.com/tibungco/portal/internal/resident"
)

// Handler agrega os serviços expostos pelo gateway. O gateway não
// guarda estado próprio: todo o durável mora no Postgres.
type Handler struct {
	cfg           *config.Config
	pool          *pgxpool.Pool
	redis         *redis.Client
	residents     *resident.Service
	announcements *announcement.Service
	requests      *request.Service
	admin         *auth.AdminAuthority
}

// NewHandler monta o handler com serviços já construídos.
func NewHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	redisClient *redis.Client,
	residents *resident.Service,
	announcements *announcement.Service,
	requests *request.Service,
) *Handler {
	return &Handler{
		cfg:           cfg,
		pool:          pool,
		redis:         redisClient,
		residents:     residents,
		announcements: announcements,
		requests:      requests,
		admin:         auth.NewAdminAuthority(cfg.AdminEmail, cfg.AdminPassword),
	}
}

// NewRouter faz o cabeamento padrão sobre o pool e devolve o
// roteador pronto.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) http.Handler {
	residents := resident.NewService(resident.NewRepository(pool), redisClient, cfg.StatsCacheTTL)
	announcements := announcement.NewService(announcement.NewRepository(pool))
	requests := request.NewService(request.NewRepository(pool))

	h := NewHandler(cfg, pool, redisClient, residents, announcements, requests)
	return h.Routes()
}

// Routes registra middleware e rotas do contrato REST.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(h.cfg.AllowOrigins))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(api chi.Router) {
		api.Get("/stats", h.Stats)
		api.Post("/register", h.Register)
		api.Post("/login", h.Login)
		api.Post("/admin/login", h.AdminLogin)
		api.Get("/hotlines", h.Hotlines)

		api.Route("/announcements", func(ann chi.Router) {
			ann.Get("/", h.ListAnnouncements)
			ann.Post("/", h.CreateAnnouncement)
			ann.Delete("/{id}", h.DeleteAnnouncement)
		})

		api.Route("/requests", func(req chi.Router) {
			req.Post("/", h.SubmitRequest)
			req.Get("/admin/all", h.ListAllRequests)
			req.Patch("/{id}/status", h.UpdateRequestStatus)
			req.Get("/{email}", h.ListResidentRequests)
		})
	})

	return r
}

// Health responde status simples para monitoramento.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready valida conexões com Postgres e Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "cache unavailable")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// Hotlines devolve a lista de contatos de emergência configurada.
func (h *Handler) Hotlines(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.cfg.Hotlines)
}
