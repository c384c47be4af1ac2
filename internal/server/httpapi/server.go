// Package httpapi exposes the diary service over a JSON REST API. It owns
// the router, the bearer-token access guard, and the mapping from service
// errors to HTTP statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"diary/internal/logging"
	"diary/internal/server/models"
	"diary/internal/server/services"
)

// UserService is the slice of the user service the HTTP layer depends on.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd *models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// DiaryService is the slice of the diary service the HTTP layer depends on.
type DiaryService interface {
	Create(ctx context.Context, userID int64, title, content string) (*models.Diary, error)
	Get(ctx context.Context, id, userID int64) (*models.Diary, error)
	List(ctx context.Context, userID int64, page, limit int) (*services.DiaryPage, error)
	Search(ctx context.Context, userID int64, keyword string, page, limit int) (*services.DiaryPage, error)
	Update(ctx context.Context, id, userID int64, upd *models.DiaryUpdate) (*models.Diary, error)
	Delete(ctx context.Context, id, userID int64) error
}

type Server struct {
	address   string
	users     UserService
	diaries   DiaryService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us UserService, ds DiaryService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		diaries:   ds,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the route table. Auth endpoints and the health check are
// open; everything else sits behind the access guard.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(s.accessTokenMiddleware)

	protected.HandleFunc("/diaries", s.handleDiaryCreate).Methods(http.MethodPost)
	protected.HandleFunc("/diaries", s.handleDiaryList).Methods(http.MethodGet)
	protected.HandleFunc("/diaries/search", s.handleDiarySearch).Methods(http.MethodGet)
	protected.HandleFunc("/diaries/{id:[0-9]+}", s.handleDiaryGet).Methods(http.MethodGet)
	protected.HandleFunc("/diaries/{id:[0-9]+}", s.handleDiaryUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/diaries/{id:[0-9]+}", s.handleDiaryDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/users/me", s.handleUserGet).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", s.handleUserUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/users/me", s.handleUserDelete).Methods(http.MethodDelete)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
