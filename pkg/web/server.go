package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	sse "github.com/tmaxmax/go-sse"
)

//go:embed templates static
var content embed.FS

const (
	sessionCookie  = "flowcheck_session"
	maxRequestBody = 64 << 10
)

// ServerConfig holds configuration for the board server.
type ServerConfig struct {
	Port     int    // port to listen on
	Username string // accepted login
	Password string // accepted password
}

// Server serves the login form, the task board, its JSON API and the SSE event stream.
type Server struct {
	cfg      ServerConfig
	store    *Store
	sessions *sessions
	events   *sse.Server
	tmpl     *template.Template
	handler  http.Handler

	mu  sync.Mutex
	srv *http.Server
}

// NewServer creates a board server with an empty store.
func NewServer(cfg ServerConfig) (*Server, error) {
	tmpl, err := template.ParseFS(content, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		store:    NewStore(),
		sessions: newSessions(),
		events:   &sse.Server{},
		tmpl:     tmpl,
	}

	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		return nil, fmt.Errorf("static filesystem: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /dashboard/board", s.requireSession(s.handleBoard))
	mux.HandleFunc("GET /api/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/tasks", s.requireSession(s.handleAddTask))
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.Handle("GET /events", s.events)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.handler = mux

	return s, nil
}

// Handler returns the server routes, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store returns the server's task store.
func (s *Server) Store() *Store {
	return s.store
}

// Start begins listening for HTTP requests on the configured port.
// blocks until ctx is canceled, Stop is called or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled or Stop is called.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.srv = &http.Server{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}
	srv := s.srv
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("http server: %w", err)
}

// Stop closes open event streams and gracefully shuts down the server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.events.Shutdown(ctx); err != nil && !errors.Is(err, sse.ErrProviderClosed) {
		log.Printf("[WARN] failed to close event streams: %v", err)
	}
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

// publish streams an event to connected boards. failures are logged, the request still succeeds.
func (s *Server) publish(e Event) {
	msg, err := e.Message()
	if err != nil {
		log.Printf("[WARN] failed to encode %s event: %v", e.Type, err)
		return
	}
	if err := s.events.Publish(msg); err != nil {
		log.Printf("[WARN] failed to publish %s event: %v", e.Type, err)
	}
}

// requireSession redirects requests without a valid session cookie to the login page.
// API requests get 401 instead of a redirect.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessionUser(r); ok {
			next(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "login required", http.StatusUnauthorized)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}

func (s *Server) sessionUser(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	return s.sessions.user(c.Value)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessionUser(r); ok {
		http.Redirect(w, r, "/dashboard/board", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// loginData holds data for the login template.
type loginData struct {
	Username string
	Error    string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "login.html", loginData{})
}

// handleLogin checks the posted credentials, starts a session and redirects to the board.
// wrong credentials render the form again with 401.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	user, pass := r.PostForm.Get("username"), r.PostForm.Get("password")
	if user != s.cfg.Username || pass != s.cfg.Password {
		s.render(w, http.StatusUnauthorized, "login.html", loginData{Username: user, Error: "Invalid username or password"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.sessions.create(user),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/dashboard/board", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.remove(c.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// boardData holds data for the board template.
type boardData struct {
	Username string
	Tasks    []Task
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	user, _ := s.sessionUser(r)
	s.render(w, http.StatusOK, "board.html", boardData{Username: user, Tasks: s.store.List()})
}

func (s *Server) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

// taskRequest is the body of POST /api/tasks.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	task, err := s.store.Add(req.Title, req.Description)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.publish(NewTaskAddedEvent(task))
	writeJSON(w, http.StatusCreated, task)
}

// handleReset clears the board so a scenario can run against a fresh state.
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.store.Reset()
	s.publish(NewResetEvent())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) render(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[WARN] failed to render %s: %v", name, err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] failed to encode response: %v", err)
	}
}
