// Package apitest runs an in-process stand-in for the remote authentication
// API. It implements the three endpoints the client talks to, records every
// call and lets a test replace any endpoint with its own handler.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/authdesk/internal/common"
)

// Endpoint paths relative to BaseURL.
const (
	PathRegister = "/auth/register"
	PathLogin    = "/auth/login"
	PathProfile  = "/users/profile"

	apiPrefix = "/api"
)

// Messages the fake server answers with.
const (
	MsgRegistered         = "Usuario registrado exitosamente"
	MsgUserExists         = "El usuario ya existe"
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgInvalidToken       = "Token inválido"
	MsgMissingFields      = "Faltan campos obligatorios"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

func (u User) public() map[string]any {
	return map[string]any{"id": u.ID, "name": u.Name, "email": u.Email}
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type Server struct {
	*httptest.Server

	secret []byte
	ttl    time.Duration

	mu        sync.Mutex
	users     map[string]User
	calls     map[string]int
	headers   map[string]http.Header
	overrides map[string]http.HandlerFunc
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:    []byte("apitest-secret"),
		ttl:       time.Hour,
		users:     make(map[string]User),
		calls:     make(map[string]int),
		headers:   make(map[string]http.Header),
		overrides: make(map[string]http.HandlerFunc),
	}

	r := mux.NewRouter()
	api := r.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc(PathRegister, s.route(PathRegister, s.register)).Methods(http.MethodPost)
	api.HandleFunc(PathLogin, s.route(PathLogin, s.login)).Methods(http.MethodPost)
	api.HandleFunc(PathProfile, s.route(PathProfile, s.profile)).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the value to configure the client with.
func (s *Server) BaseURL() string {
	return s.URL + apiPrefix
}

// AddUser registers a user directly and returns it.
func (s *Server) AddUser(name, email, password string) User {
	u := User{ID: uuid.NewString(), Name: name, Email: email, Password: password}
	s.mu.Lock()
	s.users[strings.ToLower(email)] = u
	s.mu.Unlock()
	return u
}

// HasUser reports whether email is registered.
func (s *Server) HasUser(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[strings.ToLower(email)]
	return ok
}

// Calls returns how many requests reached path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// TotalCalls returns the number of requests across all endpoints.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// LastHeader returns the headers of the latest request to path, or nil.
func (s *Server) LastHeader(path string) http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headers[path]
}

// Override replaces the handler for path. Calls are still counted.
func (s *Server) Override(path string, h http.HandlerFunc) {
	s.mu.Lock()
	s.overrides[path] = h
	s.mu.Unlock()
}

// IssueToken signs a token for email valid for ttl (negative for an
// already expired one).
func (s *Server) IssueToken(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	})
	return tok.SignedString(s.secret)
}

func (s *Server) route(path string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[path]++
		s.headers[path] = r.Header.Clone()
		override := s.overrides[path]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		h(w, r)
	}
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Message writes {"message": msg} with status. Useful inside overrides.
func Message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respond(w, r, status, map[string]string{"message": msg})
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		Message(w, r, http.StatusBadRequest, MsgMissingFields)
		return
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		Message(w, r, http.StatusBadRequest, MsgMissingFields)
		return
	}
	if s.HasUser(body.Email) {
		Message(w, r, http.StatusBadRequest, MsgUserExists)
		return
	}
	s.AddUser(body.Name, body.Email, body.Password)
	Message(w, r, http.StatusCreated, MsgRegistered)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		Message(w, r, http.StatusBadRequest, MsgMissingFields)
		return
	}

	s.mu.Lock()
	u, ok := s.users[strings.ToLower(body.Email)]
	s.mu.Unlock()
	if !ok || u.Password != body.Password {
		Message(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}

	token, err := s.IssueToken(u.Email, s.ttl)
	if err != nil {
		Message(w, r, http.StatusInternalServerError, common.MsgServerError)
		return
	}
	respond(w, r, http.StatusOK, map[string]any{"user": u.public(), "token": token})
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	raw, ok := strings.CutPrefix(r.Header.Get(common.AuthorizationHeader), common.BearerPrefix)
	if !ok || raw == "" {
		Message(w, r, http.StatusUnauthorized, MsgInvalidToken)
		return
	}

	c := &claims{}
	_, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		Message(w, r, http.StatusUnauthorized, MsgInvalidToken)
		return
	}

	s.mu.Lock()
	u, ok := s.users[strings.ToLower(c.Email)]
	s.mu.Unlock()
	if !ok {
		Message(w, r, http.StatusUnauthorized, MsgInvalidToken)
		return
	}
	respond(w, r, http.StatusOK, u.public())
}
