package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/harborworks/fleetdeck/api"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository/mock"
)

func seedUsers(m *mock.Store) {
	m.Users = []models.User{
		{ID: "1", Name: "Admin", Email: "admin@entnt.in", Password: "admin123", Role: models.RoleAdmin},
		{ID: "3", Name: "Engineer", Email: "engineer@entnt.in", Password: "engine123", Role: models.RoleEngineer},
	}
}

func TestAuthHandlers(t *testing.T) {
	secret := "testsecret"
	tokenDur := 1 * time.Hour

	tests := []struct {
		name       string
		path       string
		body       any
		prepare    func(m *mock.Store)
		wantStatus int
		checkBody  func(t *testing.T, b []byte)
	}{
		{
			name:       "Login_InvalidRequest",
			path:       "/login",
			body:       "not a json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Login_MissingFields_Email",
			path:       "/login",
			body:       map[string]string{"password": "admin123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Login_MissingFields_Password",
			path:       "/login",
			body:       map[string]string{"email": "admin@entnt.in"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Login_UnknownEmail",
			path:       "/login",
			body:       map[string]string{"email": "nobody@entnt.in", "password": "admin123"},
			prepare:    seedUsers,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Login_WrongPassword",
			path:       "/login",
			body:       map[string]string{"email": "admin@entnt.in", "password": "nope"},
			prepare:    seedUsers,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Login_Success",
			path:       "/login",
			body:       map[string]string{"email": "admin@entnt.in", "password": "admin123"},
			prepare:    seedUsers,
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, b []byte) {
				var resp struct {
					Token string `json:"token"`
					User  struct {
						Email    string `json:"email"`
						Role     string `json:"role"`
						Password string `json:"password"`
					} `json:"user"`
				}
				if err := json.Unmarshal(b, &resp); err != nil {
					t.Fatalf("unmarshal response: %v", err)
				}
				if resp.Token == "" {
					t.Fatalf("empty token")
				}
				if resp.User.Email != "admin@entnt.in" || resp.User.Role != "Admin" {
					t.Fatalf("unexpected user view: %+v", resp.User)
				}
				if resp.User.Password != "" {
					t.Fatalf("password leaked in response")
				}

				tok, err := jwt.Parse(resp.Token, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
				if err != nil {
					t.Fatalf("parse token: %v", err)
				}
				claims, ok := tok.Claims.(jwt.MapClaims)
				if !ok {
					t.Fatalf("unexpected claims type")
				}
				if claims["email"] != "admin@entnt.in" || claims["role"] != "Admin" {
					t.Fatalf("unexpected claims: %v", claims)
				}
				if expF, ok := claims["exp"].(float64); !ok || int64(expF) < time.Now().Unix() {
					t.Fatalf("invalid exp claim")
				}
			},
		},
		{
			name:       "Logout_OK",
			path:       "/logout",
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, b []byte) {
				if !bytes.Contains(b, []byte("signed out")) {
					t.Fatalf("unexpected body: %s", b)
				}
			},
		},
		{
			name:       "Me_NobodyLoggedIn",
			path:       "/me",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Me_LoggedIn",
			path: "/me",
			prepare: func(m *mock.Store) {
				seedUsers(m)
				m.Current = &m.Users[1]
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, b []byte) {
				var u struct {
					Email string `json:"email"`
					Role  string `json:"role"`
				}
				if err := json.Unmarshal(b, &u); err != nil {
					t.Fatalf("unmarshal user: %v", err)
				}
				if u.Email != "engineer@entnt.in" || u.Role != "Engineer" {
					t.Fatalf("unexpected user: %+v", u)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mock.New()
			if tt.prepare != nil {
				tt.prepare(m)
			}
			handler := api.NewAuthHandler(m, secret, tokenDur)

			var bodyReader io.Reader
			if tt.body != nil {
				b, _ := json.Marshal(tt.body)
				bodyReader = bytes.NewReader(b)
			}
			req := httptest.NewRequest(http.MethodPost, tt.path, bodyReader)
			w := httptest.NewRecorder()

			switch tt.path {
			case "/login":
				handler.Login(w, req)
			case "/logout":
				handler.Logout(w, req)
			case "/me":
				handler.Me(w, req)
			default:
				t.Fatalf("unknown path %s", tt.path)
			}

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d body=%s", res.StatusCode, tt.wantStatus, data)
			}
			if tt.checkBody != nil {
				tt.checkBody(t, data)
			}
		})
	}
}

func TestLogin_SetsSession(t *testing.T) {
	m := mock.New()
	seedUsers(m)
	handler := api.NewAuthHandler(m, "testsecret", time.Hour)

	b, _ := json.Marshal(map[string]string{"email": "engineer@entnt.in", "password": "engine123"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(b))
	w := httptest.NewRecorder()
	handler.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body)
	}
	if m.Current == nil || m.Current.Email != "engineer@entnt.in" {
		t.Fatalf("session not set: %#v", m.Current)
	}

	handler.Logout(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/logout", nil))
	if m.Current != nil {
		t.Fatalf("session survives logout")
	}
}
