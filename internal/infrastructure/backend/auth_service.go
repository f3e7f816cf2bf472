package backend

import (
	"context"
	"net/http"

	"github.com/orbit-facilities/console/internal/core/domain"
)

const (
	tokenPath    = "/api/token/"
	registerPath = "/api/register/"
)

// AuthService exchanges credentials for tokens against the backend. It does
// not interpret failures: a 401 from the token endpoint comes back as a plain
// *APIError for the screen layer to present.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	var pair domain.TokenPair
	body := tokenRequest{Username: creds.Username, Password: creds.Password}
	if err := s.client.Do(ctx, http.MethodPost, tokenPath, body, &pair); err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) error {
	body := registerRequest{
		Email:    reg.Email,
		Username: reg.Username,
		Password: reg.Password,
		Role:     reg.Role,
	}
	if body.Role == "" {
		body.Role = domain.RoleAdmin
	}
	return s.client.Do(ctx, http.MethodPost, registerPath, body, nil)
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
