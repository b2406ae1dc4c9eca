package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"simplesocial/internal/models"
)

const registrationFailed = "Registration failed"

type userRepository struct {
	client *Client
}

func NewUserRepository(client *Client) UserRepository {
	return &userRepository{client: client}
}

// Login exchanges credentials for an access token at the JWT login endpoint.
func (r *userRepository) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := r.client.newRequest(ctx, http.MethodPost, "/auth/jwt/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.do(req)
	if err != nil {
		return "", &AuthError{Op: "login", Message: "backend unreachable", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		detail := readDetail(resp)
		r.client.logger.Info("login rejected", zap.Int("status", resp.StatusCode), zap.String("detail", detail))
		return "", &AuthError{Op: "login", Message: "invalid email or password"}
	}

	var token models.LoginResponse
	if err := decodeJSON(resp, &token); err != nil {
		return "", &AuthError{Op: "login", Message: "malformed token response", Err: err}
	}
	if token.AccessToken == "" {
		return "", &AuthError{Op: "login", Message: "empty access token"}
	}

	return token.AccessToken, nil
}

// Register creates an account. It never signs the user in.
func (r *userRepository) Register(ctx context.Context, email, password string) error {
	body, err := json.Marshal(models.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("encoding registration: %w", err)
	}

	req, err := r.client.newRequest(ctx, http.MethodPost, "/auth/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.do(req)
	if err != nil {
		return &AuthError{Op: "register", Message: registrationFailed, Err: err}
	}

	if resp.StatusCode != http.StatusCreated {
		detail := readDetail(resp)
		if detail == "" {
			detail = registrationFailed
		}
		return &AuthError{Op: "register", Message: detail}
	}
	drain(resp)

	return nil
}

// CurrentUser fetches the profile for token, which is passed explicitly
// because it is not in the session yet during login.
func (r *userRepository) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	req, err := r.client.newRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.do(req)
	if err != nil {
		return nil, &AuthError{Op: "profile", Message: "backend unreachable", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		drain(resp)
		return nil, &AuthError{Op: "profile", Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	var user models.User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, &AuthError{Op: "profile", Message: "malformed profile", Err: err}
	}
	if user.Email == "" {
		return nil, &AuthError{Op: "profile", Message: "profile has no email"}
	}

	return &user, nil
}
