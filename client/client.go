// Package client is a typed Go client for the FitFlow API, one method
// per endpoint. UIs and tools consume the API through it instead of
// hand-building requests.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KaarimHussain/FitFlow-sub000/models"
	"github.com/KaarimHussain/FitFlow-sub000/services"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

// APIError is any non-2xx response, decoded from the envelope.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// do issues a request and decodes the envelope's data field into out
// (out may be nil for message-only responses).
func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
		Errors  []string        `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Success {
		return &APIError{Status: resp.StatusCode, Message: envelope.Message, Errors: envelope.Errors}
	}
	if out != nil && envelope.Data != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

// ---- auth ----

type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(username, email, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(email, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

func (c *Client) Me() (*models.PublicUser, error) {
	var out models.PublicUser
	if err := c.do(http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Verify() (*models.PublicUser, error) {
	var out models.PublicUser
	if err := c.do(http.MethodPost, "/api/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(email string) error {
	return c.do(http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *Client) ResetPassword(email, code, newPassword string) error {
	body := map[string]string{"email": email, "code": code, "newPassword": newPassword}
	return c.do(http.MethodPost, "/api/auth/reset-password", body, nil)
}

// ---- workouts ----

func (c *Client) ListWorkouts() ([]models.Workout, error) {
	var out []models.Workout
	if err := c.do(http.MethodGet, "/api/workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetWorkout(id uint) (*models.Workout, error) {
	var out models.Workout
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/workouts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkout(in services.WorkoutInput) (*models.Workout, error) {
	var out models.Workout
	if err := c.do(http.MethodPost, "/api/workouts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkout(id uint, in services.WorkoutUpdate) (*models.Workout, error) {
	var out models.Workout
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/workouts/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkout(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/workouts/%d", id), nil, nil)
}

// ---- nutrition ----

func (c *Client) ListNutrition() ([]models.NutritionEntry, error) {
	var out []models.NutritionEntry
	if err := c.do(http.MethodGet, "/api/nutrition", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetNutrition(id uint) (*models.NutritionEntry, error) {
	var out models.NutritionEntry
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/nutrition/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNutrition(in services.NutritionInput) (*models.NutritionEntry, error) {
	var out models.NutritionEntry
	if err := c.do(http.MethodPost, "/api/nutrition", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNutrition(id uint, in services.NutritionUpdate) (*models.NutritionEntry, error) {
	var out models.NutritionEntry
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/nutrition/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNutrition(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/nutrition/%d", id), nil, nil)
}

// ---- progress ----

func (c *Client) ListProgress() ([]models.ProgressEntry, error) {
	var out []models.ProgressEntry
	if err := c.do(http.MethodGet, "/api/progress", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProgress(id uint) (*models.ProgressEntry, error) {
	var out models.ProgressEntry
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/progress/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProgress(in services.ProgressInput) (*models.ProgressEntry, error) {
	var out models.ProgressEntry
	if err := c.do(http.MethodPost, "/api/progress", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProgress(id uint, in services.ProgressUpdate) (*models.ProgressEntry, error) {
	var out models.ProgressEntry
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/progress/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProgress(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/progress/%d", id), nil, nil)
}

// ---- admin ----

func (c *Client) AdminStats() (*services.Stats, error) {
	var out services.Stats
	if err := c.do(http.MethodGet, "/api/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminListUsers() ([]services.AdminUser, error) {
	var out []services.AdminUser
	if err := c.do(http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminListAllWorkouts() ([]services.OwnedWorkout, error) {
	var out []services.OwnedWorkout
	if err := c.do(http.MethodGet, "/api/admin/workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminListAllNutrition() ([]services.OwnedNutrition, error) {
	var out []services.OwnedNutrition
	if err := c.do(http.MethodGet, "/api/admin/nutrition", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminListAllProgress() ([]services.OwnedProgress, error) {
	var out []services.OwnedProgress
	if err := c.do(http.MethodGet, "/api/admin/progress", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminDeleteUser(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

func (c *Client) AdminUpdateUserRole(id uint, role string) (*models.PublicUser, error) {
	var out models.PublicUser
	body := map[string]string{"role": role}
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUserDetails(id uint) (*services.UserDetails, error) {
	var out services.UserDetails
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/admin/users/%d/details", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
