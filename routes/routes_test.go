package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KaarimHussain/FitFlow-sub000/config"
	"github.com/KaarimHussain/FitFlow-sub000/models"
	"github.com/KaarimHussain/FitFlow-sub000/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

var testSecret = []byte("test-secret")

// testRouter spins up the real router over an in-memory sqlite DB
// unique to the calling test.
func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
		OTPExpiry: 15 * time.Minute,
	}
	return SetupRouter(db, cfg), db
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data %q: %v", string(env.Data), err)
	}
	return out
}

type authResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func register(t *testing.T, r *gin.Engine, username, email string) authResult {
	t.Helper()
	w, env := doRequest(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	return decodeData[authResult](t, env)
}

// registerAdmin creates a user, promotes it directly in the store, and
// logs in again so the token carries the admin role.
func registerAdmin(t *testing.T, r *gin.Engine, db *gorm.DB) authResult {
	t.Helper()
	res := register(t, r, "admin", "admin@example.com")
	if err := db.Model(&models.User{}).Where("id = ?", res.User.ID).
		Update("role", models.RoleAdmin).Error; err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: status %d", w.Code)
	}
	return decodeData[authResult](t, env)
}

func TestRegisterTokenResolvesToUser(t *testing.T) {
	r, _ := testRouter(t)
	res := register(t, r, "alice", "alice@example.com")

	claims, err := utils.ParseJWT(testSecret, res.Token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != res.User.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, res.User.ID)
	}
	if res.User.Role != models.RoleUser {
		t.Errorf("role = %q, want user", res.User.Role)
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	r, _ := testRouter(t)
	register(t, r, "alice", "alice@example.com")

	cases := []struct {
		name     string
		username string
		email    string
	}{
		{"same email different username", "alice2", "alice@example.com"},
		{"same username different email", "alice", "alice2@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doRequest(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
				"username": tc.username, "email": tc.email, "password": "password123",
			})
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if env.Success {
				t.Error("success = true on duplicate registration")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	r, _ := testRouter(t)
	register(t, r, "alice", "alice@example.com")

	t.Run("ok", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "password123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		res := decodeData[authResult](t, env)
		if res.Token == "" {
			t.Error("empty token")
		}
	})
	t.Run("wrong password", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "nope12345",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
	t.Run("unknown email", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "ghost@example.com", "password": "password123",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestMeAndVerify(t *testing.T) {
	r, _ := testRouter(t)
	res := register(t, r, "alice", "alice@example.com")

	w, _ := doRequest(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w, env := doRequest(t, r, http.MethodGet, "/api/auth/me", res.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status = %d", w.Code)
	}
	me := decodeData[models.PublicUser](t, env)
	if me.IsVerified {
		t.Error("new user already verified")
	}

	w, env = doRequest(t, r, http.MethodPost, "/api/auth/verify", res.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify: status = %d", w.Code)
	}
	if verified := decodeData[models.PublicUser](t, env); !verified.IsVerified {
		t.Error("isVerified still false after verify")
	}
}

func TestWorkoutOwnership(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")
	b := register(t, r, "bob", "bob@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/workouts", a.Token, map[string]interface{}{
		"name":     "Leg day",
		"category": "strength",
		"exercises": []map[string]interface{}{
			{"name": "Squat", "sets": 3, "reps": 5, "weight": 100},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decodeData[models.Workout](t, env)
	if created.ID == 0 {
		t.Fatal("created workout has no id")
	}
	if len(created.Exercises) != 1 || created.Exercises[0].Name != "Squat" {
		t.Fatalf("exercises not echoed: %+v", created.Exercises)
	}

	// B sees an empty list
	w, env = doRequest(t, r, http.MethodGet, "/api/workouts", b.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list as b: status = %d", w.Code)
	}
	if list := decodeData[[]models.Workout](t, env); len(list) != 0 {
		t.Errorf("b's list has %d workouts, want 0", len(list))
	}

	path := fmt.Sprintf("/api/workouts/%d", created.ID)
	for _, tc := range []struct {
		name   string
		method string
		body   interface{}
	}{
		{"get", http.MethodGet, nil},
		{"update", http.MethodPut, map[string]string{"name": "stolen"}},
		{"delete", http.MethodDelete, nil},
	} {
		t.Run("non-owner "+tc.name, func(t *testing.T) {
			w, env := doRequest(t, r, tc.method, path, b.Token, tc.body)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
			if env.Message != "Not authorized" {
				t.Errorf("message = %q, want %q", env.Message, "Not authorized")
			}
		})
	}

	// owner still sees it untouched
	w, env = doRequest(t, r, http.MethodGet, path, a.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner get: status = %d", w.Code)
	}
	if got := decodeData[models.Workout](t, env); got.Name != "Leg day" {
		t.Errorf("name = %q after non-owner update attempt", got.Name)
	}
}

func TestWorkoutInvalidID(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")

	for _, path := range []string{"/api/workouts/abc", "/api/workouts/9999"} {
		w, _ := doRequest(t, r, http.MethodGet, path, a.Token, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: status = %d, want 404", path, w.Code)
		}
	}
}

func TestWorkoutValidation(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"category": "cardio"}},
		{"bad category", map[string]interface{}{"name": "x", "category": "yoga"}},
		{"zero sets", map[string]interface{}{
			"name":      "x",
			"exercises": []map[string]interface{}{{"name": "Squat", "sets": 0, "reps": 5}},
		}},
		{"negative weight", map[string]interface{}{
			"name":      "x",
			"exercises": []map[string]interface{}{{"name": "Squat", "sets": 3, "reps": 5, "weight": -10}},
		}},
		{"negative duration", map[string]interface{}{"name": "x", "duration": -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := doRequest(t, r, http.MethodPost, "/api/workouts", a.Token, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("defaults applied", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodPost, "/api/workouts", a.Token,
			map[string]interface{}{"name": "Quick run"})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d", w.Code)
		}
		got := decodeData[models.Workout](t, env)
		if got.Category != models.CategoryOther {
			t.Errorf("category = %q, want other", got.Category)
		}
		if got.Date.IsZero() {
			t.Error("date not defaulted")
		}
	})
}

func TestNutritionTotalCalories(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")

	w, env := doRequest(t, r, http.MethodPost, "/api/nutrition", a.Token, map[string]interface{}{
		"mealType": "breakfast",
		"foodItems": []map[string]interface{}{
			{"name": "Egg", "calories": 70},
			{"name": "Toast", "calories": 120},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	entry := decodeData[models.NutritionEntry](t, env)
	if entry.TotalCalories != 190 {
		t.Errorf("totalCalories = %v, want 190", entry.TotalCalories)
	}

	t.Run("recomputed when items change", func(t *testing.T) {
		path := fmt.Sprintf("/api/nutrition/%d", entry.ID)
		w, env := doRequest(t, r, http.MethodPut, path, a.Token, map[string]interface{}{
			"foodItems": []map[string]interface{}{
				{"name": "Oatmeal", "calories": 150},
			},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("update: status = %d, body %s", w.Code, w.Body.String())
		}
		got := decodeData[models.NutritionEntry](t, env)
		if got.TotalCalories != 150 {
			t.Errorf("totalCalories = %v, want 150", got.TotalCalories)
		}
		if len(got.FoodItems) != 1 || got.FoodItems[0].Name != "Oatmeal" {
			t.Errorf("items not replaced: %+v", got.FoodItems)
		}
	})

	t.Run("caller-supplied total wins", func(t *testing.T) {
		path := fmt.Sprintf("/api/nutrition/%d", entry.ID)
		w, env := doRequest(t, r, http.MethodPut, path, a.Token, map[string]interface{}{
			"foodItems": []map[string]interface{}{
				{"name": "Shake", "calories": 300},
			},
			"totalCalories": 250,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("update: status = %d", w.Code)
		}
		if got := decodeData[models.NutritionEntry](t, env); got.TotalCalories != 250 {
			t.Errorf("totalCalories = %v, want 250", got.TotalCalories)
		}
	})

	t.Run("negative calories rejected", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/nutrition", a.Token, map[string]interface{}{
			"mealType": "snack",
			"foodItems": []map[string]interface{}{
				{"name": "Antifood", "calories": -100},
			},
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing meal type rejected", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/nutrition", a.Token,
			map[string]interface{}{"notes": "?"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestProgressCRUD(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")

	w, _ := doRequest(t, r, http.MethodPost, "/api/progress", a.Token,
		map[string]interface{}{"weight": -80})
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative weight: status = %d, want 400", w.Code)
	}

	w, env := doRequest(t, r, http.MethodPost, "/api/progress", a.Token, map[string]interface{}{
		"weight": 80.5, "waist": 85, "benchPress": 90,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	entry := decodeData[models.ProgressEntry](t, env)

	path := fmt.Sprintf("/api/progress/%d", entry.ID)
	w, env = doRequest(t, r, http.MethodPut, path, a.Token,
		map[string]interface{}{"weight": 79.8})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d", w.Code)
	}
	got := decodeData[models.ProgressEntry](t, env)
	if got.Weight != 79.8 {
		t.Errorf("weight = %v, want 79.8", got.Weight)
	}
	if got.Waist != 85 {
		t.Errorf("waist = %v, want 85 (partial update clobbered it)", got.Waist)
	}

	w, _ = doRequest(t, r, http.MethodDelete, path, a.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	w, _ = doRequest(t, r, http.MethodGet, path, a.Token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", w.Code)
	}
}

func TestAdminGuard(t *testing.T) {
	r, _ := testRouter(t)
	a := register(t, r, "alice", "alice@example.com")

	w, _ := doRequest(t, r, http.MethodGet, "/api/admin/stats", a.Token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-admin: status = %d, want 403", w.Code)
	}
	w, _ = doRequest(t, r, http.MethodGet, "/api/admin/stats", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
}

func TestAdminStatsAndLists(t *testing.T) {
	r, db := testRouter(t)
	admin := registerAdmin(t, r, db)
	a := register(t, r, "alice", "alice@example.com")

	doRequest(t, r, http.MethodPost, "/api/workouts", a.Token,
		map[string]interface{}{"name": "Leg day"})
	doRequest(t, r, http.MethodPost, "/api/nutrition", a.Token,
		map[string]interface{}{"mealType": "lunch"})

	w, env := doRequest(t, r, http.MethodGet, "/api/admin/stats", admin.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status = %d", w.Code)
	}
	var stats struct {
		TotalUsers     int64 `json:"totalUsers"`
		TotalWorkouts  int64 `json:"totalWorkouts"`
		TotalNutrition int64 `json:"totalNutrition"`
		ActiveUsers    int64 `json:"activeUsers"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("totalUsers = %d, want 2", stats.TotalUsers)
	}
	if stats.TotalWorkouts != 1 || stats.TotalNutrition != 1 {
		t.Errorf("resource counts = %d/%d, want 1/1", stats.TotalWorkouts, stats.TotalNutrition)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("activeUsers = %d, want 2 (all just created)", stats.ActiveUsers)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/admin/workouts", admin.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin workouts: status = %d", w.Code)
	}
	var owned []struct {
		Name  string `json:"name"`
		Owner struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(env.Data, &owned); err != nil {
		t.Fatalf("decode owned workouts: %v", err)
	}
	if len(owned) != 1 || owned[0].Owner.Username != "alice" {
		t.Errorf("owner annotation = %+v, want alice", owned)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/admin/users", admin.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin users: status = %d", w.Code)
	}
	if strings.Contains(string(env.Data), "password") {
		t.Error("user listing leaks a password field")
	}
}

func TestAdminDeleteUser(t *testing.T) {
	r, db := testRouter(t)
	admin := registerAdmin(t, r, db)
	a := register(t, r, "alice", "alice@example.com")

	doRequest(t, r, http.MethodPost, "/api/workouts", a.Token, map[string]interface{}{
		"name":      "Leg day",
		"exercises": []map[string]interface{}{{"name": "Squat", "sets": 3, "reps": 5}},
	})
	doRequest(t, r, http.MethodPost, "/api/nutrition", a.Token, map[string]interface{}{
		"mealType":  "lunch",
		"foodItems": []map[string]interface{}{{"name": "Rice", "calories": 200}},
	})
	doRequest(t, r, http.MethodPost, "/api/progress", a.Token,
		map[string]interface{}{"weight": 80})

	t.Run("self delete rejected", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodDelete,
			fmt.Sprintf("/api/admin/users/%d", admin.User.ID), admin.Token, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(strings.ToLower(env.Message), "own account") {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodDelete, "/api/admin/users/9999", admin.Token, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("cascade", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodDelete,
			fmt.Sprintf("/api/admin/users/%d", a.User.ID), admin.Token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		for _, m := range []interface{}{
			&models.Workout{}, &models.NutritionEntry{}, &models.ProgressEntry{},
		} {
			var count int64
			if err := db.Model(m).Where("user_id = ?", a.User.ID).Count(&count).Error; err != nil {
				t.Fatalf("count %T: %v", m, err)
			}
			if count != 0 {
				t.Errorf("%T: %d rows survived the cascade", m, count)
			}
		}

		// deleted user's still-valid token now resolves to nothing
		w, _ = doRequest(t, r, http.MethodGet, "/api/auth/me", a.Token, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("me after delete: status = %d, want 404", w.Code)
		}
	})
}

func TestAdminUpdateUserRole(t *testing.T) {
	r, db := testRouter(t)
	admin := registerAdmin(t, r, db)
	a := register(t, r, "alice", "alice@example.com")

	path := fmt.Sprintf("/api/admin/users/%d/role", a.User.ID)

	w, _ := doRequest(t, r, http.MethodPut, path, admin.Token,
		map[string]string{"role": "superuser"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad role: status = %d, want 400", w.Code)
	}

	w, _ = doRequest(t, r, http.MethodPut, "/api/admin/users/9999/role", admin.Token,
		map[string]string{"role": "admin"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown user: status = %d, want 404", w.Code)
	}

	w, env := doRequest(t, r, http.MethodPut, path, admin.Token,
		map[string]string{"role": "admin"})
	if w.Code != http.StatusOK {
		t.Fatalf("promote: status = %d", w.Code)
	}
	if got := decodeData[models.PublicUser](t, env); got.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", got.Role)
	}
}

func TestAdminUserDetails(t *testing.T) {
	r, db := testRouter(t)
	admin := registerAdmin(t, r, db)
	a := register(t, r, "alice", "alice@example.com")

	doRequest(t, r, http.MethodPost, "/api/workouts", a.Token,
		map[string]interface{}{"name": "Leg day"})
	doRequest(t, r, http.MethodPost, "/api/progress", a.Token,
		map[string]interface{}{"weight": 80})

	w, env := doRequest(t, r, http.MethodGet,
		fmt.Sprintf("/api/admin/users/%d/details", a.User.ID), admin.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var details struct {
		User struct {
			Username      string `json:"username"`
			WorkoutCount  int64  `json:"workoutCount"`
			ProgressCount int64  `json:"progressCount"`
		} `json:"user"`
		Workouts []models.Workout       `json:"workouts"`
		Progress []models.ProgressEntry `json:"progress"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.User.Username != "alice" {
		t.Errorf("username = %q", details.User.Username)
	}
	if details.User.WorkoutCount != 1 || len(details.Workouts) != 1 {
		t.Errorf("workouts = %d/%d, want 1/1", details.User.WorkoutCount, len(details.Workouts))
	}
	if details.User.ProgressCount != 1 || len(details.Progress) != 1 {
		t.Errorf("progress = %d/%d, want 1/1", details.User.ProgressCount, len(details.Progress))
	}
}

func TestPasswordReset(t *testing.T) {
	r, db := testRouter(t)
	register(t, r, "alice", "alice@example.com")

	// unknown email still answers neutrally
	w, _ := doRequest(t, r, http.MethodPost, "/api/auth/forgot-password", "",
		map[string]string{"email": "ghost@example.com"})
	if w.Code != http.StatusOK {
		t.Errorf("unknown email: status = %d, want 200", w.Code)
	}

	// seed a code directly; the mail path is an external side effect
	if err := db.Model(&models.User{}).Where("email = ?", "alice@example.com").
		Updates(map[string]interface{}{
			"reset_code":     "123456",
			"reset_code_exp": time.Now().Add(10 * time.Minute),
		}).Error; err != nil {
		t.Fatalf("seed code: %v", err)
	}

	t.Run("wrong code", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
			"email": "alice@example.com", "code": "000000", "newPassword": "newpass123",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("redeem and login", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
			"email": "alice@example.com", "code": "123456", "newPassword": "newpass123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("reset: status = %d, body %s", w.Code, w.Body.String())
		}

		w, _ = doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "newpass123",
		})
		if w.Code != http.StatusOK {
			t.Errorf("login with new password: status = %d", w.Code)
		}
		w, _ = doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email": "alice@example.com", "password": "password123",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("login with old password: status = %d, want 401", w.Code)
		}
	})

	t.Run("code single use", func(t *testing.T) {
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
			"email": "alice@example.com", "code": "123456", "newPassword": "again12345",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("reused code: status = %d, want 400", w.Code)
		}
	})

	t.Run("expired code", func(t *testing.T) {
		if err := db.Model(&models.User{}).Where("email = ?", "alice@example.com").
			Updates(map[string]interface{}{
				"reset_code":     "654321",
				"reset_code_exp": time.Now().Add(-time.Minute),
			}).Error; err != nil {
			t.Fatalf("seed expired code: %v", err)
		}
		w, _ := doRequest(t, r, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
			"email": "alice@example.com", "code": "654321", "newPassword": "late123456",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
