//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/construction-tracker/backend/config"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/infra/dependency"
	"github.com/construction-tracker/backend/internal/integration/persistence"
	"github.com/construction-tracker/backend/internal/integration/persistence/model"
	"github.com/construction-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the per-scenario state: an in-process API server backed
// by a fresh in-memory database, the last HTTP response, and named values
// remembered from earlier responses.
type testContext struct {
	server  *httptest.Server
	db      *gorm.DB
	client  *http.Client
	headers map[string]string

	responseStatus int
	responseRaw    []byte
	responseJSON   any

	vars map[string]string
}

// InitializeTestSuite sets up resources before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers the step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db, err := mock.NewDB()
		if err != nil {
			return ctx, fmt.Errorf("failed to open test database: %w", err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Redis.Enabled = false

		injector := dependency.NewInjector(cfg, db)
		engine := injector.Router.Setup("test")

		test.server = httptest.NewServer(engine)
		test.db = db
		test.client = &http.Client{Timeout: 10 * time.Second}
		test.headers = map[string]string{}
		test.vars = map[string]string{}
		test.responseStatus = 0
		test.responseRaw = nil
		test.responseJSON = nil

		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^a user exists with username "([^"]*)" password "([^"]*)" and role "([^"]*)"$`, test.aUserExists)
	ctx.Step(`^a root operator exists with username "([^"]*)" and password "([^"]*)"$`, test.aRootOperatorExists)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^the default categories are seeded$`, test.theDefaultCategoriesAreSeeded)

	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)
	ctx.Step(`^the building "([^"]*)" should have spent amount "([^"]*)"$`, test.theBuildingShouldHaveSpentAmount)
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) aUserExists(username, password, role string) error {
	return t.createUser(username, password, entity.Role(role), false)
}

func (t *testContext) aRootOperatorExists(username, password string) error {
	return t.createUser(username, password, entity.RoleAdmin, true)
}

func (t *testContext) createUser(username, password string, role entity.Role, root bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	user := entity.NewUser(username, "", "", "", string(hash), role, root)
	repo := persistence.NewUserRepository(t.db)
	if err := repo.Create(context.Background(), user); err != nil {
		return fmt.Errorf("failed to create user %q: %w", username, err)
	}

	t.vars[username+"_id"] = user.ID.String()
	return nil
}

func (t *testContext) iAmLoggedInAs(username, password string) error {
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	resp, err := t.client.Post(t.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login as %q failed with status %d: %s", username, resp.StatusCode, raw)
	}

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}

	t.headers["Authorization"] = "Bearer " + payload.AccessToken
	t.vars["access_token"] = payload.AccessToken
	t.vars["refresh_token"] = payload.RefreshToken
	return nil
}

func (t *testContext) theDefaultCategoriesAreSeeded() error {
	repo := persistence.NewCategoryRepository(t.db)
	return repo.Seed(context.Background(), entity.DefaultCategories())
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.expand(body.Content))
	return t.doRequest(method, path, payload)
}

func (t *testContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, t.server.URL+t.expand(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.responseStatus = resp.StatusCode
	t.responseRaw, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	t.responseJSON = nil
	if len(t.responseRaw) > 0 {
		_ = json.Unmarshal(t.responseRaw, &t.responseJSON)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.responseStatus != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, t.responseStatus, t.responseRaw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, want string) error {
	value, err := t.lookup(field)
	if err != nil {
		return err
	}

	got := stringify(value)
	if got != t.expand(want) {
		return fmt.Errorf("expected field %q to be %q, got %q", field, t.expand(want), got)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookup(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.lookup(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not an array", field)
	}
	if len(list) != count {
		return fmt.Errorf("expected field %q to have %d items, got %d", field, count, len(list))
	}
	return nil
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	value, err := t.lookup(field)
	if err != nil {
		return err
	}
	t.vars[name] = stringify(value)
	return nil
}

func (t *testContext) theBuildingShouldHaveSpentAmount(name, want string) error {
	id, ok := t.vars[name]
	if !ok {
		return fmt.Errorf("no remembered building named %q", name)
	}

	var row model.BuildingModel
	if err := t.db.First(&row, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to load building %q: %w", name, err)
	}

	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !row.SpentAmount.Equal(expected) {
		return fmt.Errorf("expected spent amount %s, got %s", expected, row.SpentAmount)
	}
	return nil
}

// expand replaces ${name} placeholders with values remembered earlier in the
// scenario.
func (t *testContext) expand(s string) string {
	for name, value := range t.vars {
		s = strings.ReplaceAll(s, "${"+name+"}", value)
	}
	return s
}

// lookup walks a dot-separated path through the decoded response body.
// Numeric path segments index into arrays.
func (t *testContext) lookup(path string) (any, error) {
	if t.responseJSON == nil {
		return nil, fmt.Errorf("response body is not JSON: %s", t.responseRaw)
	}

	current := t.responseJSON
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (at %q)", path, part)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", part, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into field %q at %q", path, part)
		}
	}
	return current, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}
