package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fields whose values depend on the clock or the request
var volatileKeys = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"createdAt":  {},
	"updatedAt":  {},
	"reservedAt": {},
	"startTime":  {},
	"endTime":    {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := volatileKeys[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	t.Helper()

	stmts, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(stmts))
	require.NoError(t, err)
}

func flushAllCache(t testing.TB, client *redis.Client) {
	t.Helper()

	require.NoError(t, client.FlushAll(context.Background()).Err())
}

// registerUser creates the user through the public endpoint so the password
// hash matches whatever the current bcrypt parameters are. A 400 means the
// user already exists from an earlier scenario, which is fine.
func registerUser(t testing.TB, app *TestApp, firstName, lastName, email, password string) {
	t.Helper()

	body := fmt.Sprintf(
		`{"firstName": %q, "lastName": %q, "email": %q, "password": %q}`,
		firstName, lastName, email, password,
	)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.App.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated && rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d while registering user %s", rec.Code, email)
	}
}

func login(t testing.TB, app *TestApp, email, password string) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email": %q, "password": %q}`, email, password)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code, "login failed for %s", email)

	return rec.Result().Cookies()
}

func loginTestUser(t testing.TB, app *TestApp) []*http.Cookie {
	t.Helper()

	registerUser(t, app, TestUserFirstName, TestUserLastName, TestUserEmail, TestUserPassword)

	return login(t, app, TestUserEmail, TestUserPassword)
}
