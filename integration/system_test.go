//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

func TestSystem_E2E_WithDB(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var sess struct {
		AccessToken string `json:"access_token"`
		VisitorID   string `json:"visitor_id"`
	}
	doJSON(t, http.MethodPost, baseURL+"/session", nil, &sess, 201)
	if sess.AccessToken == "" || sess.VisitorID == "" {
		t.Fatalf("incomplete session response: %+v", sess)
	}

	var products []map[string]any
	doJSON(t, http.MethodGet, baseURL+"/products?category=gold&sort=price-low", nil, &products, 200)
	if len(products) == 0 {
		t.Fatalf("expected non-empty gold catalog")
	}

	pid, _ := products[0]["id"].(string)
	if pid == "" {
		t.Fatalf("product id missing in response: %#v", products[0])
	}

	doJSONAuth(t, http.MethodPost, baseURL+"/cart/items", sess.AccessToken, map[string]any{
		"product_id": pid,
	}, nil, 204)
	doJSONAuth(t, http.MethodPut, baseURL+"/wishlist/"+pid, sess.AccessToken, nil, nil, 204)

	var cart struct {
		TotalItems int `json:"total_items"`
	}
	doJSONAuth(t, http.MethodGet, baseURL+"/cart", sess.AccessToken, nil, &cart, 200)
	if cart.TotalItems != 1 {
		t.Fatalf("cart total_items=%d want=1", cart.TotalItems)
	}

	// State must survive a service restart when backed by Postgres.
	if os.Getenv("E2E_RESTART_STOREFRONT") == "1" {
		restartStorefrontContainer(t, ctx)
		waitReady(t, ctx, baseURL+"/readyz")

		doJSONAuth(t, http.MethodGet, baseURL+"/cart", sess.AccessToken, nil, &cart, 200)
		if cart.TotalItems != 1 {
			t.Fatalf("cart lost across restart: total_items=%d", cart.TotalItems)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func doJSON(t *testing.T, method, url string, body any, out any, want int) {
	t.Helper()
	doJSONAuth(t, method, url, "", body, out, want)
}

func doJSONAuth(t *testing.T, method, url, token string, body any, out any, want int) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("%s %s: status=%d want=%d", method, url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
