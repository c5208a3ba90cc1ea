package storefront

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"JewelStore/internal/admin"
	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
	"JewelStore/internal/session"
)

const (
	testSecret    = "test-secret"
	adminEmail    = "admin@example.com"
	adminPassword = "correct-horse"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	admins := admin.NewStore()
	if err := admins.Seed("a_test", adminEmail, adminPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	return NewHandler(
		Deps{
			Catalog: catalog.NewMemStore(),
			Persist: persist.NewMemStore(),
			JWT:     session.NewTokenMaker(testSecret),
			Admins:  admins,
		},
		HTTPDeps{
			Log:     zap.NewNop(),
			Service: "storefront",
		},
	)
}

// doJSON fires one request against the handler and decodes the JSON body
// into out when out is non-nil.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body, out any) int {
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

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response: %v\nbody: %s", method, path, err, rec.Body.String())
		}
	}

	return rec.Code
}

func newVisitor(t *testing.T, h http.Handler) (token, visitorID string) {
	t.Helper()

	var resp struct {
		AccessToken string `json:"access_token"`
		VisitorID   string `json:"visitor_id"`
	}
	if code := doJSON(t, h, http.MethodPost, "/session", "", nil, &resp); code != http.StatusCreated {
		t.Fatalf("create session: got %d, want 201", code)
	}
	if resp.AccessToken == "" || resp.VisitorID == "" {
		t.Fatalf("create session: incomplete response %+v", resp)
	}
	return resp.AccessToken, resp.VisitorID
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestHandler(t)

	if code := doJSON(t, h, http.MethodGet, "/healthz", "", nil, nil); code != http.StatusOK {
		t.Fatalf("healthz: got %d", code)
	}
	if code := doJSON(t, h, http.MethodGet, "/readyz", "", nil, nil); code != http.StatusOK {
		t.Fatalf("readyz: got %d", code)
	}
}

func TestCatalogIsPublic(t *testing.T) {
	h := newTestHandler(t)

	var gold []catalog.Product
	code := doJSON(t, h, http.MethodGet, "/products?category=gold&sort=price-low", "", nil, &gold)
	if code != http.StatusOK {
		t.Fatalf("list gold: got %d", code)
	}
	if len(gold) != 6 {
		t.Fatalf("list gold: got %d products, want 6", len(gold))
	}
	for i := 1; i < len(gold); i++ {
		if gold[i-1].PriceCents > gold[i].PriceCents {
			t.Fatalf("price-low sort violated at %d: %d > %d", i, gold[i-1].PriceCents, gold[i].PriceCents)
		}
	}

	var p catalog.Product
	if code := doJSON(t, h, http.MethodGet, "/products/gold-1", "", nil, &p); code != http.StatusOK {
		t.Fatalf("get gold-1: got %d", code)
	}
	if p.Name != "Royal Gold Necklace" {
		t.Fatalf("get gold-1: got name %q", p.Name)
	}

	if code := doJSON(t, h, http.MethodGet, "/products/no-such-id", "", nil, nil); code != http.StatusNotFound {
		t.Fatalf("get unknown product: got %d, want 404", code)
	}
	if code := doJSON(t, h, http.MethodGet, "/products?sort=bogus", "", nil, nil); code != http.StatusBadRequest {
		t.Fatalf("bad sort: got %d, want 400", code)
	}
}

func TestStateRequiresSession(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/cart", "/wishlist", "/compare", "/recent", "/loyalty"} {
		if code := doJSON(t, h, http.MethodGet, path, "", nil, nil); code != http.StatusUnauthorized {
			t.Fatalf("GET %s without token: got %d, want 401", path, code)
		}
	}

	if code := doJSON(t, h, http.MethodGet, "/cart", "not-a-jwt", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("GET /cart with garbage token: got %d, want 401", code)
	}
}

func TestCartFlow(t *testing.T) {
	h := newTestHandler(t)
	token, _ := newVisitor(t, h)

	type cartView struct {
		Items []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		TotalItems int   `json:"total_items"`
		TotalCents int64 `json:"total_cents"`
	}

	var cart cartView
	if code := doJSON(t, h, http.MethodGet, "/cart", token, nil, &cart); code != http.StatusOK {
		t.Fatalf("get empty cart: got %d", code)
	}
	if cart.TotalItems != 0 {
		t.Fatalf("empty cart: total_items %d", cart.TotalItems)
	}

	add := map[string]string{"product_id": "gold-1"}
	for i := 0; i < 2; i++ {
		if code := doJSON(t, h, http.MethodPost, "/cart/items", token, add, nil); code != http.StatusNoContent {
			t.Fatalf("add gold-1: got %d", code)
		}
	}
	if code := doJSON(t, h, http.MethodPost, "/cart/items", token, map[string]string{"product_id": "gold-2"}, nil); code != http.StatusNoContent {
		t.Fatalf("add gold-2: got %d", code)
	}

	if code := doJSON(t, h, http.MethodGet, "/cart", token, nil, &cart); code != http.StatusOK {
		t.Fatalf("get cart: got %d", code)
	}
	if len(cart.Items) != 2 || cart.TotalItems != 3 {
		t.Fatalf("cart after adds: %d lines, %d items", len(cart.Items), cart.TotalItems)
	}
	if want := int64(349900*2 + 289900); cart.TotalCents != want {
		t.Fatalf("cart total: got %d, want %d", cart.TotalCents, want)
	}

	if code := doJSON(t, h, http.MethodPost, "/cart/items", token, map[string]string{"product_id": "ghost"}, nil); code != http.StatusNotFound {
		t.Fatalf("add unknown product: got %d, want 404", code)
	}

	// Setting quantity to zero removes the line.
	if code := doJSON(t, h, http.MethodPatch, "/cart/items/gold-2", token, map[string]int{"quantity": 0}, nil); code != http.StatusNoContent {
		t.Fatalf("zero quantity: got %d", code)
	}
	if code := doJSON(t, h, http.MethodGet, "/cart", token, nil, &cart); code != http.StatusOK {
		t.Fatalf("get cart: got %d", code)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "gold-1" {
		t.Fatalf("cart after zeroing gold-2: %+v", cart.Items)
	}

	if code := doJSON(t, h, http.MethodDelete, "/cart", token, nil, nil); code != http.StatusNoContent {
		t.Fatalf("clear cart: got %d", code)
	}
	if code := doJSON(t, h, http.MethodGet, "/cart", token, nil, &cart); code != http.StatusOK {
		t.Fatalf("get cart: got %d", code)
	}
	if cart.TotalItems != 0 {
		t.Fatalf("cart after clear: total_items %d", cart.TotalItems)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newTestHandler(t)
	tokenA, _ := newVisitor(t, h)
	tokenB, _ := newVisitor(t, h)

	if code := doJSON(t, h, http.MethodPost, "/cart/items", tokenA, map[string]string{"product_id": "gold-1"}, nil); code != http.StatusNoContent {
		t.Fatalf("add for A: got %d", code)
	}

	var cart struct {
		TotalItems int `json:"total_items"`
	}
	if code := doJSON(t, h, http.MethodGet, "/cart", tokenB, nil, &cart); code != http.StatusOK {
		t.Fatalf("get cart for B: got %d", code)
	}
	if cart.TotalItems != 0 {
		t.Fatalf("B sees A's cart: total_items %d", cart.TotalItems)
	}
}

func TestWishlistAndCompare(t *testing.T) {
	h := newTestHandler(t)
	token, _ := newVisitor(t, h)

	// Wishlist adds are idempotent.
	for i := 0; i < 2; i++ {
		if code := doJSON(t, h, http.MethodPut, "/wishlist/gold-1", token, nil, nil); code != http.StatusNoContent {
			t.Fatalf("wishlist add: got %d", code)
		}
	}

	var wl struct {
		Items []struct {
			Product catalog.Product `json:"product"`
		} `json:"items"`
	}
	if code := doJSON(t, h, http.MethodGet, "/wishlist", token, nil, &wl); code != http.StatusOK {
		t.Fatalf("get wishlist: got %d", code)
	}
	if len(wl.Items) != 1 || wl.Items[0].Product.ID != "gold-1" {
		t.Fatalf("wishlist: %+v", wl.Items)
	}

	// Compare holds at most three products.
	for _, id := range []string{"gold-1", "gold-2", "silver-1", "diamond-1"} {
		if code := doJSON(t, h, http.MethodPost, "/compare/items", token, map[string]string{"product_id": id}, nil); code != http.StatusNoContent {
			t.Fatalf("compare add %s: got %d", id, code)
		}
	}

	var cmp struct {
		Products []catalog.Product `json:"products"`
		Capacity int               `json:"capacity"`
	}
	if code := doJSON(t, h, http.MethodGet, "/compare", token, nil, &cmp); code != http.StatusOK {
		t.Fatalf("get compare: got %d", code)
	}
	if cmp.Capacity != 3 || len(cmp.Products) != 3 {
		t.Fatalf("compare: %d products, capacity %d", len(cmp.Products), cmp.Capacity)
	}
	if cmp.Products[2].ID != "silver-1" {
		t.Fatalf("compare kept wrong products: %+v", cmp.Products)
	}
}

func TestRecentlyViewed(t *testing.T) {
	h := newTestHandler(t)
	token, _ := newVisitor(t, h)

	for _, id := range []string{"gold-1", "gold-2", "gold-1"} {
		if code := doJSON(t, h, http.MethodPut, "/recent/"+id, token, nil, nil); code != http.StatusNoContent {
			t.Fatalf("record view %s: got %d", id, code)
		}
	}

	var resp struct {
		Products []catalog.Product `json:"products"`
	}
	if code := doJSON(t, h, http.MethodGet, "/recent", token, nil, &resp); code != http.StatusOK {
		t.Fatalf("get recent: got %d", code)
	}
	if len(resp.Products) != 2 || resp.Products[0].ID != "gold-1" || resp.Products[1].ID != "gold-2" {
		t.Fatalf("recent order: %+v", resp.Products)
	}
}

func TestAdminFlow(t *testing.T) {
	h := newTestHandler(t)
	visitorToken, visitorID := newVisitor(t, h)

	if code := doJSON(t, h, http.MethodPost, "/admin/login", "", map[string]string{
		"email":    adminEmail,
		"password": "wrong",
	}, nil); code != http.StatusUnauthorized {
		t.Fatalf("bad login: got %d, want 401", code)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if code := doJSON(t, h, http.MethodPost, "/admin/login", "", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, &login); code != http.StatusOK {
		t.Fatalf("login: got %d", code)
	}

	// Visitor tokens cannot reach the back-office.
	if code := doJSON(t, h, http.MethodGet, "/admin/stats", visitorToken, nil, nil); code != http.StatusForbidden {
		t.Fatalf("stats as visitor: got %d, want 403", code)
	}

	var stats struct {
		TotalVisits    int64 `json:"total_visits"`
		UniqueVisitors int64 `json:"unique_visitors"`
	}
	if code := doJSON(t, h, http.MethodGet, "/admin/stats", login.AccessToken, nil, &stats); code != http.StatusOK {
		t.Fatalf("stats: got %d", code)
	}
	if stats.UniqueVisitors != 1 || stats.TotalVisits != 1 {
		t.Fatalf("stats: %+v", stats)
	}

	var earn struct {
		Points int64  `json:"points"`
		Tier   string `json:"tier"`
	}
	if code := doJSON(t, h, http.MethodPost, "/admin/loyalty/"+visitorID+"/earn", login.AccessToken,
		map[string]int64{"points": 1200}, &earn); code != http.StatusOK {
		t.Fatalf("earn: got %d", code)
	}
	if earn.Points != 1200 || earn.Tier != "silver" {
		t.Fatalf("earn: %+v", earn)
	}

	// The visitor sees the awarded points on their own loyalty endpoint.
	var status struct {
		Points int64  `json:"points"`
		Tier   string `json:"tier"`
	}
	if code := doJSON(t, h, http.MethodGet, "/loyalty", visitorToken, nil, &status); code != http.StatusOK {
		t.Fatalf("loyalty status: got %d", code)
	}
	if status.Points != 1200 || status.Tier != "silver" {
		t.Fatalf("loyalty status: %+v", status)
	}
}

func TestRepeatVisitCounting(t *testing.T) {
	h := newTestHandler(t)
	token, _ := newVisitor(t, h)

	if code := doJSON(t, h, http.MethodPost, "/visits", token, nil, nil); code != http.StatusNoContent {
		t.Fatalf("record visit: got %d", code)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if code := doJSON(t, h, http.MethodPost, "/admin/login", "", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}, &login); code != http.StatusOK {
		t.Fatalf("login: got %d", code)
	}

	var stats struct {
		TotalVisits    int64 `json:"total_visits"`
		UniqueVisitors int64 `json:"unique_visitors"`
	}
	if code := doJSON(t, h, http.MethodGet, "/admin/stats", login.AccessToken, nil, &stats); code != http.StatusOK {
		t.Fatalf("stats: got %d", code)
	}
	if stats.TotalVisits != 2 || stats.UniqueVisitors != 1 {
		t.Fatalf("stats after repeat visit: %+v", stats)
	}
}

func TestSessionRateLimit(t *testing.T) {
	h := newTestHandler(t)

	var last int
	for i := 0; i < sessionLimitPerMin+1; i++ {
		last = doJSON(t, h, http.MethodPost, "/session", "", nil, nil)
	}

	if last != http.StatusTooManyRequests {
		t.Fatalf("request past the limit: got %d, want 429", last)
	}
}
