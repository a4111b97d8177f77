package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/auth"
	"github.com/pantrybase/pantrygo/internal/config"
	"github.com/pantrybase/pantrygo/internal/gtin"
	"github.com/pantrybase/pantrygo/internal/inventory"
	"github.com/pantrybase/pantrygo/internal/models"
	"github.com/pantrybase/pantrygo/internal/ws"
)

const routerTestSecret = "router-test-secret"

// routerCloud accepts every write and tracks nothing else.
type routerCloud struct {
	gtinRecords map[string]*models.GTINItem
}

func (c *routerCloud) ListItems(ctx context.Context) ([]*models.InventoryItem, error) {
	return nil, nil
}

func (c *routerCloud) ValidationStamps(ctx context.Context) ([]models.ValidationStamp, error) {
	return nil, nil
}

func (c *routerCloud) AddItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error) {
	stamp := time.Now().UTC()
	return &stamp, nil
}

func (c *routerCloud) UpdateItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error) {
	stamp := time.Now().UTC()
	return &stamp, nil
}

func (c *routerCloud) RemoveItem(ctx context.Context, itemID string) (bool, error) {
	return true, nil
}

func (c *routerCloud) GetGTIN(ctx context.Context, code string) (*models.GTINItem, error) {
	return c.gtinRecords[code], nil
}

func (c *routerCloud) CreateGTIN(ctx context.Context, item *models.GTINItem) error {
	return nil
}

func (c *routerCloud) UpdateGTIN(ctx context.Context, item *models.GTINItem) error {
	return nil
}

// memorySnapshots keeps everything in process.
type memorySnapshots struct {
	items []models.InventoryItem
	gtins []models.GTINItem
}

func (m *memorySnapshots) LoadItems() ([]models.InventoryItem, error) { return m.items, nil }

func (m *memorySnapshots) ReplaceItems(items []models.InventoryItem) error {
	m.items = items
	return nil
}

func (m *memorySnapshots) SaveGTINRecords(records []models.GTINItem) error {
	m.gtins = records
	return nil
}

func newTestRouter(t *testing.T) (*Router, *inventory.Store) {
	t.Helper()

	cloud := &routerCloud{gtinRecords: map[string]*models.GTINItem{}}
	session := auth.NewSessionProvider(routerTestSecret)
	token, err := auth.GenerateToken(&auth.User{ID: "harper"}, routerTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	session.SetToken(token)

	snapshots := &memorySnapshots{}
	store := inventory.NewStore(cloud, session, snapshots)
	if err := store.Resync(context.Background()); err != nil {
		t.Fatalf("Failed to sync test store: %v", err)
	}

	cfg := &config.Config{JWTSecret: routerTestSecret}
	cache := gtin.NewCache(cloud)
	return NewRouter(store, cache, session, snapshots, ws.NewHub(), cfg), store
}

func authedRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	token, err := auth.GenerateToken(&auth.User{ID: "harper"}, routerTestSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func routerTestItem() *models.InventoryItem {
	return &models.InventoryItem{
		Brand:            "Vital Farms",
		Food:             "Eggs",
		Measurement:      models.MeasureCount,
		Capacity:         12,
		StorageFormat:    models.FormatCarton,
		StorageLocation:  models.LocationRefrigerator,
		ContainersOnHand: 1,
		FoodCategories:   datatypes.JSONSlice[models.FoodCategory]{models.CategoryEggs},
		Expiration:       time.Now().Add(21 * 24 * time.Hour),
	}
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/items", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", rec.Code)
	}
}

func TestCreateAndListItems(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if created.ID == "" || store.GetItem(created.ID) == nil {
		t.Fatalf("Created item not in the store: %q", created.ID)
	}
	if created.Symbol != "🥚" {
		t.Errorf("Expected egg classification symbol, got %q", created.Symbol)
	}
	if created.ShelfLife == "" {
		t.Error("Expected a shelf life on the enriched view")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "GET", "/api/items", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing items, got %d", rec.Code)
	}
	var views []ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("Failed to decode listing: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(views))
	}
	if views[0].Expression == "" || views[0].Updated == "" {
		t.Errorf("Listing rows should carry display fields: %+v", views[0])
	}
}

func TestCreateItemRejectsInvalidField(t *testing.T) {
	router, _ := newTestRouter(t)
	item := routerTestItem()
	item.Food = ""

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", item))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if resp["error"] != "Invalid field: Product Name" {
		t.Errorf("Unexpected error message: %q", resp["error"])
	}
}

func TestCreateDuplicateConflicts(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409 for a duplicate, got %d", rec.Code)
	}
}

func TestUpdateItemIdentityChangeMovesRecord(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	moved := routerTestItem()
	moved.StorageLocation = models.LocationFreezer

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "PUT", "/api/items/"+created.ID, moved))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if updated.ID == created.ID {
		t.Fatal("Identity change should produce a new id")
	}
	if store.GetItem(created.ID) != nil {
		t.Error("Old record should be gone after the move")
	}
	if store.GetItem(updated.ID) == nil {
		t.Error("New record should exist after the move")
	}
}

func TestUpdateQuantityKeepsID(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	changed := routerTestItem()
	changed.ContainersOnHand = 0.5

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "PUT", "/api/items/"+created.ID, changed))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	item := store.GetItem(created.ID)
	if item == nil {
		t.Fatal("Quantity change should keep the record under its id")
	}
	if item.ContainersOnHand != 0.5 {
		t.Errorf("Expected 0.5 on hand, got %v", item.ContainersOnHand)
	}
}

func TestDeleteItem(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	var created ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "DELETE", "/api/items/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if store.GetItem(created.ID) != nil {
		t.Error("Deleted item still in the store")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "DELETE", "/api/items/"+created.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 deleting twice, got %d", rec.Code)
	}
}

func TestScanMissThenRecord(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "GET", "/api/scan/0011110416605", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var result ScanResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode scan result: %v", err)
	}
	if result.Found {
		t.Fatal("Unknown code should come back not found")
	}

	item := routerTestItem()
	item.Variety = "Pasture Raised"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "PUT", "/api/scan/0011110416605", item))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 recording scan, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "GET", "/api/scan/0011110416605", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode scan result: %v", err)
	}
	if !result.Found {
		t.Fatal("Recorded code should be found on the next scan")
	}
	if result.Variety != "Pasture Raised" || result.Food != "Eggs" {
		t.Errorf("Scan did not round-trip the name: %+v", result)
	}
}

func TestSyncStateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "GET", "/api/sync/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var state map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("Failed to decode state: %v", err)
	}
	if state["state"] != "synced" {
		t.Errorf("Expected synced state, got %v", state["state"])
	}
	if state["uid"] != "harper" {
		t.Errorf("Expected uid harper, got %v", state["uid"])
	}
}

func TestLoginAndLogout(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	body := map[string]interface{}{"username": "rowan", "groups": []string{auth.PowerUserGroup}}
	req := httptest.NewRequest("POST", "/auth/login", encodeBody(t, body))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if resp["token"] == "" || resp["powerUser"] != true {
		t.Errorf("Unexpected login response: %+v", resp)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if store.State() != inventory.StateUninitialized {
		t.Errorf("Logout should reset the engine, state is %v", store.State())
	}
	if len(store.Items()) != 0 {
		t.Error("Logout should clear the replica")
	}
}

func encodeBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("Failed to encode body: %v", err)
	}
	return &buf
}

func TestUpdateItemToZeroRemovesIt(t *testing.T) {
	router, store := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "POST", "/api/items", routerTestItem()))
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}
	var created ItemView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	empty := routerTestItem()
	empty.ContainersOnHand = 0

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, "PUT", "/api/items/"+created.ID, empty))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if store.GetItem(created.ID) != nil {
		t.Error("A record used down to zero should be removed")
	}
}
