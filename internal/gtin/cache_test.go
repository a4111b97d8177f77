package gtin

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/pantrybase/pantrygo/internal/models"
)

type fakeRemote struct {
	mu       sync.Mutex
	records  map[string]*models.GTINItem
	getCalls int
	creates  int
	updates  int
	getErr   error
	block    chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{records: map[string]*models.GTINItem{}}
}

func (f *fakeRemote) GetGTIN(ctx context.Context, code string) (*models.GTINItem, error) {
	f.mu.Lock()
	f.getCalls++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records[code], nil
}

func (f *fakeRemote) CreateGTIN(ctx context.Context, item *models.GTINItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.records[item.Code] = item
	return nil
}

func (f *fakeRemote) UpdateGTIN(ctx context.Context, item *models.GTINItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.records[item.Code] = item
	return nil
}

func (f *fakeRemote) getCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls
}

func TestLookupFetchesAndCaches(t *testing.T) {
	remote := newFakeRemote()
	remote.records["0123"] = &models.GTINItem{Code: "0123", Name: "roasted|coffee|"}
	cache := NewCache(remote)

	item := cache.Lookup(context.Background(), "0123")
	if item == nil || item.Code != "0123" {
		t.Fatalf("expected a hit, got %+v", item)
	}
	cache.Lookup(context.Background(), "0123")
	if remote.getCallCount() != 1 {
		t.Errorf("expected one remote call, got %d", remote.getCallCount())
	}
}

func TestLookupCachesMisses(t *testing.T) {
	remote := newFakeRemote()
	cache := NewCache(remote)

	if item := cache.Lookup(context.Background(), "9999"); item != nil {
		t.Fatalf("expected nil for unknown code, got %+v", item)
	}
	if item := cache.Lookup(context.Background(), "9999"); item != nil {
		t.Fatalf("expected cached miss, got %+v", item)
	}
	if remote.getCallCount() != 1 {
		t.Errorf("expected one remote call for a cached miss, got %d", remote.getCallCount())
	}
}

func TestLookupErrorIsNotCached(t *testing.T) {
	remote := newFakeRemote()
	remote.getErr = errors.New("network down")
	cache := NewCache(remote)

	if item := cache.Lookup(context.Background(), "0123"); item != nil {
		t.Fatalf("expected nil on error, got %+v", item)
	}
	remote.mu.Lock()
	remote.getErr = nil
	remote.records["0123"] = &models.GTINItem{Code: "0123"}
	remote.mu.Unlock()
	if item := cache.Lookup(context.Background(), "0123"); item == nil {
		t.Fatal("expected the code to be retried after an error")
	}
}

func TestLookupRejectsConcurrentFetch(t *testing.T) {
	remote := newFakeRemote()
	remote.records["0123"] = &models.GTINItem{Code: "0123"}
	remote.block = make(chan struct{})
	cache := NewCache(remote)

	first := make(chan *models.GTINItem)
	go func() {
		first <- cache.Lookup(context.Background(), "0123")
	}()

	// wait for the first lookup to take the gate
	deadline := time.Now().Add(time.Second)
	for remote.getCallCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first lookup never reached the remote")
		}
		time.Sleep(time.Millisecond)
	}

	if item := cache.Lookup(context.Background(), "4567"); item != nil {
		t.Errorf("expected nil while another fetch is in flight, got %+v", item)
	}
	if remote.getCallCount() != 1 {
		t.Errorf("second lookup must not reach the remote, got %d calls", remote.getCallCount())
	}

	close(remote.block)
	if item := <-first; item == nil || item.Code != "0123" {
		t.Errorf("first lookup should still succeed, got %+v", item)
	}
}

func TestUpdateCacheNormalizesUnits(t *testing.T) {
	cache := NewCache(newFakeRemote())
	item := &models.InventoryItem{
		Brand:       "acme",
		Variety:     "whole",
		Food:        "milk",
		Measurement: models.MeasureGal,
		Capacity:    1,
		FoodCategories: datatypes.JSONSlice[models.FoodCategory]{
			models.CategoryMilksAndCreams,
		},
	}
	cache.UpdateCache(context.Background(), "0456", item, false)

	if item.Measurement != models.MeasureFlOz || item.Capacity != 128 {
		t.Errorf("expected in-place conversion to 128 fl oz, got %v %v", item.Capacity, item.Measurement)
	}
	record := cache.Lookup(context.Background(), "0456")
	if record == nil {
		t.Fatal("expected the record to be cached")
	}
	if record.MassFlOz == nil || *record.MassFlOz != 128 {
		t.Errorf("expected 128 fl oz stored, got %+v", record.MassFlOz)
	}
	if record.Name != "whole|milk|" {
		t.Errorf("unexpected packed name %q", record.Name)
	}
	if record.Category == nil || *record.Category != models.CategoryMilksAndCreams {
		t.Errorf("unexpected category %+v", record.Category)
	}
}

func TestUpdateCachePoundsToOunces(t *testing.T) {
	cache := NewCache(newFakeRemote())
	item := &models.InventoryItem{
		Food:        "flour",
		Measurement: models.MeasureLb,
		Capacity:    5,
	}
	cache.UpdateCache(context.Background(), "0789", item, false)
	if item.Measurement != models.MeasureOz || item.Capacity != 80 {
		t.Errorf("expected 80 oz, got %v %v", item.Capacity, item.Measurement)
	}
}

func TestUpdateCachePowerUserPushesUpstream(t *testing.T) {
	remote := newFakeRemote()
	cache := NewCache(remote)
	cache.SetPowerUser(true)

	item := &models.InventoryItem{Food: "coffee", Measurement: models.MeasureOz, Capacity: 12}
	cache.UpdateCache(context.Background(), "0123", item, true)

	deadline := time.Now().Add(time.Second)
	for {
		remote.mu.Lock()
		creates := remote.creates
		remote.mu.Unlock()
		if creates == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("expected an upstream create")
		}
		time.Sleep(time.Millisecond)
	}

	// A second write for the same code now finds upstream data.
	cache.UpdateCache(context.Background(), "0123", item, true)
	deadline = time.Now().Add(time.Second)
	for {
		remote.mu.Lock()
		updates := remote.updates
		remote.mu.Unlock()
		if updates == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("expected an upstream update")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestUpdateCacheRegularUserStaysLocal(t *testing.T) {
	remote := newFakeRemote()
	cache := NewCache(remote)

	item := &models.InventoryItem{Food: "coffee", Measurement: models.MeasureOz, Capacity: 12}
	cache.UpdateCache(context.Background(), "0123", item, true)
	time.Sleep(20 * time.Millisecond)
	if remote.getCallCount() != 0 {
		t.Errorf("regular user writes must not touch the remote, got %d calls", remote.getCallCount())
	}
}

func TestSnapshotSkipsMisses(t *testing.T) {
	remote := newFakeRemote()
	remote.records["0123"] = &models.GTINItem{Code: "0123"}
	cache := NewCache(remote)

	cache.Lookup(context.Background(), "0123")
	cache.Lookup(context.Background(), "9999") // cached miss

	records := cache.Snapshot()
	if len(records) != 1 || records[0].Code != "0123" {
		t.Errorf("expected only the positive entry, got %+v", records)
	}

	restored := NewCache(newFakeRemote())
	restored.Restore(records)
	if item := restored.Lookup(context.Background(), "0123"); item == nil {
		t.Error("expected restored entry to hit")
	}
}
