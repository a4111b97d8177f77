// Package gtin memoizes product-code lookups so a scanner can be
// pointed at the same barcode repeatedly without hammering the cloud.
package gtin

import (
	"context"
	"log"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pantrybase/pantrygo/internal/models"
)

// Remote is the cloud surface the cache fills itself from. Lookups
// that miss go through GetGTIN; power users push corrections back
// through CreateGTIN and UpdateGTIN.
type Remote interface {
	GetGTIN(ctx context.Context, code string) (*models.GTINItem, error)
	CreateGTIN(ctx context.Context, item *models.GTINItem) error
	UpdateGTIN(ctx context.Context, item *models.GTINItem) error
}

// Cache fronts the cloud product-code table. Misses are fetched one at
// a time; while a fetch is in flight every other lookup returns
// nothing rather than queueing up duplicate requests. Codes the cloud
// has no data for are remembered too, so the next scan of an unknown
// barcode is answered locally.
type Cache struct {
	remote Remote

	entries *gocache.Cache

	mu        sync.Mutex
	inFlight  bool
	powerUser bool
}

// NewCache builds an empty cache over the given remote.
func NewCache(remote Remote) *Cache {
	return &Cache{
		remote:  remote,
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

// SetPowerUser marks whether cache corrections may be pushed upstream.
func (c *Cache) SetPowerUser(enabled bool) {
	c.mu.Lock()
	c.powerUser = enabled
	c.mu.Unlock()
}

// Lookup resolves a product code. A cached entry, including a cached
// miss, is returned immediately. Otherwise the cloud is asked, unless
// another lookup is already waiting on it, in which case the caller
// gets nothing and can simply scan again.
func (c *Cache) Lookup(ctx context.Context, code string) *models.GTINItem {
	if cached, found := c.entries.Get(code); found {
		item, _ := cached.(*models.GTINItem)
		return item
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	response, err := c.remote.GetGTIN(ctx, code)
	if err != nil {
		log.Printf("⚠️ GTIN lookup failed for %s: %v", code, err)
		return nil
	}
	if response == nil {
		c.entries.Set(code, (*models.GTINItem)(nil), gocache.NoExpiration)
		return nil
	}

	c.entries.Set(response.Code, response, gocache.NoExpiration)
	return response
}

// UpdateCache overwrites the cached record for a code with data taken
// from a hand-entered inventory item. Gallons and pounds are folded
// into fluid ounces and ounces first; the stored table only carries
// the base units. The item is normalized in place so the caller keeps
// working with the converted values.
func (c *Cache) UpdateCache(ctx context.Context, code string, item *models.InventoryItem, requestRemoteUpdate bool) {
	if item.Measurement == models.MeasureGal {
		item.Measurement = models.MeasureFlOz
		item.Capacity *= 128
	} else if item.Measurement == models.MeasureLb {
		item.Measurement = models.MeasureOz
		item.Capacity *= 16
	}

	record := &models.GTINItem{
		Code:     code,
		BrandRef: item.Brand,
		Name:     item.Variety + "|" + item.Food + "|",
	}
	capacity := item.Capacity
	switch item.Measurement {
	case models.MeasureOz:
		record.MassOz = &capacity
	case models.MeasureFlOz:
		record.MassFlOz = &capacity
	case models.MeasureG:
		record.MassG = &capacity
	}
	format := item.StorageFormat
	record.PackageFormat = &format
	if len(item.FoodCategories) > 0 {
		category := item.FoodCategories[0]
		record.Category = &category
	}

	c.entries.Set(code, record, gocache.NoExpiration)

	c.mu.Lock()
	push := c.powerUser && requestRemoteUpdate
	c.mu.Unlock()
	if !push {
		return
	}

	// The upstream write is best effort and nobody waits on it.
	go func() {
		existing, err := c.remote.GetGTIN(ctx, code)
		if err != nil {
			log.Printf("⚠️ GTIN pre-write check failed for %s: %v", code, err)
			return
		}
		if existing == nil {
			if err := c.remote.CreateGTIN(ctx, record); err != nil {
				log.Printf("⚠️ GTIN create failed for %s: %v", code, err)
				return
			}
			log.Printf("✅ GTIN created upstream: %s", code)
			return
		}
		if err := c.remote.UpdateGTIN(ctx, record); err != nil {
			log.Printf("⚠️ GTIN update failed for %s: %v", code, err)
			return
		}
		log.Printf("✅ GTIN updated upstream: %s", code)
	}()
}

// Snapshot returns the positive entries for persistence. Cached misses
// stay in memory only; they are cheap to rediscover.
func (c *Cache) Snapshot() []models.GTINItem {
	var records []models.GTINItem
	for _, cached := range c.entries.Items() {
		if item, ok := cached.Object.(*models.GTINItem); ok && item != nil {
			records = append(records, *item)
		}
	}
	return records
}

// Restore seeds the cache from persisted records.
func (c *Cache) Restore(records []models.GTINItem) {
	for i := range records {
		record := records[i]
		c.entries.Set(record.Code, &record, gocache.NoExpiration)
	}
}
