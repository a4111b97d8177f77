// Package inventory keeps the authoritative local copy of a
// household's items and reconciles it against the cloud.
package inventory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pantrybase/pantrygo/internal/auth"
	"github.com/pantrybase/pantrygo/internal/models"
)

// freshWindow is how far apart local and remote update stamps may sit
// and still count as the same write. Clock skew between devices makes
// exact equality useless.
const freshWindow = time.Second

// authRetryInterval paces the sign-in poll while unauthorized.
const authRetryInterval = time.Second

// maxSyncBackoff caps the retry delay when the cloud is unreachable at
// startup.
const maxSyncBackoff = 30 * time.Second

// CloudService is the remote inventory surface reconciliation runs
// against.
type CloudService interface {
	ListItems(ctx context.Context) ([]*models.InventoryItem, error)
	ValidationStamps(ctx context.Context) ([]models.ValidationStamp, error)
	AddItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) (*time.Time, error)
	RemoveItem(ctx context.Context, itemID string) (bool, error)
}

// IdentityProvider yields the signed-in user, or an error while nobody
// is.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (*auth.User, error)
}

// Snapshotter persists the local replica between runs.
type Snapshotter interface {
	LoadItems() ([]models.InventoryItem, error)
	ReplaceItems(items []models.InventoryItem) error
}

// Notifier hears about state transitions and item changes so they can
// be fanned out to connected clients.
type Notifier interface {
	SyncStateChanged(state SyncState)
	ItemsChanged()
}

// SyncState tracks where the engine is in its lifecycle.
type SyncState int

const (
	StateUninitialized SyncState = iota
	StateUnauthorized
	StateAuthorizing
	StateReconciling
	StateResyncing
	StateSynced
)

func (s SyncState) String() string {
	switch s {
	case StateUnauthorized:
		return "unauthorized"
	case StateAuthorizing:
		return "authorizing"
	case StateReconciling:
		return "reconciling"
	case StateResyncing:
		return "resyncing"
	case StateSynced:
		return "synced"
	default:
		return "uninitialized"
	}
}

// Store is the local item replica plus the machinery that keeps it and
// the cloud agreeing.
type Store struct {
	cloud     CloudService
	identity  IdentityProvider
	snapshots Snapshotter

	mu        sync.RWMutex
	items     map[string]*models.InventoryItem
	state     SyncState
	uid       string
	powerUser bool
	notifier  Notifier
}

// NewStore builds a store with an empty replica. Call Init to hydrate
// and begin syncing.
func NewStore(cloud CloudService, identity IdentityProvider, snapshots Snapshotter) *Store {
	return &Store{
		cloud:     cloud,
		identity:  identity,
		snapshots: snapshots,
		items:     make(map[string]*models.InventoryItem),
		state:     StateUninitialized,
		uid:       auth.AnonymousUID,
	}
}

// SetNotifier installs the change listener. Call before Init.
func (s *Store) SetNotifier(n Notifier) {
	s.mu.Lock()
	s.notifier = n
	s.mu.Unlock()
}

func (s *Store) setState(state SyncState) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	notifier := s.notifier
	s.mu.Unlock()
	if changed && notifier != nil {
		notifier.SyncStateChanged(state)
	}
}

func (s *Store) notifyItems() {
	s.mu.RLock()
	notifier := s.notifier
	s.mu.RUnlock()
	if notifier != nil {
		notifier.ItemsChanged()
	}
}

// State returns the current lifecycle state.
func (s *Store) State() SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// UID returns the owner id the replica is scoped to.
func (s *Store) UID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uid
}

// IsPowerUser reports whether the signed-in user may edit the shared
// product-code table.
func (s *Store) IsPowerUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.powerUser
}

// Init hydrates the replica from the local database and starts the
// sign-in poll. It returns after the first poll attempt; syncing
// continues in the background until ctx is canceled.
func (s *Store) Init(ctx context.Context) error {
	if s.snapshots != nil {
		saved, err := s.snapshots.LoadItems()
		if err != nil {
			return err
		}
		s.mu.Lock()
		for i := range saved {
			item := saved[i]
			s.items[item.ID] = &item
		}
		s.mu.Unlock()
		log.Printf("📦 Hydrated %d inventory items from local storage", len(saved))
	}

	go s.pollUntilAuthorized(ctx)
	return nil
}

func (s *Store) pollUntilAuthorized(ctx context.Context) {
	backoff := authRetryInterval
	for {
		user, err := s.identity.CurrentUser(ctx)
		if err != nil {
			s.setState(StateUnauthorized)
			select {
			case <-ctx.Done():
				return
			case <-time.After(authRetryInterval):
			}
			continue
		}

		err = s.initAuthorized(ctx, user)
		if err == nil {
			return
		}
		log.Printf("⚠️ Initial sync failed, retrying in %v: %v", backoff, err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		if backoff < maxSyncBackoff {
			backoff *= 2
		}
	}
}

// initAuthorized runs the full startup sequence for a signed-in user:
// adopt the identity, reconcile against cloud stamps, and fall back to
// a full pull when reconciliation cannot converge.
func (s *Store) initAuthorized(ctx context.Context, user *auth.User) error {
	s.setState(StateAuthorizing)
	s.mu.Lock()
	s.uid = user.ID
	s.powerUser = user.IsPowerUser()
	s.mu.Unlock()

	s.setState(StateReconciling)
	stamps, err := s.cloud.ValidationStamps(ctx)
	if err != nil {
		return err
	}
	synced, err := s.reconcile(ctx, stamps, false)
	if err != nil {
		return err
	}
	if !synced {
		log.Printf("🔄 Reconciliation could not converge, pulling everything")
		if err := s.replaceFromCloud(ctx); err != nil {
			return err
		}
	}

	s.persist()
	s.setState(StateSynced)
	s.notifyItems()
	log.Printf("✅ Inventory synced for %s", user.ID)
	return nil
}

// replaceFromCloud throws the replica away and rebuilds it from a full
// listing, re-deriving every id locally.
func (s *Store) replaceFromCloud(ctx context.Context) error {
	cloudItems, err := s.cloud.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(cloudItems) == 0 {
		return nil
	}
	s.mu.Lock()
	uid := s.uid
	s.items = make(map[string]*models.InventoryItem)
	for _, src := range cloudItems {
		item := models.NewInventoryItem(src, uid)
		s.items[item.ID] = item
	}
	s.mu.Unlock()
	return nil
}

// reconcile compares cloud stamps against the replica and pushes
// whatever disagrees: stale locals are updated upstream, locals the
// cloud never saw are added. After a round of pushes the stamps are
// fetched once more and checked again; a second round of disagreement
// means something is fighting us and the caller should do a full pull.
// Items the cloud has that the replica lacks always force a full pull,
// since stamps alone cannot rebuild a record.
func (s *Store) reconcile(ctx context.Context, stamps []models.ValidationStamp, attempted bool) (bool, error) {
	validated := make(map[string]bool)
	var stale []*models.InventoryItem
	missingLocally := false
	didReconcile := false
	reconcileFailure := false

	s.mu.RLock()
	for _, stamp := range stamps {
		item, ok := s.items[stamp.ID]
		if !ok {
			missingLocally = true
			continue
		}
		diff := item.LastUpdated.Sub(stamp.LastUpdated)
		if diff < 0 {
			diff = -diff
		}
		if diff <= freshWindow {
			validated[stamp.ID] = true
		} else {
			stale = append(stale, item)
		}
	}
	localCount := len(s.items)
	var unsynced []*models.InventoryItem
	if len(validated) != localCount {
		for _, item := range s.items {
			if !validated[item.ID] {
				unsynced = append(unsynced, item)
			}
		}
	}
	s.mu.RUnlock()

	if len(stale) > 0 {
		if !attempted {
			for _, item := range stale {
				stamp, err := s.cloud.UpdateItem(ctx, item)
				if err != nil {
					log.Printf("⚠️ Failed to push stale item %s: %v", item.ID, err)
					continue
				}
				if stamp != nil {
					s.mu.Lock()
					item.LastUpdated = *stamp
					s.mu.Unlock()
				}
			}
			log.Printf("🔄 Pushed %d stale items", len(stale))
			didReconcile = true
		} else {
			reconcileFailure = true
		}
	}

	if len(validated) != localCount {
		if !attempted {
			for _, item := range unsynced {
				stamp, err := s.cloud.AddItem(ctx, item)
				if err != nil {
					log.Printf("⚠️ Failed to push unsynced item %s: %v", item.ID, err)
					continue
				}
				if stamp != nil {
					s.mu.Lock()
					item.LastUpdated = *stamp
					s.mu.Unlock()
				}
			}
			log.Printf("🔄 Pushed items missing from the cloud")
			didReconcile = true
		} else {
			reconcileFailure = true
		}
	}

	if missingLocally {
		log.Printf("🔄 Cloud has items this device lacks")
		return false, nil
	}

	if didReconcile && !attempted {
		refreshed, err := s.cloud.ValidationStamps(ctx)
		if err != nil {
			return false, err
		}
		return s.reconcile(ctx, refreshed, true)
	}

	if reconcileFailure {
		log.Printf("⚠️ Reconciliation failed twice")
		return false, nil
	}

	return true, nil
}

// Resync re-runs the authorized startup sequence on demand.
func (s *Store) Resync(ctx context.Context) error {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		s.setState(StateUnauthorized)
		return err
	}
	s.setState(StateResyncing)
	return s.initAuthorized(ctx, user)
}

// SignOut clears the replica and drops back to the anonymous identity.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.items = make(map[string]*models.InventoryItem)
	s.uid = auth.AnonymousUID
	s.powerUser = false
	s.mu.Unlock()
	s.persistEmpty()
	s.setState(StateUninitialized)
	s.notifyItems()
}

// AddItem stores a new record. Without overwrite the cloud write goes
// first and the local copy only lands when it succeeds. With overwrite
// an existing record is replaced locally only; the caller has already
// settled the cloud side.
func (s *Store) AddItem(ctx context.Context, item *models.InventoryItem, overwrite bool) (bool, error) {
	s.mu.RLock()
	_, exists := s.items[item.ID]
	s.mu.RUnlock()

	if exists {
		if !overwrite {
			log.Printf("⚠️ Refusing to overwrite existing item %s", item.ID)
			return false, nil
		}
		s.mu.Lock()
		stored := *item
		s.items[item.ID] = &stored
		s.mu.Unlock()
		s.persist()
		s.notifyItems()
		return true, nil
	}

	if overwrite {
		return false, nil
	}

	stamp, err := s.cloud.AddItem(ctx, item)
	if err != nil {
		return false, err
	}
	if stamp == nil {
		return false, nil
	}
	item.LastUpdated = *stamp
	s.mu.Lock()
	stored := *item
	s.items[item.ID] = &stored
	s.mu.Unlock()
	s.persist()
	s.notifyItems()
	return true, nil
}

// UpdateItem pushes changes for an existing record, cloud first. A
// record driven down to a negligible on-hand quantity is removed
// instead of updated.
func (s *Store) UpdateItem(ctx context.Context, item *models.InventoryItem) (bool, error) {
	s.mu.RLock()
	_, exists := s.items[item.ID]
	s.mu.RUnlock()
	if !exists {
		log.Printf("⚠️ Can't update what doesn't exist: %s", item.ID)
		return false, nil
	}

	if item.ContainersOnHand <= models.OnHandEpsilon {
		log.Printf("🧹 Item %s is used up, removing", item.ID)
		return s.RemoveItem(ctx, item.ID)
	}

	stamp, err := s.cloud.UpdateItem(ctx, item)
	if err != nil {
		return false, err
	}
	if stamp == nil {
		return false, nil
	}
	item.LastUpdated = *stamp
	return s.AddItem(ctx, item, true)
}

// RemoveItem deletes a record, cloud first.
func (s *Store) RemoveItem(ctx context.Context, itemID string) (bool, error) {
	s.mu.RLock()
	_, exists := s.items[itemID]
	s.mu.RUnlock()
	if !exists {
		log.Printf("⚠️ Can't remove what doesn't exist: %s", itemID)
		return false, nil
	}

	removed, err := s.cloud.RemoveItem(ctx, itemID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	s.mu.Lock()
	delete(s.items, itemID)
	s.mu.Unlock()
	s.persist()
	s.notifyItems()
	return true, nil
}

// GetItem returns a copy of the record with the given id, nil when
// absent. Map entries stay private to the store; reconciliation writes
// stamps into them while readers are running.
func (s *Store) GetItem(itemID string) *models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil
	}
	copied := *item
	return &copied
}

// ItemExists reports whether the id is present locally.
func (s *Store) ItemExists(itemID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[itemID]
	return ok
}

// Items returns a snapshot of the replica as copies.
func (s *Store) Items() []*models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]*models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		items = append(items, &copied)
	}
	return items
}

// ClearItems empties the replica without touching the cloud.
func (s *Store) ClearItems() {
	s.mu.Lock()
	s.items = make(map[string]*models.InventoryItem)
	s.mu.Unlock()
	s.persistEmpty()
	s.notifyItems()
}

func (s *Store) persist() {
	if s.snapshots == nil {
		return
	}
	s.mu.RLock()
	items := make([]models.InventoryItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item)
	}
	s.mu.RUnlock()
	if err := s.snapshots.ReplaceItems(items); err != nil {
		log.Printf("⚠️ Failed to persist inventory snapshot: %v", err)
	}
}

func (s *Store) persistEmpty() {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.ReplaceItems(nil); err != nil {
		log.Printf("⚠️ Failed to clear inventory snapshot: %v", err)
	}
}
