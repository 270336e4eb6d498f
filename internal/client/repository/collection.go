// Package repository implements the per-entity-type sync logic once, as a
// generic collection: read the local cache, fall back to the remote API,
// mutate remotely first and patch the cache after. Each entity type gets its
// own Collection instance, parameterized by GraphQL documents and the cache
// table name.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ourganize/ourganize-cli/internal/client/gateway"
	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/logging"
)

// Entity is the contract cached records must satisfy: a stable server-assigned
// id, an owning user and a value for the table's semantic index. Ids are never
// minted locally; a record only enters the collection after the server echoed
// it back.
type Entity interface {
	EntityID() string
	OwnerID() string
	IndexKey() string
}

// Documents names the GraphQL operations of one entity type and the response
// fields their payloads live under.
type Documents struct {
	List      string
	ListField string

	Create      string
	CreateField string

	Update      string
	UpdateField string

	Delete      string
	DeleteField string
}

// Collection mediates between callers, the local store and the remote
// gateway for one entity type. All operations are serialized per collection:
// two concurrent mutations never interleave on the in-memory slice.
type Collection[T Entity] struct {
	table string
	docs  Documents
	gw    gateway.Client
	store *localstore.Store
	log   logging.Logger

	mu       sync.Mutex
	items    []T
	hydrated bool
	busy     atomic.Bool
}

// New builds a collection for one entity type. table must be one of the
// store's entity tables.
func New[T Entity](table string, docs Documents, gw gateway.Client, store *localstore.Store, log logging.Logger) *Collection[T] {
	return &Collection[T]{
		table: table,
		docs:  docs,
		gw:    gw,
		store: store,
		log:   log.With("collection", table),
	}
}

// Table returns the local-store table backing this collection.
func (c *Collection[T]) Table() string { return c.table }

// Busy reports whether an operation is currently awaiting I/O.
func (c *Collection[T]) Busy() bool { return c.busy.Load() }

// Items returns a copy of the in-memory collection without touching the
// store or the network.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Load returns the collection. Unless forced, a populated in-memory
// collection is served as-is; an empty one is hydrated from the local cache
// first and only then from the API. A successful fetch replaces both the
// in-memory collection and the cache table; a failed fetch leaves whatever
// was held before.
func (c *Collection[T]) Load(ctx context.Context, force bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy.Store(true)
	defer c.busy.Store(false)

	c.hydrateLocked(ctx)

	if len(c.items) > 0 && !force {
		return c.copyItemsLocked(), nil
	}

	fetched, err := c.fetchRemote(ctx)
	if err != nil {
		c.log.Warn(ctx, "remote fetch failed", "error", err)
		return c.copyItemsLocked(), err
	}

	c.items = fetched
	c.persistAllLocked(ctx)
	return c.copyItemsLocked(), nil
}

// Create sends the create mutation and, on success, prepends the
// server-echoed entity to the collection and persists it. Mutations hydrate
// from the cache first so records cached by an earlier run survive. On
// failure nothing changes locally.
func (c *Collection[T]) Create(ctx context.Context, input any) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy.Store(true)
	defer c.busy.Store(false)

	c.hydrateLocked(ctx)

	created, err := c.mutateEntity(ctx, c.docs.Create, c.docs.CreateField, map[string]any{"input": input})
	if err != nil {
		return zero, err
	}

	c.items = append([]T{created}, c.items...)
	c.persistAllLocked(ctx)
	return created, nil
}

// Update sends the update mutation and splices the server-echoed entity over
// the matching record. A response for an id the collection does not hold is
// still a success; it is logged as a consistency warning.
func (c *Collection[T]) Update(ctx context.Context, id string, input any) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy.Store(true)
	defer c.busy.Store(false)

	c.hydrateLocked(ctx)

	updated, err := c.mutateEntity(ctx, c.docs.Update, c.docs.UpdateField, map[string]any{"id": id, "input": input})
	if err != nil {
		return zero, err
	}

	replaced := false
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		c.log.Warn(ctx, "updated record missing from local collection", "id", id)
	}

	c.persistAllLocked(ctx)
	return updated, nil
}

// Remove sends the delete mutation and, on success, drops the entity from
// the collection and the cache table.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy.Store(true)
	defer c.busy.Store(false)

	c.hydrateLocked(ctx)

	var out map[string]json.RawMessage
	if err := c.gw.Mutate(ctx, c.docs.Delete, map[string]any{"id": id}, &out); err != nil {
		return err
	}
	if !deletionConfirmed(out[c.docs.DeleteField]) {
		return fmt.Errorf("server did not confirm deletion of %s", id)
	}

	filtered := c.items[:0:0]
	for _, item := range c.items {
		if item.EntityID() != id {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered

	if err := c.store.Remove(ctx, c.table, id); err != nil {
		c.log.Error(ctx, "cache delete failed", "id", id, "error", err)
	}
	return nil
}

// Clear empties the in-memory collection, resets hydration and wipes the
// cache table. Called at logout.
func (c *Collection[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.hydrated = false
	return c.store.ReplaceAll(ctx, c.table, nil)
}

// hydrateLocked fills the in-memory collection from the local cache on first
// access. Cache failures already degrade to an empty read inside the store.
func (c *Collection[T]) hydrateLocked(ctx context.Context) {
	if c.hydrated {
		return
	}
	records := c.store.GetAll(ctx, c.table)
	items := make([]T, 0, len(records))
	for _, r := range records {
		var item T
		if err := json.Unmarshal(r.Data, &item); err != nil {
			c.log.Error(ctx, "cache record corrupted", "id", r.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	if len(items) > 0 {
		c.items = items
		c.log.Debug(ctx, "hydrated from cache", "count", len(items))
	}
	c.hydrated = true
}

func (c *Collection[T]) fetchRemote(ctx context.Context) ([]T, error) {
	var out map[string]json.RawMessage
	if err := c.gw.Query(ctx, c.docs.List, nil, &out); err != nil {
		return nil, err
	}

	raw, ok := out[c.docs.ListField]
	if !ok {
		return nil, fmt.Errorf("response missing field %q", c.docs.ListField)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s list: %w", c.table, err)
	}
	return list, nil
}

func (c *Collection[T]) mutateEntity(ctx context.Context, doc, field string, vars map[string]any) (T, error) {
	var zero T

	var out map[string]json.RawMessage
	if err := c.gw.Mutate(ctx, doc, vars, &out); err != nil {
		return zero, err
	}

	raw, ok := out[field]
	if !ok || string(raw) == "null" {
		return zero, fmt.Errorf("response missing field %q", field)
	}

	var entity T
	if err := json.Unmarshal(raw, &entity); err != nil {
		return zero, fmt.Errorf("failed to decode %s entity: %w", c.table, err)
	}
	return entity, nil
}

// persistAllLocked writes the full in-memory collection to the cache table.
// Cache write failures are logged, not surfaced: the remote mutation already
// succeeded and the in-memory state is correct.
func (c *Collection[T]) persistAllLocked(ctx context.Context) {
	records := make([]localstore.Record, 0, len(c.items))
	for _, item := range c.items {
		data, err := json.Marshal(item)
		if err != nil {
			c.log.Error(ctx, "failed to encode record", "id", item.EntityID(), "error", err)
			return
		}
		records = append(records, localstore.Record{
			ID:     item.EntityID(),
			UserID: item.OwnerID(),
			Index:  item.IndexKey(),
			Data:   data,
		})
	}
	if err := c.store.ReplaceAll(ctx, c.table, records); err != nil {
		c.log.Error(ctx, "cache persist failed", "error", err)
	}
}

func (c *Collection[T]) copyItemsLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// deletionConfirmed interprets the delete mutation's payload: servers answer
// with a boolean, a status object or the deleted entity. Absent/false/null
// all mean "not deleted".
func deletionConfirmed(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s != ""
	}
	return string(raw) != "null"
}
