package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourganize/ourganize-cli/internal/client/localstore"
	"github.com/ourganize/ourganize-cli/internal/client/models"
	"github.com/ourganize/ourganize-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// fakeGateway answers queries and mutations from canned JSON payloads and
// counts calls.
type fakeGateway struct {
	queryPayload  string
	queryErr      error
	queryCalls    int
	mutatePayload string
	mutateErr     error
	mutateCalls   int
}

func (f *fakeGateway) Query(ctx context.Context, doc string, vars map[string]any, out any) error {
	f.queryCalls++
	if f.queryErr != nil {
		return f.queryErr
	}
	return json.Unmarshal([]byte(f.queryPayload), out)
}

func (f *fakeGateway) Mutate(ctx context.Context, doc string, vars map[string]any, out any) error {
	f.mutateCalls++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	return json.Unmarshal([]byte(f.mutatePayload), out)
}

var skillDocs = Documents{
	List:      `query GetUserSkills { userSkills { id } }`,
	ListField: "userSkills",

	Create:      `mutation CreateUserSkill($input: UserSkillInput!) { createUserSkill(input: $input) { id } }`,
	CreateField: "createUserSkill",

	Update:      `mutation UpdateUserSkill($id: ID!, $input: UserSkillInput!) { updateUserSkill(id: $id, input: $input) { id } }`,
	UpdateField: "updateUserSkill",

	Delete:      `mutation DeleteUserSkill($id: ID!) { deleteUserSkill(id: $id) }`,
	DeleteField: "deleteUserSkill",
}

func setupCollection(t *testing.T, gw *fakeGateway) (*Collection[models.UserSkill], *localstore.Store) {
	t.Helper()
	log := logging.NewDefault(slog.LevelError)
	store, err := localstore.New(context.Background(), ":memory:", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	c := New[models.UserSkill]("user_skills", skillDocs, gw, store, log)
	return c, store
}

func seedCache(t *testing.T, store *localstore.Store, skills ...models.UserSkill) {
	t.Helper()
	records := make([]localstore.Record, 0, len(skills))
	for _, s := range skills {
		data, err := json.Marshal(s)
		require.NoError(t, err)
		records = append(records, localstore.Record{
			ID: s.ID, UserID: s.UserID, Index: s.IndexKey(), Data: data,
		})
	}
	require.NoError(t, store.ReplaceAll(context.Background(), "user_skills", records))
}

func TestLoad_ServesCacheWithoutNetwork(t *testing.T) {
	gw := &fakeGateway{}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})

	got, err := c.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go", got[0].Name)
	assert.Zero(t, gw.queryCalls, "populated cache must not hit the API")
}

func TestLoad_EmptyCacheFetchesAndPersists(t *testing.T) {
	gw := &fakeGateway{queryPayload: `{"userSkills":[{"id":"s1","user_id":"u1","name":"Go","level":"expert"}]}`}
	c, store := setupCollection(t, gw)

	got, err := c.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, gw.queryCalls)

	cached := store.GetAll(context.Background(), "user_skills")
	require.Len(t, cached, 1)
	assert.Equal(t, "s1", cached[0].ID)
	assert.Equal(t, "u1", cached[0].UserID)
}

func TestLoad_SecondCallSkipsNetwork(t *testing.T) {
	gw := &fakeGateway{queryPayload: `{"userSkills":[{"id":"s1","user_id":"u1","name":"Go"}]}`}
	c, _ := setupCollection(t, gw)

	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)
	_, err = c.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, gw.queryCalls)
}

func TestLoad_ForceRefetchesAndReplaces(t *testing.T) {
	gw := &fakeGateway{queryPayload: `{"userSkills":[{"id":"s2","user_id":"u1","name":"Rust"}]}`}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})

	got, err := c.Load(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s2", got[0].ID)

	cached := store.GetAll(context.Background(), "user_skills")
	require.Len(t, cached, 1)
	assert.Equal(t, "s2", cached[0].ID)
}

func TestLoad_RemoteFailureKeepsPreviousState(t *testing.T) {
	gw := &fakeGateway{queryErr: errors.New("network down")}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})

	got, err := c.Load(context.Background(), true)
	require.Error(t, err)
	require.Len(t, got, 1, "failed fetch must not clear the collection")
	assert.Equal(t, "s1", got[0].ID)
}

func TestCreate_PrependsAndPersists(t *testing.T) {
	gw := &fakeGateway{
		queryPayload:  `{"userSkills":[{"id":"s0","user_id":"u1","name":"SQL"}]}`,
		mutatePayload: `{"createUserSkill":{"id":"s1","user_id":"u1","name":"Go","level":"expert","is_primary":false}}`,
	}
	c, store := setupCollection(t, gw)

	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	created, err := c.Create(context.Background(), models.UserSkillInput{Name: "Go", Level: "expert"})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "s1", items[0].ID, "new entity is prepended")

	cached := store.GetAll(context.Background(), "user_skills")
	assert.Len(t, cached, 2)
}

func TestCreate_FailureLeavesStateUnchanged(t *testing.T) {
	gw := &fakeGateway{mutateErr: errors.New("boom")}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})
	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	_, err = c.Create(context.Background(), models.UserSkillInput{Name: "Rust"})
	require.Error(t, err)
	require.Len(t, c.Items(), 1)
}

func TestCreate_ColdCollectionKeepsCachedRecords(t *testing.T) {
	gw := &fakeGateway{
		mutatePayload: `{"createUserSkill":{"id":"s2","user_id":"u1","name":"Rust"}}`,
	}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})

	// create before any Load, as after a process restart
	created, err := c.Create(context.Background(), models.UserSkillInput{Name: "Rust"})
	require.NoError(t, err)
	assert.Equal(t, "s2", created.ID)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "s2", items[0].ID)
	assert.Equal(t, "s1", items[1].ID)

	cached := store.GetAll(context.Background(), "user_skills")
	require.Len(t, cached, 2, "record cached by an earlier run must survive the create")
}

func TestUpdate_ColdCollectionKeepsCachedRecords(t *testing.T) {
	gw := &fakeGateway{
		mutatePayload: `{"updateUserSkill":{"id":"s1","user_id":"u1","name":"Go","level":"master"}}`,
	}
	c, store := setupCollection(t, gw)
	seedCache(t, store,
		models.UserSkill{ID: "s1", UserID: "u1", Name: "Go", Level: "expert"},
		models.UserSkill{ID: "s2", UserID: "u1", Name: "SQL"},
	)

	updated, err := c.Update(context.Background(), "s1", models.UserSkillInput{Name: "Go", Level: "master"})
	require.NoError(t, err)
	assert.Equal(t, "master", updated.Level)

	cached := store.GetAll(context.Background(), "user_skills")
	require.Len(t, cached, 2, "untouched cached record must survive the update")

	rec, err := store.GetByID(context.Background(), "user_skills", "s2")
	require.NoError(t, err)
	assert.Equal(t, "s2", rec.ID)
}

func TestUpdate_ReplacesMatchingEntity(t *testing.T) {
	gw := &fakeGateway{
		mutatePayload: `{"updateUserSkill":{"id":"s1","user_id":"u1","name":"Go","level":"master","is_primary":true}}`,
	}
	c, store := setupCollection(t, gw)
	seedCache(t, store,
		models.UserSkill{ID: "s1", UserID: "u1", Name: "Go", Level: "expert"},
		models.UserSkill{ID: "s2", UserID: "u1", Name: "SQL"},
	)
	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	updated, err := c.Update(context.Background(), "s1", models.UserSkillInput{Name: "Go", Level: "master", IsPrimary: true})
	require.NoError(t, err)
	assert.Equal(t, "master", updated.Level)

	items := c.Items()
	require.Len(t, items, 2)
	for _, it := range items {
		if it.ID == "s1" {
			assert.Equal(t, "master", it.Level)
		}
	}

	rec, err := store.GetByID(context.Background(), "user_skills", "s1")
	require.NoError(t, err)
	assert.Equal(t, "1", rec.Index, "is_primary index updated")
}

func TestUpdate_MissingLocalRecordStillSucceeds(t *testing.T) {
	gw := &fakeGateway{
		mutatePayload: `{"updateUserSkill":{"id":"ghost","user_id":"u1","name":"Zig"}}`,
	}
	c, _ := setupCollection(t, gw)

	updated, err := c.Update(context.Background(), "ghost", models.UserSkillInput{Name: "Zig"})
	require.NoError(t, err)
	assert.Equal(t, "ghost", updated.ID)
	assert.Empty(t, c.Items(), "no splice happens without a matching record")
}

func TestRemove_FiltersAndDeletesFromCache(t *testing.T) {
	gw := &fakeGateway{mutatePayload: `{"deleteUserSkill":true}`}
	c, store := setupCollection(t, gw)
	seedCache(t, store,
		models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"},
		models.UserSkill{ID: "s2", UserID: "u1", Name: "SQL"},
	)
	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	require.NoError(t, c.Remove(context.Background(), "s1"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "s2", items[0].ID)

	_, err = store.GetByID(context.Background(), "user_skills", "s1")
	require.Error(t, err)
}

func TestRemove_UnconfirmedDeletionFails(t *testing.T) {
	gw := &fakeGateway{mutatePayload: `{"deleteUserSkill":false}`}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})
	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	require.Error(t, c.Remove(context.Background(), "s1"))
	require.Len(t, c.Items(), 1)
}

func TestClear_ResetsHydrationAndWipesTable(t *testing.T) {
	gw := &fakeGateway{queryPayload: `{"userSkills":[{"id":"s9","user_id":"u1","name":"Fresh"}]}`}
	c, store := setupCollection(t, gw)
	seedCache(t, store, models.UserSkill{ID: "s1", UserID: "u1", Name: "Go"})
	_, err := c.Load(context.Background(), false)
	require.NoError(t, err)

	require.NoError(t, c.Clear(context.Background()))
	assert.Empty(t, c.Items())
	assert.Empty(t, store.GetAll(context.Background(), "user_skills"))

	// next load goes to the API instead of serving stale cache
	got, err := c.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s9", got[0].ID)
	assert.Equal(t, 1, gw.queryCalls)
}
