package postgresstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/persistence/postgresstore"
	"github.com/AntonStoeckl/solid-principles-go/testutil/helper"
)

const integrationTableName = "journals_integration"

func givenIntegrationStore(t *testing.T) postgresstore.Store {
	if testing.Short() {
		t.Skip("integration test")
	}

	store, exec := helper.CreateStore(t, postgresstore.WithTableName(integrationTableName))
	require.NoError(t, exec(context.Background(), helper.CreateTableStatement(integrationTableName)))

	return store
}

func Test_Integration_SaveAndLoad_RoundTrip(t *testing.T) {
	store := givenIntegrationStore(t)
	ctx := context.Background()
	journalID := helper.GivenUniqueID(t)

	saved := givenBooks(t, "x", "y", "z")
	require.NoError(t, saved.Remove(0))
	require.NoError(t, store.Save(ctx, saved, journalID, false))

	loaded := givenBooks(t)
	require.NoError(t, store.Load(ctx, loaded, journalID))

	assert.Equal(t, saved.Entries(), loaded.Entries())
}

func Test_Integration_Save_WithoutOverwrite_KeepsPriorSnapshot(t *testing.T) {
	store := givenIntegrationStore(t)
	ctx := context.Background()
	journalID := helper.GivenUniqueID(t)

	require.NoError(t, store.Save(ctx, givenBooks(t, "first"), journalID, false))
	require.NoError(t, store.Save(ctx, givenBooks(t, "second", "third"), journalID, false))

	loaded := givenBooks(t)
	require.NoError(t, store.Load(ctx, loaded, journalID))
	assert.Equal(t, "1: first", loaded.String())
}

func Test_Integration_Save_WithOverwrite_ReplacesSnapshot(t *testing.T) {
	store := givenIntegrationStore(t)
	ctx := context.Background()
	journalID := helper.GivenUniqueID(t)

	require.NoError(t, store.Save(ctx, givenBooks(t, "first"), journalID, true))
	require.NoError(t, store.Save(ctx, givenBooks(t, "second", "third"), journalID, true))

	loaded := givenBooks(t)
	require.NoError(t, store.Load(ctx, loaded, journalID))
	assert.Equal(t, "1: second\n2: third", loaded.String())
}

func Test_Integration_Load_ShouldFail_WhenSnapshotIsMissing(t *testing.T) {
	store := givenIntegrationStore(t)

	err := store.Load(context.Background(), givenBooks(t), helper.GivenUniqueID(t))

	assert.ErrorIs(t, err, postgresstore.ErrJournalNotFound)
}

func Test_Integration_SaveAndLoad_RoundTrip_AfterRejectedMultilineText(t *testing.T) {
	store := givenIntegrationStore(t)
	ctx := context.Background()
	journalID := helper.GivenUniqueID(t)

	saved := givenBooks(t, "x")
	require.Error(t, saved.Add("y\n7: injected"))
	require.NoError(t, store.Save(ctx, saved, journalID, true))

	loaded := givenBooks(t)
	require.NoError(t, store.Load(ctx, loaded, journalID))

	assert.Equal(t, saved.Entries(), loaded.Entries())
}
