package service

import (
	"context"
	"testing"

	"mygriya/internal/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadedCatalog(t *testing.T) *CatalogService {
	t.Helper()
	repo := new(testutil.MockRoomRepository)
	repo.On("ListRooms", mock.Anything).Return(testutil.NewTestCatalog(), nil)

	catalog := NewCatalogService(repo, testutil.NewTestLogger())
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}
