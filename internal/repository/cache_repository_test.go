package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil)
	ctx := context.Background()

	var dest []string
	err := repo.Get(ctx, "roster", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Set(ctx, "roster", []string{"x"}, time.Minute))
	assert.NoError(t, repo.Delete(ctx, "roster"))
	assert.NoError(t, repo.Close())
}
