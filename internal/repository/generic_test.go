package repository

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/employee_directory/internal/domain"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/predicate"
	"github.com/staffdesk/employee_directory/internal/storage/memory"
)

func newSkillRepo(t *testing.T) (*Repository[domain.SkillEntity, *domain.SkillEntity], *memory.Stores) {
	t.Helper()
	stores := memory.NewStores()
	logs := logger.NewLogsWithWriter(io.Discard)
	return NewRepository[domain.SkillEntity, *domain.SkillEntity](stores.Skills, logs, "SkillRepository"), stores
}

func TestCreateAssignsKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)

	created := repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"})
	require.NotNil(t, created)
	assert.Equal(t, 1, created.SkillID)
}

func TestExistsAfterCreate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)

	pred := predicate.Eq("skill_name", "Go")
	assert.False(t, repo.Exists(ctx, pred))

	require.NotNil(t, repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"}))
	assert.True(t, repo.Exists(ctx, pred))
}

func TestUpdatePreservesKey(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)

	stored := repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"})
	require.NotNil(t, stored)

	// The replacement carries a zero key, as a DTO-derived record would.
	updated, err := repo.Update(ctx, predicate.Eq("skill_name", "Go"),
		&domain.SkillEntity{SkillName: "Golang"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, stored.SkillID, updated.SkillID)
	assert.Equal(t, "Golang", updated.SkillName)

	// A foreign key in the replacement must not reassign the row either.
	updated, err = repo.Update(ctx, predicate.Eq("skill_name", "Golang"),
		&domain.SkillEntity{SkillID: 999, SkillName: "Go"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, stored.SkillID, updated.SkillID)
}

func TestUpdateWithoutMatchReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)

	updated, err := repo.Update(ctx, predicate.Eq("skill_name", "Rust"),
		&domain.SkillEntity{SkillName: "Go"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteIsIdempotentOnAbsence(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)

	created := repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"})
	require.NotNil(t, created)

	pred := predicate.Eq("skill_name", "Go")
	deleted, err := repo.Delete(ctx, pred)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same record reports false without an error.
	deleted, err = repo.Delete(ctx, pred)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetRespectsTake(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSkillRepo(t)
	for _, name := range []string{"Go", "SQL", "Negotiation", "Recruiting", "Accounting"} {
		require.NotNil(t, repo.Create(ctx, &domain.SkillEntity{SkillName: name}))
	}

	assert.Len(t, repo.Get(ctx, predicate.Predicate{}, 2), 2)
	assert.Len(t, repo.Get(ctx, predicate.Predicate{}, 0), 5)
	assert.Len(t, repo.Get(ctx, predicate.Predicate{}, -1), 5)
	assert.Len(t, repo.Get(ctx, predicate.Predicate{}, 10), 5)
}

func TestBasePolicySwallowsReadFailures(t *testing.T) {
	ctx := context.Background()
	repo, stores := newSkillRepo(t)
	require.NotNil(t, repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"}))

	boom := errors.New("connection reset")
	stores.Skills.Fail(boom)

	assert.False(t, repo.Exists(ctx, predicate.Eq("skill_name", "Go")))
	assert.Nil(t, repo.Create(ctx, &domain.SkillEntity{SkillName: "SQL"}))
	assert.Nil(t, repo.GetAll(ctx))
	assert.Nil(t, repo.Get(ctx, predicate.Predicate{}, -1))
	assert.Nil(t, repo.GetOne(ctx, predicate.Eq("skill_name", "Go")))
}

func TestBasePolicyPropagatesWriteFailures(t *testing.T) {
	ctx := context.Background()
	repo, stores := newSkillRepo(t)
	require.NotNil(t, repo.Create(ctx, &domain.SkillEntity{SkillName: "Go"}))

	boom := errors.New("connection reset")
	stores.Skills.Fail(boom)

	_, err := repo.Update(ctx, predicate.Eq("skill_name", "Go"), &domain.SkillEntity{SkillName: "SQL"})
	assert.ErrorIs(t, err, boom)

	_, err = repo.Delete(ctx, predicate.Eq("skill_name", "Go"))
	assert.ErrorIs(t, err, boom)
}
