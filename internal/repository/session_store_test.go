package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/mockview/internal/model"
	apperrors "github.com/lshigami/mockview/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	session := &model.InterviewSession{
		ID:        "s1",
		MockID:    "mock-1",
		State:     model.SessionInProgress,
		Questions: []model.Question{{Position: 0, Question: "Q1"}},
		Answers:   []string{""},
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "mock-1", got.MockID)
	assert.Equal(t, model.SessionInProgress, got.State)

	got.Answers[0] = "changed"
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "", again.Answers[0], "stored session must not alias returned copies")
}

func TestMemorySessionStore_MissingIsNotFound(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(time.Minute).(*memorySessionStore)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &model.InterviewSession{ID: "s1"}))

	now = now.Add(30 * time.Second)
	_, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore(0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &model.InterviewSession{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNewSessionStore_FallsBackToMemory(t *testing.T) {
	store := NewSessionStore(nil, time.Minute)
	_, ok := store.(*memorySessionStore)
	assert.True(t, ok)
}
