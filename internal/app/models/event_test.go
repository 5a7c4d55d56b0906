package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventIsFull(t *testing.T) {
	limited := &Event{MaxParticipants: 3}
	require.False(t, limited.IsFull(0))
	require.False(t, limited.IsFull(2))
	require.True(t, limited.IsFull(3))
	require.True(t, limited.IsFull(4))

	unlimited := &Event{MaxParticipants: 0}
	require.False(t, unlimited.IsFull(0))
	require.False(t, unlimited.IsFull(10000))
}

func TestEventIsPast(t *testing.T) {
	now := time.Now()

	past := &Event{StartsAt: now.Add(-time.Minute)}
	require.True(t, past.IsPast(now))

	upcoming := &Event{StartsAt: now.Add(time.Minute)}
	require.False(t, upcoming.IsPast(now))

	starting := &Event{StartsAt: now}
	require.False(t, starting.IsPast(now))
}
