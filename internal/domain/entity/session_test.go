package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSession_DefaultState(t *testing.T) {
	s := NewSession(1, 10)
	require.Equal(t, StateMainMenu, s.State)
	require.Equal(t, int64(1), s.UserID)
	require.Equal(t, int64(10), s.ChatID)
}

func TestSessionSetState(t *testing.T) {
	s := NewSession(1, 10)
	s.SetState(StateAwaitingReturnPhoto)
	require.Equal(t, StateAwaitingReturnPhoto, s.State)
}
