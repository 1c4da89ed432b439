package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClasses_HasAll23(t *testing.T) {
	classes := Classes()
	require.Len(t, classes, 23)

	seen := make(map[string]bool)
	for _, c := range classes {
		require.False(t, seen[c.Name], "duplicate class %s", c.Name)
		seen[c.Name] = true
	}
}

func TestClassByName_CaseSensitive(t *testing.T) {
	c, ok := ClassByName("Major-Rear-Bumper-Dent")
	require.True(t, ok)
	require.Equal(t, CategoryDent, c.Category)
	require.True(t, c.Critical)

	_, ok = ClassByName("major-rear-bumper-dent")
	require.False(t, ok)
}

func TestClassByName_Unknown(t *testing.T) {
	_, ok := ClassByName("windshield-crack-xyz")
	require.False(t, ok)
}

func TestClasses_ReturnsCopy(t *testing.T) {
	first := Classes()
	first[0].Name = "mutated"

	second := Classes()
	require.NotEqual(t, "mutated", second[0].Name)
}
