// model/patch_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestPatchUser(t *testing.T) {
	old := User{ID: 1, Name: "Ann", Email: "ann@example.com"}

	require.Equal(t, old, PatchUser(old, UserPatch{}))

	renamed := PatchUser(old, UserPatch{Name: strp("Anna")})
	require.Equal(t, "Anna", renamed.Name)
	require.Equal(t, "ann@example.com", renamed.Email)

	full := PatchUser(old, UserPatch{Name: strp("A"), Email: strp("a@example.com")})
	require.Equal(t, User{ID: 1, Name: "A", Email: "a@example.com"}, full)
}

func TestPatchItem(t *testing.T) {
	old := Item{ID: 3, OwnerID: 1, Name: "drill", Description: "cordless", Available: true}

	require.Equal(t, old, PatchItem(old, ItemPatch{}))

	off := PatchItem(old, ItemPatch{Available: boolp(false)})
	require.False(t, off.Available)
	require.Equal(t, "drill", off.Name)
	require.Equal(t, int64(1), off.OwnerID)

	edited := PatchItem(old, ItemPatch{Name: strp("hammer"), Description: strp("claw")})
	require.Equal(t, "hammer", edited.Name)
	require.Equal(t, "claw", edited.Description)
	require.True(t, edited.Available)
}
