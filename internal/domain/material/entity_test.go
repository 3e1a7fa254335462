package material

import (
	"testing"

	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestStatusForQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		quantity int
		want     Status
	}{
		{0, StatusOutOfStock},
		{-5, StatusOutOfStock},
		{1, StatusLowStock},
		{19, StatusLowStock},
		{20, StatusInStock},
		{500, StatusInStock},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StatusForQuantity(c.quantity), "quantity %d", c.quantity)
	}
}

func TestMaterial_IsVisibleTo(t *testing.T) {
	t.Parallel()

	tagged := Material{ID: "m1", VisibleTo: []string{"u6"}}
	untagged := Material{ID: "m2"}

	admin := user.User{ID: "u5", Role: user.RoleAdmin}
	taggedMember := user.User{ID: "u6", Role: user.RoleTeamMember}
	otherMember := user.User{ID: "u8", Role: user.RoleTeamMember}

	assert.True(t, tagged.IsVisibleTo(admin))
	assert.True(t, tagged.IsVisibleTo(taggedMember))
	assert.False(t, tagged.IsVisibleTo(otherMember))

	// untagged materials are privileged-only
	assert.True(t, untagged.IsVisibleTo(admin))
	assert.False(t, untagged.IsVisibleTo(taggedMember))
}

func TestFilterVisible(t *testing.T) {
	t.Parallel()

	materials := []Material{
		{ID: "m1", VisibleTo: []string{"u1", "u6"}},
		{ID: "m2"},
		{ID: "m3", VisibleTo: []string{"u6"}},
	}

	owner := user.User{ID: "u2", Role: user.RoleCompanyOwner}
	assert.Equal(t, materials, FilterVisible(materials, owner))

	taggedMember := user.User{ID: "u6", Role: user.RoleTeamMember}
	got := FilterVisible(materials, taggedMember)
	assert.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m3", got[1].ID)

	otherMember := user.User{ID: "u5x", Role: user.RoleTeamMember}
	assert.Empty(t, FilterVisible(materials, otherMember))
}
