package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRoles(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   roleMap
	}{
		{
			name:   "standard BOM header",
			header: []string{"LV", "Description", "Material", "Auth Qty", "OH Qty"},
			want: roleMap{
				roleLevel:         0,
				roleDescription:   1,
				roleMaterial:      2,
				roleQtyAuthorized: 3,
				roleQtyOnHand:     4,
			},
		},
		{
			name:   "level spelled out",
			header: []string{"Level Code", "Item Description"},
			want:   roleMap{roleLevel: 0, roleDescription: 1},
		},
		{
			name:   "nomenclature header variant",
			header: []string{"LV", "Nomenclature"},
			want:   roleMap{roleLevel: 0, roleDescription: 1},
		},
		{
			name:   "part number header variant",
			header: []string{"LV", "Part No."},
			want:   roleMap{roleLevel: 0, roleDescription: 1},
		},
		{
			name:   "rightmost cell wins per role",
			header: []string{"LV", "LV"},
			want:   roleMap{roleLevel: 1},
		},
		{
			name:   "empty and nil-like cells skipped",
			header: []string{"", "  ", "DESC"},
			want:   roleMap{roleDescription: 2},
		},
		{
			name:   "qty without auth or oh is not a quantity column",
			header: []string{"LV", "DESC", "QTY"},
			want:   roleMap{roleLevel: 0, roleDescription: 1},
		},
		{
			name:   "lowercase headers",
			header: []string{"lv", "description", "material"},
			want:   roleMap{roleLevel: 0, roleDescription: 1, roleMaterial: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRoles(tt.header))
		})
	}
}

func TestRoleMap_Usable(t *testing.T) {
	assert.True(t, roleMap{roleLevel: 0, roleDescription: 1}.usable())
	assert.False(t, roleMap{roleLevel: 0}.usable(), "description column is required")
	assert.False(t, roleMap{roleDescription: 1}.usable(), "level column is required")
	assert.False(t, roleMap{}.usable())
}

func TestRoleMap_QuantityColumn(t *testing.T) {
	// On-hand quantity is preferred over authorized quantity.
	m := roleMap{roleQtyAuthorized: 3, roleQtyOnHand: 4}
	idx, ok := m.quantityColumn()
	assert.True(t, ok)
	assert.Equal(t, 4, idx)

	m = roleMap{roleQtyAuthorized: 3}
	idx, ok = m.quantityColumn()
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = roleMap{roleLevel: 0}.quantityColumn()
	assert.False(t, ok)
}
