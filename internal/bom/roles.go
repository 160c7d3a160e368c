package bom

import "strings"

// role identifies the semantic meaning of a BOM table column.
type role int

const (
	roleLevel role = iota
	roleDescription
	roleMaterial
	roleQtyOnHand
	roleQtyAuthorized
)

// roleRule binds a role to a header keyword predicate. Rules are evaluated
// in order per header cell and the first match claims the cell, so more
// specific keywords must come before looser ones.
type roleRule struct {
	role  role
	match func(text string) bool
}

func containsAll(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if !strings.Contains(text, s) {
				return false
			}
		}
		return true
	}
}

func containsAny(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

// roleRules is the column identification table. Adding support for a new
// header variant means adding a row here, not touching the resolver.
var roleRules = []roleRule{
	{roleLevel, containsAny("LV", "LEVEL")},
	{roleDescription, containsAny("DESC", "NOMENCLATURE", "PART NO.")},
	{roleMaterial, containsAny("MATERIAL")},
	{roleQtyOnHand, containsAll("OH", "QTY")},
	{roleQtyAuthorized, containsAll("AUTH", "QTY")},
}

// roleMap maps each resolved role to its column index within one table.
type roleMap map[role]int

// resolveRoles assigns roles to column indices from a header row. Each
// non-empty cell is uppercased and tested against roleRules; the first
// matching rule claims the cell. When two cells match the same role the
// rightmost one wins.
func resolveRoles(header []string) roleMap {
	roles := make(roleMap)
	for idx, text := range header {
		text = strings.ToUpper(strings.TrimSpace(text))
		if text == "" {
			continue
		}
		for _, rule := range roleRules {
			if rule.match(text) {
				roles[rule.role] = idx
				break
			}
		}
	}
	return roles
}

// usable reports whether the table can be extracted at all. Without both a
// level column and a description column the schema is unidentifiable and
// the whole table is skipped.
func (m roleMap) usable() bool {
	_, hasLevel := m[roleLevel]
	_, hasDesc := m[roleDescription]
	return hasLevel && hasDesc
}

// quantityColumn returns the column to source quantities from, preferring
// an on-hand quantity column over an authorized one.
func (m roleMap) quantityColumn() (int, bool) {
	if idx, ok := m[roleQtyOnHand]; ok {
		return idx, true
	}
	idx, ok := m[roleQtyAuthorized]
	return idx, ok
}
