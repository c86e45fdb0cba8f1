package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"biznova/models"
)

func inventoryOf(names ...string) []models.InventoryItem {
	items := make([]models.InventoryItem, len(names))
	for i, name := range names {
		items[i] = models.InventoryItem{ID: name, Name: name}
	}
	return items
}

func TestMatchTable(t *testing.T) {
	cases := []struct {
		catalogName string
		inventory   []string
		wantMatch   string // "" means no match
	}{
		// Tier 1: exact, case-insensitive.
		{"Diya", []string{"Sweets", "diya"}, "diya"},
		{"DIYA", []string{"Diya"}, "Diya"},
		// Tier 2: substring containment, either direction.
		{"Decoration Lights", []string{"Lights"}, "Lights"},
		{"Lights", []string{"Decoration Lights"}, "Decoration Lights"},
		// Tier 3: keyword overlap, tokens longer than 3 characters.
		{"Clay Diya Set", []string{"Premium Diyas"}, "Premium Diyas"},
		// Short tokens never keyword-match.
		{"Set of Two", []string{"Sunset Lamp"}, ""},
		// No match at all is a valid outcome.
		{"Rangoli Colors", []string{"Sweets", "Candles"}, ""},
		{"", []string{"Sweets"}, ""},
	}

	for _, c := range cases {
		got := Match(c.catalogName, inventoryOf(c.inventory...))
		if c.wantMatch == "" {
			assert.Nil(t, got, "Match(%q, %v)", c.catalogName, c.inventory)
			continue
		}
		if assert.NotNil(t, got, "Match(%q, %v)", c.catalogName, c.inventory) {
			assert.Equal(t, c.wantMatch, got.Name)
		}
	}
}

// An exact (case-insensitive) name always resolves via tier 1, even when a
// later tier could also hit a different item.
func TestMatchExactWinsOverSubstring(t *testing.T) {
	inventory := inventoryOf("Diya Lights", "Diya")

	got := Match("diya", inventory)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Diya", got.Name)
	}
}

func TestMatchFirstHitWinsWithinTier(t *testing.T) {
	inventory := inventoryOf("Diya Small", "Diya Large")

	got := Match("Diya Small Pack", inventory)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Diya Small", got.Name)
	}
}
