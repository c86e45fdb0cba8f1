package forecast

import (
	"strings"

	"biznova/models"
)

// keywordMinLen is the minimum token length (exclusive) for tier-3 keyword
// matching. Shorter tokens ("of", "the", "set") are too generic to link.
const keywordMinLen = 3

// Match links a free-text catalog item name to a merchant's stock record.
// Three tiers are tried in order and the first hit wins:
//
//  1. exact case-insensitive equality
//  2. substring containment in either direction
//  3. any catalog-name token longer than keywordMinLen contained in the
//     inventory name
//
// Returns nil when nothing matches; "not in inventory" is a valid,
// actionable outcome, not an error.
func Match(catalogName string, inventory []models.InventoryItem) *models.InventoryItem {
	target := strings.ToLower(strings.TrimSpace(catalogName))
	if target == "" {
		return nil
	}

	for i := range inventory {
		if strings.ToLower(inventory[i].Name) == target {
			return &inventory[i]
		}
	}

	for i := range inventory {
		name := strings.ToLower(inventory[i].Name)
		if strings.Contains(target, name) || strings.Contains(name, target) {
			return &inventory[i]
		}
	}

	for _, token := range strings.Fields(target) {
		if len(token) <= keywordMinLen {
			continue
		}
		for i := range inventory {
			if strings.Contains(strings.ToLower(inventory[i].Name), token) {
				return &inventory[i]
			}
		}
	}

	return nil
}
