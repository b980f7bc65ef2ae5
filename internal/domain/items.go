package domain

import "strings"

func weaponKindPtr(k WeaponKind) *WeaponKind { return &k }

// itemTable is the shared read-only item registry. Lookup goes through
// GetItem / FindItemByName; the slice itself is never mutated at runtime.
var itemTable = []Item{
	{
		Identifier:  "vital_potion",
		DisplayName: "Vital Potion",
		Stackable:   true,
		Tags:        []ItemTag{TagConsumable},
		Consumption: &ConsumptionProperties{VitalityGain: 30, ResistanceGain: 30},
		Purchase:    PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 45, SellPrice: 20},
	},
	{
		Identifier:  "ether_vial",
		DisplayName: "Ether Vial",
		Stackable:   true,
		Tags:        []ItemTag{TagConsumable},
		Consumption: &ConsumptionProperties{EtherGain: 25},
		Purchase:    PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 60, SellPrice: 25},
	},
	{
		Identifier:       "stamina_root",
		DisplayName:      "Stamina Root",
		Stackable:        true,
		Tags:             []ItemTag{TagConsumable, TagMaterial},
		Consumption:      &ConsumptionProperties{ActionPoints: 2},
		Purchase:         PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 30, SellPrice: 12},
		AlternativeNames: []string{"root"},
	},
	{
		Identifier:    "bat",
		DisplayName:   "Bat",
		Tags:          []ItemTag{TagTool},
		Weapon:        weaponKindPtr(WeaponBat),
		MaxDurability: 40,
		Purchase:      PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 80, SellPrice: 30},
	},
	{
		Identifier:    "knife",
		DisplayName:   "Knife",
		Tags:          []ItemTag{TagTool},
		Weapon:        weaponKindPtr(WeaponKnife),
		MaxDurability: 35,
		Purchase:      PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 90, SellPrice: 35},
	},
	{
		Identifier:    "sword",
		DisplayName:   "Sword",
		Tags:          []ItemTag{TagTool},
		Weapon:        weaponKindPtr(WeaponSword),
		MaxDurability: 60,
		Purchase:      PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 250, SellPrice: 100},
	},
	{
		Identifier:    "katana",
		DisplayName:   "Katana",
		Tags:          []ItemTag{TagTool},
		Weapon:        weaponKindPtr(WeaponKatana),
		MaxDurability: 55,
		Purchase:      PurchaseProperties{Buyable: false, Sellable: true, BasePrice: 0, SellPrice: 320},
	},
	{
		Identifier:    "umbrella",
		DisplayName:   "Umbrella",
		Tags:          []ItemTag{TagTool, TagCosmetic},
		Weapon:        weaponKindPtr(WeaponUmbrella),
		MaxDurability: 30,
		Purchase:      PurchaseProperties{Buyable: true, Sellable: true, BasePrice: 40, SellPrice: 15},
	},
	{
		Identifier:  "iron_ore",
		DisplayName: "Iron Ore",
		Stackable:   true,
		Tags:        []ItemTag{TagOre, TagMaterial},
		Purchase:    PurchaseProperties{Buyable: false, Sellable: true, BasePrice: 0, SellPrice: 18},
	},
	{
		Identifier:  "ember_crystal",
		DisplayName: "Ember Crystal",
		Stackable:   true,
		Tags:        []ItemTag{TagOre, TagSpecial},
		Purchase:    PurchaseProperties{Buyable: false, Sellable: true, BasePrice: 0, SellPrice: 120},
	},
	{
		Identifier:  "wolf_pelt",
		DisplayName: "Wolf Pelt",
		Stackable:   true,
		Tags:        []ItemTag{TagMaterial},
		Purchase:    PurchaseProperties{Buyable: false, Sellable: true, BasePrice: 0, SellPrice: 25},
	},
	{
		Identifier:  "swamp_herb",
		DisplayName: "Swamp Herb",
		Stackable:   true,
		Tags:        []ItemTag{TagMaterial},
		Purchase:    PurchaseProperties{Buyable: false, Sellable: true, BasePrice: 0, SellPrice: 10},
		Recipe:      nil,
	},
	{
		Identifier:  "traveler_journal",
		DisplayName: "Traveler's Journal",
		Tags:        []ItemTag{TagSpecial},
		Pages: []string{
			"Day 3. The swamp hums at night.",
			"Day 9. Something followed me out of the ruins.",
		},
		Purchase: PurchaseProperties{Buyable: false, Sellable: false},
	},
	{
		Identifier:       "gate_key",
		DisplayName:      "Gate Key",
		Stackable:        true,
		Tags:             []ItemTag{TagSpecial},
		Purchase:         PurchaseProperties{Buyable: false, Sellable: false},
		AlternativeNames: []string{"key"},
	},
}

// GetItem looks an item up by its stable identifier.
func GetItem(identifier string) (Item, bool) {
	for _, it := range itemTable {
		if it.Identifier == identifier {
			return it, true
		}
	}
	return Item{}, false
}

// FindItemByName resolves a user-typed name against display names,
// identifiers and alternative names, case-insensitively.
func FindItemByName(name string) (Item, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, it := range itemTable {
		if it.Identifier == needle || strings.ToLower(it.DisplayName) == needle {
			return it, true
		}
		for _, alt := range it.AlternativeNames {
			if strings.ToLower(alt) == needle {
				return it, true
			}
		}
	}
	return Item{}, false
}

// AllItems returns the item registry. Callers must treat it as read-only.
func AllItems() []Item {
	return itemTable
}
