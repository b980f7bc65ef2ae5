package domain

// ItemTag categorizes an item for filtering and handlers.
type ItemTag string

const (
	TagConsumable ItemTag = "consumable"
	TagTool       ItemTag = "tool"
	TagMaterial   ItemTag = "material"
	TagOre        ItemTag = "ore"
	TagCosmetic   ItemTag = "cosmetic"
	TagSpecial    ItemTag = "special"
)

// PurchaseProperties describes how an item trades in the shop.
type PurchaseProperties struct {
	Buyable   bool  `json:"buyable"`
	Sellable  bool  `json:"sellable"`
	BasePrice int64 `json:"base_price"`
	SellPrice int64 `json:"sell_price"`
}

// ConsumptionProperties describes what consuming an item does.
type ConsumptionProperties struct {
	VitalityGain   int32 `json:"vitality_gain"`
	ResistanceGain int32 `json:"resistance_gain"`
	EtherGain      int32 `json:"ether_gain"`
	ActionPoints   int32 `json:"action_points"`
}

// Item is an immutable item descriptor with three-layer naming: a stable
// internal identifier, a display name, and optional alternative names users
// may type.
type Item struct {
	Identifier       string                 `json:"identifier"`
	DisplayName      string                 `json:"display_name"`
	Stackable        bool                   `json:"stackable"`
	Tags             []ItemTag              `json:"tags"`
	Weapon           *WeaponKind            `json:"weapon,omitempty"`
	Consumption      *ConsumptionProperties `json:"consumption,omitempty"`
	Purchase         PurchaseProperties     `json:"purchase"`
	Pages            []string               `json:"pages,omitempty"`
	MaxDurability    int32                  `json:"max_durability,omitempty"`
	AlternativeNames []string               `json:"alternative_names,omitempty"`
	Recipe           []RecipeIngredient     `json:"recipe,omitempty"`
}

// RecipeIngredient is one line of a crafting recipe.
type RecipeIngredient struct {
	ItemIdentifier string `json:"item"`
	Amount         int32  `json:"amount"`
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag ItemTag) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InventoryStack is a stack of one item kind owned by a character.
type InventoryStack struct {
	ItemIdentifier string `json:"item"`
	Amount         int32  `json:"amount"`
	Durability     *int32 `json:"durability,omitempty"`
}
