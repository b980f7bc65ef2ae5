package domain

// WeaponKind identifies a weapon archetype. The string values are part of
// the persisted wire format.
type WeaponKind string

const (
	WeaponBat      WeaponKind = "bat"
	WeaponKnife    WeaponKind = "knife"
	WeaponSword    WeaponKind = "sword"
	WeaponKatana   WeaponKind = "katana"
	WeaponSpear    WeaponKind = "spear"
	WeaponScythe   WeaponKind = "scythe"
	WeaponUmbrella WeaponKind = "umbrella"
)

// WeaponProfile is the static shape of a weapon kind.
type WeaponProfile struct {
	Kind          WeaponKind
	Name          string
	DamageKind    DamageKind
	BaseDamage    int32
	Multiplier    float64 // scales the wielder's strength multiplier
	MaxDurability int32   // 0 means the weapon never wears
	FatalFinisher bool    // true when the weapon finisher kills, not knocks out
}

var weaponProfiles = map[WeaponKind]WeaponProfile{
	WeaponBat:      {Kind: WeaponBat, Name: "Bat", DamageKind: DamageKindPhysical, BaseDamage: 8, Multiplier: 1.1, MaxDurability: 40, FatalFinisher: false},
	WeaponKnife:    {Kind: WeaponKnife, Name: "Knife", DamageKind: DamageKindCut, BaseDamage: 7, Multiplier: 1.0, MaxDurability: 35, FatalFinisher: true},
	WeaponSword:    {Kind: WeaponSword, Name: "Sword", DamageKind: DamageKindCut, BaseDamage: 12, Multiplier: 1.25, MaxDurability: 60, FatalFinisher: true},
	WeaponKatana:   {Kind: WeaponKatana, Name: "Katana", DamageKind: DamageKindCut, BaseDamage: 14, Multiplier: 1.35, MaxDurability: 55, FatalFinisher: true},
	WeaponSpear:    {Kind: WeaponSpear, Name: "Spear", DamageKind: DamageKindPhysicalCut, BaseDamage: 11, Multiplier: 1.2, MaxDurability: 50, FatalFinisher: true},
	WeaponScythe:   {Kind: WeaponScythe, Name: "Scythe", DamageKind: DamageKindCut, BaseDamage: 16, Multiplier: 1.3, MaxDurability: 45, FatalFinisher: true},
	WeaponUmbrella: {Kind: WeaponUmbrella, Name: "Umbrella", DamageKind: DamageKindPhysical, BaseDamage: 6, Multiplier: 1.0, MaxDurability: 30, FatalFinisher: false},
}

// GetWeaponProfile looks up the static profile for a weapon kind.
func GetWeaponProfile(kind WeaponKind) (WeaponProfile, bool) {
	p, ok := weaponProfiles[kind]
	return p, ok
}

// Weapon is a carried weapon instance with remaining durability.
type Weapon struct {
	Kind       WeaponKind `json:"kind"`
	Durability int32      `json:"durability"`
}

// NewWeapon creates a weapon at full durability.
func NewWeapon(kind WeaponKind) Weapon {
	p := weaponProfiles[kind]
	return Weapon{Kind: kind, Durability: p.MaxDurability}
}

// Profile returns the static profile for this weapon.
func (w Weapon) Profile() WeaponProfile {
	return weaponProfiles[w.Kind]
}
