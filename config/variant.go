package config

import "fmt"

// VariantID names one of the two ways the demo builds its world
type VariantID string

const (
	// VariantTilemap loads the Tiled map
	VariantTilemap VariantID = "tilemap"
	// VariantProcedural generates ground, roof and hazard tiles
	VariantProcedural VariantID = "procedural"
)

// VariantConfig holds the values that differ between variants
type VariantConfig struct {
	Gravity float64
}

var Variants = map[VariantID]VariantConfig{
	VariantTilemap: {
		Gravity: 1.5,
	},
	VariantProcedural: {
		Gravity: 0.75,
	},
}

// Variant is the active variant
var Variant VariantID

// ApplyVariant switches to a variant and applies its preset.
func ApplyVariant(id VariantID) error {
	v, ok := Variants[id]
	if !ok {
		return fmt.Errorf("unknown variant %q", id)
	}
	Variant = id
	Physics.Gravity = v.Gravity
	return nil
}
