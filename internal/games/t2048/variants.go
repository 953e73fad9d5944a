package t2048

import "fmt"

// Variant describes one registered flavour of the game.
type Variant struct {
	ID    string
	Title string

	// Size is the board dimension. 0 takes board.size from config.
	Size int

	// WinValue is the target tile. 0 takes rules.win_value from config.
	WinValue int

	// Endless disables the win check regardless of config.
	Endless bool
}

// Variants lists every playable variant in menu order.
var Variants = []Variant{
	{ID: "2048", Title: "2048"},
	{ID: "2048_3x3", Title: "2048 (3x3)", Size: 3, WinValue: 512},
	{ID: "2048_5x5", Title: "2048 (5x5)", Size: 5},
	{ID: "2048_endless", Title: "2048 (Endless)", Endless: true},
}

// LookupVariant returns the variant registered under id.
func LookupVariant(id string) (Variant, error) {
	for _, v := range Variants {
		if v.ID == id {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("t2048: unknown variant %q", id)
}

// IsVariant reports whether id names a 2048 variant.
func IsVariant(id string) bool {
	_, err := LookupVariant(id)
	return err == nil
}

// Options resolves the session options for this variant on top of base.
func (v Variant) Options(base Options) Options {
	opts := base
	if v.Size > 0 {
		opts.Size = v.Size
	}
	if v.WinValue > 0 {
		opts.WinValue = v.WinValue
	}
	if v.Endless {
		opts.WinValue = 0
	}
	if limit := opts.Size * opts.Size; opts.StartTiles > limit {
		opts.StartTiles = limit
	}
	return opts
}
