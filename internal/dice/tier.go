package dice

import (
	"github.com/KirkDiggler/zombied/internal/models"
)

// FacesPerDie is the number of faces on every die
const FacesPerDie = 6

// tierFaces holds the face multiset of each tier. Faces repeat, which is
// what gives each tier its odds.
var tierFaces = map[models.Tier][FacesPerDie]models.Face{
	models.TierGreen: {
		models.FaceBrain, models.FaceBrain, models.FaceBrain,
		models.FaceFootsteps, models.FaceFootsteps,
		models.FaceShot,
	},
	models.TierYellow: {
		models.FaceBrain, models.FaceBrain,
		models.FaceFootsteps, models.FaceFootsteps,
		models.FaceShot, models.FaceShot,
	},
	models.TierRed: {
		models.FaceBrain,
		models.FaceFootsteps, models.FaceFootsteps,
		models.FaceShot, models.FaceShot, models.FaceShot,
	},
}

// Faces returns the face multiset of a tier
func Faces(tier models.Tier) ([FacesPerDie]models.Face, error) {
	faces, ok := tierFaces[tier]
	if !ok {
		return [FacesPerDie]models.Face{}, ErrUnknownTier
	}
	return faces, nil
}

// Stock is how many dice of a tier the game has
type Stock struct {
	Tier     models.Tier
	Quantity int
}

// Inventory is the full set of dice a pool is built from. It is a slice so
// that building a pool from it is deterministic.
type Inventory []Stock

// DefaultInventory returns the standard 13 dice
func DefaultInventory() Inventory {
	return Inventory{
		{Tier: models.TierGreen, Quantity: 6},
		{Tier: models.TierYellow, Quantity: 4},
		{Tier: models.TierRed, Quantity: 3},
	}
}

// Total is the number of dice in the inventory
func (inv Inventory) Total() int {
	total := 0
	for _, s := range inv {
		total += s.Quantity
	}
	return total
}

// CoversTurn reports whether a turn drawing drawCount dice per roll can
// always draw before it busts. Shot dice never go back to the pool, so up to
// shotLimit-1 of them are out of play for the rest of the turn.
func (inv Inventory) CoversTurn(drawCount, shotLimit int) bool {
	return drawCount+shotLimit-1 <= inv.Total()
}

// Quantity returns how many dice of a tier the inventory holds
func (inv Inventory) Quantity(tier models.Tier) int {
	total := 0
	for _, s := range inv {
		if s.Tier == tier {
			total += s.Quantity
		}
	}
	return total
}

// Validate checks every tier is known and no quantity is negative
func (inv Inventory) Validate() error {
	for _, s := range inv {
		if _, ok := tierFaces[s.Tier]; !ok {
			return ErrUnknownTier
		}
		if s.Quantity < 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
