package pool

import (
	"fmt"

	"github.com/KirkDiggler/zombied/internal/dice"
	"github.com/KirkDiggler/zombied/internal/models"
)

// Config holds configuration for a dice pool
type Config struct {
	// Roller picks dice on draw and orders them on shuffle
	Roller dice.Roller

	// Inventory is the set of dice the pool is rebuilt from.
	// Defaults to dice.DefaultInventory.
	Inventory dice.Inventory
}

// Pool holds every die that is not in a player's hand or on the table.
// It is not safe for concurrent use; only the active turn touches it.
type Pool struct {
	roller    dice.Roller
	inventory dice.Inventory
	dice      []*dice.Die
}

// New creates a pool filled with the configured inventory
func New(cfg *Config) (*Pool, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	inventory := cfg.Inventory
	if inventory == nil {
		inventory = dice.DefaultInventory()
	}

	p := &Pool{
		roller:    cfg.Roller,
		inventory: inventory,
	}

	if err := p.Refill(inventory); err != nil {
		return nil, err
	}

	return p, nil
}

// Draw removes n dice picked uniformly at random without replacement
func (p *Pool) Draw(n int) ([]*dice.Die, error) {
	if n < 0 {
		return nil, ErrInvalidDrawCount
	}

	if n > len(p.dice) {
		return nil, &InsufficientDiceError{
			Requested: n,
			Available: len(p.dice),
		}
	}

	drawn := make([]*dice.Die, 0, n)
	for i := 0; i < n; i++ {
		idx := p.roller.Intn(len(p.dice))
		drawn = append(drawn, p.dice[idx])
		p.dice = append(p.dice[:idx], p.dice[idx+1:]...)
	}

	return drawn, nil
}

// Return puts a die back in the pool
func (p *Pool) Return(d *dice.Die) error {
	if d == nil {
		return ErrNilDie
	}

	p.dice = append(p.dice, d)
	return nil
}

// Shuffle randomizes the order the pool is displayed in
func (p *Pool) Shuffle() {
	p.roller.Shuffle(len(p.dice), func(i, j int) {
		p.dice[i], p.dice[j] = p.dice[j], p.dice[i]
	})
}

// Size returns the number of dice in the pool
func (p *Pool) Size() int {
	return len(p.dice)
}

// Refill discards the pool contents and rebuilds it from the inventory with
// fresh unrolled dice, then shuffles
func (p *Pool) Refill(inventory dice.Inventory) error {
	if err := inventory.Validate(); err != nil {
		return fmt.Errorf("invalid inventory: %w", err)
	}

	if inventory.Total() == 0 {
		return ErrEmptyInventory
	}

	fresh := make([]*dice.Die, 0, inventory.Total())
	for _, stock := range inventory {
		for i := 0; i < stock.Quantity; i++ {
			d, err := dice.NewDie(stock.Tier)
			if err != nil {
				return err
			}
			fresh = append(fresh, d)
		}
	}

	p.dice = fresh
	p.Shuffle()

	return nil
}

// Reset refills the pool with the inventory it was created with
func (p *Pool) Reset() error {
	return p.Refill(p.inventory)
}

// Inventory returns the inventory the pool is rebuilt from
func (p *Pool) Inventory() dice.Inventory {
	return p.inventory
}

// Snapshot returns a display view of the dice in the pool, in pool order
func (p *Pool) Snapshot() []models.DieView {
	return dice.Views(p.dice)
}

// CountByTier returns how many dice of each tier are in the pool
func (p *Pool) CountByTier() map[models.Tier]int {
	counts := make(map[models.Tier]int, len(models.Tiers))
	for _, d := range p.dice {
		counts[d.Tier()]++
	}
	return counts
}
