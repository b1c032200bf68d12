package console

import (
	"strings"

	"github.com/KirkDiggler/zombied/internal/models"
)

const resetStyle = "\033[0m"

var tierStyles = map[models.Tier]string{
	models.TierGreen:  "\033[92m",
	models.TierYellow: "\033[93m",
	models.TierRed:    "\033[91m",
}

// paint colors text with the tier's color when the console uses colors
func (c *Console) paint(tier models.Tier, text string) string {
	style, ok := tierStyles[tier]
	if !c.color || !ok {
		return text
	}
	return style + text + resetStyle
}

func (c *Console) tierName(tier models.Tier) string {
	switch tier {
	case models.TierGreen:
		return c.printer.Sprintf("green")
	case models.TierYellow:
		return c.printer.Sprintf("yellow")
	case models.TierRed:
		return c.printer.Sprintf("red")
	default:
		return string(tier)
	}
}

func (c *Console) faceName(face models.Face) string {
	switch face {
	case models.FaceBrain:
		return c.printer.Sprintf("BRAIN")
	case models.FaceFootsteps:
		return c.printer.Sprintf("FOOTSTEPS")
	case models.FaceShot:
		return c.printer.Sprintf("SHOT")
	default:
		return "?"
	}
}

// renderCup counts the dice left in the cup per color
func (c *Console) renderCup(views []models.DieView) string {
	counts := make(map[models.Tier]int)
	for _, v := range views {
		counts[v.Tier]++
	}

	parts := make([]string, 0, len(models.Tiers))
	for _, tier := range models.Tiers {
		if counts[tier] == 0 {
			continue
		}
		parts = append(parts, c.paint(tier, c.printer.Sprintf("%d %s", counts[tier], c.tierName(tier))))
	}

	if len(parts) == 0 {
		return c.printer.Sprintf("empty")
	}

	return strings.Join(parts, ", ")
}

// renderTiers lists the colors of the dice, in order
func (c *Console) renderTiers(views []models.DieView) string {
	parts := make([]string, 0, len(views))
	for _, v := range views {
		parts = append(parts, c.paint(v.Tier, "["+c.tierName(v.Tier)+"]"))
	}
	return strings.Join(parts, " ")
}

// renderDice lists color and face of every die, in order
func (c *Console) renderDice(views []models.DieView) string {
	parts := make([]string, 0, len(views))
	for _, v := range views {
		parts = append(parts, c.paint(v.Tier, "["+c.tierName(v.Tier)+" "+c.faceName(v.Face)+"]"))
	}
	return strings.Join(parts, " ")
}
