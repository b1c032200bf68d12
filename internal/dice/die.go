package dice

import (
	"github.com/KirkDiggler/zombied/internal/models"
)

// Die is a single die. Its tier never changes; its face changes on Roll
// and Reset.
type Die struct {
	tier  models.Tier
	faces [FacesPerDie]models.Face
	face  models.Face
}

// NewDie creates an unrolled die of the given tier
func NewDie(tier models.Tier) (*Die, error) {
	faces, err := Faces(tier)
	if err != nil {
		return nil, err
	}

	return &Die{
		tier:  tier,
		faces: faces,
		face:  models.FaceUnrolled,
	}, nil
}

// Tier returns the die's difficulty tier
func (d *Die) Tier() models.Tier {
	return d.tier
}

// Face returns the last rolled face, or FaceUnrolled
func (d *Die) Face() models.Face {
	return d.face
}

// Roll picks one of the tier's faces uniformly and keeps it
func (d *Die) Roll(r Roller) models.Face {
	d.face = d.faces[r.Roll(FacesPerDie)-1]
	return d.face
}

// Reset puts the die back in its unrolled state
func (d *Die) Reset() {
	d.face = models.FaceUnrolled
}

// View returns a display snapshot of the die
func (d *Die) View() models.DieView {
	return models.DieView{
		Tier: d.tier,
		Face: d.face,
	}
}

// Views snapshots a list of dice
func Views(dice []*Die) []models.DieView {
	views := make([]models.DieView, 0, len(dice))
	for _, d := range dice {
		views = append(views, d.View())
	}
	return views
}
