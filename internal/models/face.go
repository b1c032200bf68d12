package models

// Face is the outcome shown by a die after a roll
type Face string

const (
	// FaceUnrolled is the face of a die that has not been rolled since it
	// was created or reset
	FaceUnrolled Face = ""

	// FaceBrain scores one point if the turn is banked
	FaceBrain Face = "brain"

	// FaceFootsteps forces the die to be re-rolled next cycle
	FaceFootsteps Face = "footsteps"

	// FaceShot counts toward busting the turn
	FaceShot Face = "shot"
)

// IsRolled reports whether the face is the result of a roll
func (f Face) IsRolled() bool {
	return f != FaceUnrolled
}

// Tier is the difficulty class of a die, which determines its faces
type Tier string

const (
	// TierGreen is the easiest tier, three brains out of six faces
	TierGreen Tier = "green"

	// TierYellow has two brains and two shots
	TierYellow Tier = "yellow"

	// TierRed is the hardest tier, three shots out of six faces
	TierRed Tier = "red"
)

// Tiers lists every tier from easiest to hardest
var Tiers = []Tier{TierGreen, TierYellow, TierRed}

// DieView is a read-only snapshot of a die used for display
type DieView struct {
	Tier Tier
	Face Face
}
