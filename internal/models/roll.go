package models

// Roll is the result of rolling the hand once during a turn
type Roll struct {
	// Cycle is the 1-based roll number within the turn
	Cycle int

	// Dice holds every die rolled, in hand order
	Dice []DieView

	// Drawn is how many of the rolled dice were freshly drawn; the rest
	// were footsteps carried over from the previous roll
	Drawn int
}

// Count returns how many rolled dice show the face
func (r *Roll) Count(face Face) int {
	n := 0
	for _, d := range r.Dice {
		if d.Face == face {
			n++
		}
	}
	return n
}
