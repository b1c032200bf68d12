package models

// Tally counts the faces rolled during a turn. Brains and shots accumulate
// for the whole turn; footsteps only describe the latest roll.
type Tally struct {
	Brains    int
	Footsteps int
	Shots     int
}

// Add counts one rolled face. Unrolled faces are ignored.
func (t *Tally) Add(face Face) {
	switch face {
	case FaceBrain:
		t.Brains++
	case FaceFootsteps:
		t.Footsteps++
	case FaceShot:
		t.Shots++
	}
}

// ResetFootsteps clears the footsteps count before a new roll
func (t *Tally) ResetFootsteps() {
	t.Footsteps = 0
}

// Count returns the counter for a face
func (t Tally) Count(face Face) int {
	switch face {
	case FaceBrain:
		return t.Brains
	case FaceFootsteps:
		return t.Footsteps
	case FaceShot:
		return t.Shots
	}
	return 0
}
