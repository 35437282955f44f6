package maze

// ShiftAction names one shift: the border location the leftover is
// inserted at, and the rotation applied to the leftover before insertion.
type ShiftAction struct {
	Location Location
	Rotation Rotation
}
