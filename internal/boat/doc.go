// Package boat owns the rowboat model.
//
// Ownership boundary:
// - seat occupancy (front, middle, back)
//
// - oar assignment to the middle-seat rower
//
// - anchor and the IDLE -> ROWING -> IDLE / * -> ANCHORED -> IDLE machine
//
// Rules:
// - rowing needs a seated middle rower holding both oars and a raised anchor.
//
// - dropping the anchor stops rowing and releases the oars.
//
// - a failed operation leaves the boat unchanged.
//
// Boat does no locking; callers serialize access.
package boat
