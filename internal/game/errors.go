package game

import "errors"

// Domain lookup errors. Store implementations return these so handlers
// can map them to not-found responses with errors.Is.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
)
