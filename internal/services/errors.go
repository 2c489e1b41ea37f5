package services

import "errors"

// ErrNoParticipants rejects a pairing run over an event nobody has joined.
// No grouping document is written in that case.
var ErrNoParticipants = errors.New("no participants found for this event")
