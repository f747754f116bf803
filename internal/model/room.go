package model

type RoomID string

const EmptyRoomID RoomID = ""

type UserID string

// Status is what a room reports to its participants.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusReady   Status = "ready"
)
