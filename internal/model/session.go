package model

// Session is owned by the session manager; this service only reads it.
type Session struct {
	UserID   UserID
	RoomID   RoomID
	IsOnline bool
}
