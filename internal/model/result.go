package model

type RoomResult struct {
	RoomID RoomID
	Movies []Movie
}
