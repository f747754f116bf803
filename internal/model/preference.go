package model

// YearRange is an inclusive span of release years.
type YearRange struct {
	Start int
	End   int
}

// Width is End - Start. A single-year range has zero width.
func (r YearRange) Width() int {
	return r.End - r.Start
}

type Preference struct {
	UserID UserID
	RoomID RoomID
	Genres []string
	Years  YearRange
}
