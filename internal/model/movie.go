package model

// Movie is one catalog document kept exactly as the catalog returned it:
// field order, nulls and fields unknown to this service survive storage.
type Movie struct {
	raw []byte
}

func NewMovie(raw []byte) Movie {
	return Movie{raw: append([]byte(nil), raw...)}
}

// Raw returns the document bytes. The caller must not modify them.
func (m Movie) Raw() []byte {
	return m.raw
}

func (m Movie) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

func (m *Movie) UnmarshalJSON(data []byte) error {
	m.raw = append(m.raw[:0], data...)
	return nil
}
