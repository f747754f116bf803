package usecase_preference

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/AdAndRoll/movie-search-server/internal/model"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type submission struct {
	UserID string   `validate:"required"`
	RoomID string   `validate:"required"`
	Genres []string `validate:"required,min=1,dive,required"`
	Start  int
	End    int `validate:"gtefield=Start"`
}

// normalize trims identifiers and genres and rejects malformed input with ErrInvalidInput.
func normalize(p model.Preference) (model.Preference, error) {
	s := submission{
		UserID: strings.TrimSpace(string(p.UserID)),
		RoomID: strings.TrimSpace(string(p.RoomID)),
		Genres: make([]string, 0, len(p.Genres)),
		Start:  p.Years.Start,
		End:    p.Years.End,
	}
	for _, g := range p.Genres {
		s.Genres = append(s.Genres, strings.TrimSpace(g))
	}

	if err := getValidator().Struct(s); err != nil {
		return model.Preference{}, fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	return model.Preference{
		UserID: model.UserID(s.UserID),
		RoomID: model.RoomID(s.RoomID),
		Genres: s.Genres,
		Years:  model.YearRange{Start: s.Start, End: s.End},
	}, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldName(fe)))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", fieldName(fe)))
		case "gtefield":
			msgs = append(msgs, "years start must not be after end")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fieldName(fe), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func fieldName(fe validator.FieldError) string {
	switch fe.StructField() {
	case "UserID":
		return "user_id"
	case "RoomID":
		return "room_id"
	case "Genres":
		return "genres"
	}
	if strings.HasPrefix(fe.StructNamespace(), "submission.Genres[") {
		return "genre"
	}
	return strings.ToLower(fe.StructField())
}
