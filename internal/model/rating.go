package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	MinScore = 1
	MaxScore = 5

	noRatings = "No ratings yet"
)

// ErrInvalidScore is returned for scores outside MinScore..MaxScore.
var ErrInvalidScore = errors.New("rating must be between 1 and 5")

// ValidateScore checks a single user score.
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}

// Rating is an aggregated average that may be absent.
type Rating struct {
	Average float64
	Count   int
	Valid   bool
}

// NewRating builds a Rating from a nullable average and a count.
func NewRating(avg *float64, count int) Rating {
	if avg == nil || count == 0 {
		return Rating{}
	}
	return Rating{Average: *avg, Count: count, Valid: true}
}

// String renders the average with one decimal, e.g. "4.2".
func (r Rating) String() string {
	if !r.Valid {
		return noRatings
	}
	return fmt.Sprintf("%.1f", r.Average)
}

// StarState describes how a single star is drawn.
type StarState string

const (
	StarFilled StarState = "filled"
	StarHalf   StarState = "half"
	StarEmpty  StarState = "empty"
)

// Stars maps the average onto five stars.
func (r Rating) Stars() [MaxScore]StarState {
	var stars [MaxScore]StarState
	for i := range stars {
		pos := float64(i + 1)
		switch {
		case !r.Valid:
			stars[i] = StarEmpty
		case pos <= r.Average:
			stars[i] = StarFilled
		case pos-0.5 <= r.Average:
			stars[i] = StarHalf
		default:
			stars[i] = StarEmpty
		}
	}
	return stars
}

type ratingJSON struct {
	Average *float64            `json:"average"`
	Count   int                 `json:"count"`
	Display string              `json:"display"`
	Stars   [MaxScore]StarState `json:"stars"`
}

func (r Rating) MarshalJSON() ([]byte, error) {
	out := ratingJSON{Count: r.Count, Display: r.String(), Stars: r.Stars()}
	if r.Valid {
		avg := r.Average
		out.Average = &avg
	}
	return json.Marshal(out)
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	var in ratingJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*r = NewRating(in.Average, in.Count)
	return nil
}

// MeanOf averages the valid ratings, ignoring missing ones. The count of the
// result is the sum of the underlying counts.
func MeanOf(rs []Rating) Rating {
	var sum float64
	var n, count int
	for _, r := range rs {
		if !r.Valid {
			continue
		}
		sum += r.Average
		count += r.Count
		n++
	}
	if n == 0 {
		return Rating{}
	}
	avg := sum / float64(n)
	return Rating{Average: avg, Count: count, Valid: true}
}
