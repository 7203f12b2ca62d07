package model

import (
	"errors"
	"strings"
)

// ErrInvalidGenre is returned when a genre code is not part of the catalog.
var ErrInvalidGenre = errors.New("invalid genre")

// Genre is a catalog genre code as stored in the database (e.g. "SCI_FI").
type Genre string

const (
	GenreAction      Genre = "ACTION"
	GenreAdventure   Genre = "ADVENTURE"
	GenreAnimation   Genre = "ANIMATION"
	GenreComedy      Genre = "COMEDY"
	GenreCrime       Genre = "CRIME"
	GenreDocumentary Genre = "DOCUMENTARY"
	GenreDrama       Genre = "DRAMA"
	GenreFamily      Genre = "FAMILY"
	GenreFantasy     Genre = "FANTASY"
	GenreHistory     Genre = "HISTORY"
	GenreHorror      Genre = "HORROR"
	GenreKids        Genre = "KIDS"
	GenreMystery     Genre = "MYSTERY"
	GenreNews        Genre = "NEWS"
	GenreReality     Genre = "REALITY"
	GenreRomance     Genre = "ROMANCE"
	GenreSciFi       Genre = "SCI_FI"
	GenreSoap        Genre = "SOAP"
	GenreTalk        Genre = "TALK"
	GenreThriller    Genre = "THRILLER"
	GenreWar         Genre = "WAR"
	GenreWestern     Genre = "WESTERN"
)

// GenreChoice pairs a genre code with its display label.
type GenreChoice struct {
	Code  Genre  `json:"code"`
	Label string `json:"label"`
}

var genreChoices = []GenreChoice{
	{GenreAction, "Action"},
	{GenreAdventure, "Adventure"},
	{GenreAnimation, "Animation"},
	{GenreComedy, "Comedy"},
	{GenreCrime, "Crime"},
	{GenreDocumentary, "Documentary"},
	{GenreDrama, "Drama"},
	{GenreFamily, "Family"},
	{GenreFantasy, "Fantasy"},
	{GenreHistory, "History"},
	{GenreHorror, "Horror"},
	{GenreKids, "Kids"},
	{GenreMystery, "Mystery"},
	{GenreNews, "News"},
	{GenreReality, "Reality"},
	{GenreRomance, "Romance"},
	{GenreSciFi, "Sci-Fi"},
	{GenreSoap, "Soap"},
	{GenreTalk, "Talk Show"},
	{GenreThriller, "Thriller"},
	{GenreWar, "War"},
	{GenreWestern, "Western"},
}

// Genres returns the genre choices in display order. The returned slice is a copy.
func Genres() []GenreChoice {
	out := make([]GenreChoice, len(genreChoices))
	copy(out, genreChoices)
	return out
}

// ParseGenre validates a genre code. Matching is case-insensitive.
func ParseGenre(code string) (Genre, error) {
	g := Genre(strings.ToUpper(strings.TrimSpace(code)))
	for _, c := range genreChoices {
		if c.Code == g {
			return g, nil
		}
	}
	return "", ErrInvalidGenre
}

// Label returns the human readable name, or the raw code when unknown.
func (g Genre) Label() string {
	for _, c := range genreChoices {
		if c.Code == g {
			return c.Label
		}
	}
	return string(g)
}
