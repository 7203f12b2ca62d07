package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
// Not-found lookups surface as sql.ErrNoRows.

import (
	"moviedb/internal/model"
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Sort names a listing order.
type Sort string

const (
	SortTitle       Sort = "title"
	SortRating      Sort = "rating"
	SortReleaseDate Sort = "release_date"
	SortStartDate   Sort = "start_date"
)

// TitleFilter narrows a movie or TV show listing.
// Zero values mean "no constraint"; an empty Sort means SortTitle.
type TitleFilter struct {
	Genre  model.Genre
	Search string
	Sort   Sort
}

// SearchFilter drives the global search across content types.
type SearchFilter struct {
	Query     string
	MinRating *float64
	MaxRating *float64
	YearFrom  *int
	YearTo    *int
}
