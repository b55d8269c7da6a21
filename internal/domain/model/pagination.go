package model

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultPageNumber int64 = 1
	DefaultPageLimit  int64 = 10
	MaxPageLimit      int64 = 100
)

var (
	ErrInvalidPage      = errors.New("page must be a positive integer")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrInvalidSortField = errors.New("unsupported sort field")
	ErrInvalidSortType  = errors.New("sort type must be asc or desc")
)

// Page is a 1-based page request.
type Page struct {
	Number int64
	Limit  int64
}

// ParsePage reads page and limit query values. Empty values take the
// defaults; limits above MaxPageLimit are clamped. Pages whose skip would
// not fit in an int64 are rejected.
func ParsePage(rawNumber, rawLimit string) (Page, error) {
	p := Page{Number: DefaultPageNumber, Limit: DefaultPageLimit}

	if s := strings.TrimSpace(rawNumber); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 {
			return Page{}, ErrInvalidPage
		}
		p.Number = n
	}

	if s := strings.TrimSpace(rawLimit); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 {
			return Page{}, ErrInvalidLimit
		}
		p.Limit = min(n, MaxPageLimit)
	}

	if p.Number-1 > math.MaxInt64/p.Limit {
		return Page{}, ErrInvalidPage
	}

	return p, nil
}

// Skip is the number of documents before the first one of the page.
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Limit
}

// SortType is the direction of the video listing.
type SortType string

const (
	SortAsc  SortType = "asc"
	SortDesc SortType = "desc"
)

// Direction returns the store sort value: 1 ascending, -1 descending.
func (s SortType) Direction() int {
	if s == SortAsc {
		return 1
	}
	return -1
}

const DefaultSortField = "createdAt"

var sortableVideoFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"title":     true,
	"views":     true,
	"duration":  true,
	"likes":     true,
}

// VideoQuery describes one page of a user's video listing.
type VideoQuery struct {
	UserID   bson.ObjectID
	Page     Page
	Query    string
	SortBy   string
	SortType SortType
}

// NewVideoQuery validates the sort parameters and applies defaults.
func NewVideoQuery(userID bson.ObjectID, page Page, query, sortBy, sortType string) (VideoQuery, error) {
	if sortBy == "" {
		sortBy = DefaultSortField
	}
	if !sortableVideoFields[sortBy] {
		return VideoQuery{}, ErrInvalidSortField
	}

	st := SortType(strings.ToLower(sortType))
	switch st {
	case "":
		st = SortDesc
	case SortAsc, SortDesc:
	default:
		return VideoQuery{}, ErrInvalidSortType
	}

	return VideoQuery{
		UserID:   userID,
		Page:     page,
		Query:    strings.TrimSpace(query),
		SortBy:   sortBy,
		SortType: st,
	}, nil
}

// VideoPage is one page of the video listing. TotalVideos counts the videos
// on this page; TotalCount counts every video matching the query.
type VideoPage struct {
	CurrentPage int64    `json:"currentPage"`
	TotalVideos int64    `json:"totalVideos"`
	TotalCount  int64    `json:"totalCount"`
	Videos      []*Video `json:"videos"`
}
