package models

// DefaultFeedPageSize is the number of users returned per feed page.
const DefaultFeedPageSize = 10

// Pagination describes the position of a feed page
// swagger:model Pagination
type Pagination struct {
	// example: 1
	CurrentPage int `json:"currentPage"`

	// example: 3
	TotalPages int `json:"totalPages"`

	// example: 25
	TotalUsers int `json:"totalUsers"`

	// example: true
	HasNextPage bool `json:"hasNextPage"`

	// example: false
	HasPrevPage bool `json:"hasPrevPage"`

	// example: 10
	UsersPerPage int `json:"usersPerPage"`
}

// FeedPage is one page of candidate users
// swagger:model FeedPage
type FeedPage struct {
	Users      []UserSummary `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// NewPagination computes page metadata for total matching users.
func NewPagination(page, pageSize, total int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalUsers:   total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
		UsersPerPage: pageSize,
	}
}
