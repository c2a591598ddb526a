package model

// ToggleFavoriteResponse reports the post-toggle state of the
// (user, car) pair.
type ToggleFavoriteResponse struct {
	Saved bool `json:"saved"`
}

type FavoriteListResponse struct {
	Cars       []CarListItem `json:"cars"`
	Pagination Pagination    `json:"pagination"`
}
