package handler

// createClanRequest founds a clan; the founder is always the authenticated
// caller, never part of the body.
type createClanRequest struct {
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// updateClanRequest deliberately carries no id; the route parameter is the
// single source of truth for which clan is updated.
type updateClanRequest struct {
	Name        string `json:"name"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}
