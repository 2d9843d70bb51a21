package dto

import "learnsphere/internal/domain"

// VideoSearchRequest is the body of the video search endpoint.
type VideoSearchRequest struct {
	Query   string               `json:"query"`
	Options domain.SearchOptions `json:"options"`
}
