package domain

import "context"

// Thumbnail mirrors one thumbnail variant from the video host.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// VideoResult is one recommended video with formatted presentation fields.
// Ephemeral: attached to a lesson at response-assembly time, never persisted.
type VideoResult struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	ChannelTitle string               `json:"channelTitle"`
	ChannelID    string               `json:"channelId"`
	PublishedAt  string               `json:"publishedAt"`
	Thumbnails   map[string]Thumbnail `json:"thumbnails"`
	Duration     string               `json:"duration"`
	RawDuration  string               `json:"rawDuration"`
	ViewCount    string               `json:"viewCount"`
	RawViewCount string               `json:"rawViewCount"`
	LikeCount    string               `json:"likeCount"`
	CommentCount string               `json:"commentCount"`
	URL          string               `json:"url"`
	EmbedURL     string               `json:"embedUrl"`
	Tags         []string             `json:"tags"`
	CategoryID   string               `json:"categoryId,omitempty"`
}

// SearchOptions filter a video search.
type SearchOptions struct {
	MaxResults int64  `json:"maxResults,omitempty"`
	Order      string `json:"order,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Type       string `json:"type,omitempty"`
	SafeSearch string `json:"safeSearch,omitempty"`
}

// SearchResult carries video search output. Upstream failures are absorbed:
// Videos is empty and Error holds a message, the call itself succeeds.
type SearchResult struct {
	Query        string        `json:"query"`
	TotalResults int64         `json:"totalResults"`
	Videos       []VideoResult `json:"videos"`
	Error        string        `json:"error,omitempty"`
}

// LessonVideos are the recommendations attached to one lesson.
type LessonVideos struct {
	LessonTitle string        `json:"lessonTitle"`
	SearchQuery string        `json:"searchQuery"`
	Videos      []VideoResult `json:"recommendedVideos"`
	TotalFound  int64         `json:"totalFound"`
}

// CourseVideos aggregates per-lesson recommendations plus overview videos
// for the whole course.
type CourseVideos struct {
	CourseTitle    string         `json:"courseTitle"`
	OverviewVideos []VideoResult  `json:"overviewVideos"`
	LessonVideos   []LessonVideos `json:"lessonVideos"`
	TotalVideos    int            `json:"totalVideos"`
}

// ChannelInfo describes a video channel.
type ChannelInfo struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Thumbnails      map[string]Thumbnail `json:"thumbnails"`
	SubscriberCount string               `json:"subscriberCount"`
	VideoCount      string               `json:"videoCount"`
	ViewCount       string               `json:"viewCount"`
	URL             string               `json:"url"`
}

// VideoSearcher is the gateway to the video-hosting search API.
type VideoSearcher interface {
	// Search runs a two-phase lookup (search then batched details).
	// Upstream failures are reported inside the result, never as an error.
	Search(ctx context.Context, query string, opts SearchOptions) *SearchResult
	GetVideoDetails(ctx context.Context, videoID string) (*VideoResult, error)
	GetChannelInfo(ctx context.Context, channelID string) (*ChannelInfo, error)
}
