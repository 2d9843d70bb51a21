// Package videosearch provides the gateway to the YouTube Data API v3.
package videosearch

import (
	"context"
	"fmt"
	"strconv"

	"learnsphere/internal/domain"
	"learnsphere/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeClient implements domain.VideoSearcher against the YouTube Data API.
type YouTubeClient struct {
	service *youtube.Service
}

// NewYouTubeClient creates the client. A missing API key is not rejected
// here; it surfaces as upstream auth failures at call time.
func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// Search runs the two-phase lookup: the search endpoint yields candidate
// video IDs, then one batched details call fetches duration and statistics
// for all of them. Upstream failures are absorbed into the result.
func (c *YouTubeClient) Search(ctx context.Context, query string, opts domain.SearchOptions) *domain.SearchResult {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	order := opts.Order
	if order == "" {
		order = "relevance"
	}
	contentType := opts.Type
	if contentType == "" {
		contentType = "video"
	}
	safeSearch := opts.SafeSearch
	if safeSearch == "" {
		safeSearch = "moderate"
	}

	call := c.service.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(query).
		Type(contentType).
		MaxResults(maxResults).
		Order(order).
		SafeSearch(safeSearch)
	if opts.Duration != "" && opts.Duration != "any" && contentType == "video" {
		call = call.VideoDuration(opts.Duration)
	}

	searchResp, err := call.Do()
	if err != nil {
		logger.Get().Error("YouTube search failed",
			zap.Error(err),
			zap.String("query", query))
		return &domain.SearchResult{
			Query:  query,
			Videos: []domain.VideoResult{},
			Error:  "Failed to search YouTube videos",
		}
	}

	var videoIDs []string
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.Kind == "youtube#video" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return &domain.SearchResult{Query: query, Videos: []domain.VideoResult{}}
	}

	// One batched details call for all IDs; avoids N+1 requests.
	detailsResp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Context(ctx).
		Id(videoIDs...).
		Do()
	if err != nil {
		logger.Get().Error("YouTube video details lookup failed",
			zap.Error(err),
			zap.Strings("video_ids", videoIDs))
		return &domain.SearchResult{
			Query:  query,
			Videos: []domain.VideoResult{},
			Error:  "Failed to search YouTube videos",
		}
	}

	videos := make([]domain.VideoResult, 0, len(detailsResp.Items))
	for _, video := range detailsResp.Items {
		videos = append(videos, toVideoResult(video))
	}

	var totalResults int64
	if searchResp.PageInfo != nil {
		totalResults = searchResp.PageInfo.TotalResults
	}

	return &domain.SearchResult{
		Query:        query,
		TotalResults: totalResults,
		Videos:       videos,
	}
}

// GetVideoDetails fetches one video by ID. Unlike Search, failures propagate.
func (c *YouTubeClient) GetVideoDetails(ctx context.Context, videoID string) (*domain.VideoResult, error) {
	resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Context(ctx).
		Id(videoID).
		Do()
	if err != nil {
		return nil, domain.NewVideoServiceError("Failed to get video details", err)
	}
	if len(resp.Items) == 0 {
		return nil, domain.NewNotFoundError("Video not found")
	}

	result := toVideoResult(resp.Items[0])
	return &result, nil
}

// GetChannelInfo fetches channel metadata and formatted statistics.
func (c *YouTubeClient) GetChannelInfo(ctx context.Context, channelID string) (*domain.ChannelInfo, error) {
	resp, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Context(ctx).
		Id(channelID).
		Do()
	if err != nil {
		return nil, domain.NewVideoServiceError("Failed to get channel info", err)
	}
	if len(resp.Items) == 0 {
		return nil, domain.NewNotFoundError("Channel not found")
	}

	channel := resp.Items[0]
	info := &domain.ChannelInfo{
		ID:  channel.Id,
		URL: "https://www.youtube.com/channel/" + channel.Id,
	}
	if channel.Snippet != nil {
		info.Title = channel.Snippet.Title
		info.Description = channel.Snippet.Description
		info.Thumbnails = videoThumbnails(channel.Snippet.Thumbnails)
	}
	if channel.Statistics != nil {
		info.SubscriberCount = FormatViewCount(strconv.FormatUint(channel.Statistics.SubscriberCount, 10))
		info.VideoCount = strconv.FormatUint(channel.Statistics.VideoCount, 10)
		info.ViewCount = FormatViewCount(strconv.FormatUint(channel.Statistics.ViewCount, 10))
	}
	return info, nil
}

func toVideoResult(video *youtube.Video) domain.VideoResult {
	result := domain.VideoResult{
		ID:       video.Id,
		URL:      "https://www.youtube.com/watch?v=" + video.Id,
		EmbedURL: "https://www.youtube.com/embed/" + video.Id,
		Tags:     []string{},
	}
	if video.Snippet != nil {
		result.Title = video.Snippet.Title
		result.Description = video.Snippet.Description
		result.ChannelTitle = video.Snippet.ChannelTitle
		result.ChannelID = video.Snippet.ChannelId
		result.PublishedAt = video.Snippet.PublishedAt
		result.Thumbnails = videoThumbnails(video.Snippet.Thumbnails)
		result.CategoryID = video.Snippet.CategoryId
		if video.Snippet.Tags != nil {
			result.Tags = video.Snippet.Tags
		}
	}
	if video.ContentDetails != nil {
		result.RawDuration = video.ContentDetails.Duration
		result.Duration = FormatDuration(video.ContentDetails.Duration)
	}
	if video.Statistics != nil {
		result.RawViewCount = strconv.FormatUint(video.Statistics.ViewCount, 10)
		result.ViewCount = FormatViewCount(result.RawViewCount)
		result.LikeCount = strconv.FormatUint(video.Statistics.LikeCount, 10)
		result.CommentCount = strconv.FormatUint(video.Statistics.CommentCount, 10)
	}
	return result
}

func videoThumbnails(details *youtube.ThumbnailDetails) map[string]domain.Thumbnail {
	thumbnails := map[string]domain.Thumbnail{}
	if details == nil {
		return thumbnails
	}
	add := func(name string, t *youtube.Thumbnail) {
		if t != nil {
			thumbnails[name] = domain.Thumbnail{URL: t.Url, Width: t.Width, Height: t.Height}
		}
	}
	add("default", details.Default)
	add("medium", details.Medium)
	add("high", details.High)
	add("standard", details.Standard)
	add("maxres", details.Maxres)
	return thumbnails
}

var _ domain.VideoSearcher = (*YouTubeClient)(nil)
