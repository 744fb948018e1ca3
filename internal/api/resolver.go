package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Resolver turns channel list entries (bare ids, @handles, channel URLs)
// into channel ids using the YouTube Data API.
type Resolver struct {
	service *youtube.Service
}

// NewResolver creates a new channel resolver
func NewResolver(ctx context.Context, apiKey string) (*Resolver, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %v", err)
	}
	return &Resolver{service: service}, nil
}

// Resolve maps a channel list entry to a channel id. Entries that are
// already channel ids pass through unchanged; handles and URLs require
// an API lookup.
func (r *Resolver) Resolve(entry string) (string, error) {
	switch {
	case strings.HasPrefix(entry, "@"):
		return r.resolveHandle(strings.TrimPrefix(entry, "@"))
	case strings.Contains(entry, "youtube.com") || strings.Contains(entry, "youtu.be") || strings.Contains(entry, "://"):
		return r.resolveURL(entry)
	default:
		return entry, nil
	}
}

// resolveURL extracts or looks up the channel ID from various YouTube URL formats
func (r *Resolver) resolveURL(channelURL string) (string, error) {
	ref, err := parseChannelURL(channelURL)
	if err != nil {
		return "", err
	}

	switch {
	case ref.id != "":
		return ref.id, nil
	case ref.handle != "":
		return r.resolveHandle(ref.handle)
	case ref.username != "":
		return r.resolveUsername(ref.username)
	}
	return "", fmt.Errorf("unsupported YouTube URL format")
}

// channelRef is the outcome of parsing a channel URL: exactly one of
// the fields is set.
type channelRef struct {
	id       string
	handle   string
	username string
}

func parseChannelURL(channelURL string) (channelRef, error) {
	parsedURL, err := url.Parse(channelURL)
	if err != nil {
		return channelRef{}, fmt.Errorf("invalid URL: %w", err)
	}

	switch {
	case strings.Contains(parsedURL.Host, "youtube.com"):
		path := parsedURL.Path
		switch {
		case strings.HasPrefix(path, "/channel/"):
			// Format: youtube.com/channel/UC...
			return channelRef{id: strings.TrimPrefix(path, "/channel/")}, nil
		case strings.HasPrefix(path, "/@"):
			// Format: youtube.com/@Handle
			return channelRef{handle: strings.TrimPrefix(path, "/@")}, nil
		case strings.HasPrefix(path, "/c/"), strings.HasPrefix(path, "/user/"):
			// Format: youtube.com/c/ChannelName or youtube.com/user/Username
			username := strings.TrimPrefix(path, "/c/")
			username = strings.TrimPrefix(username, "/user/")
			return channelRef{username: username}, nil
		}
	case strings.Contains(parsedURL.Host, "youtu.be"):
		return channelRef{}, fmt.Errorf("youtu.be URLs are typically video URLs, not channel URLs")
	}

	return channelRef{}, fmt.Errorf("unsupported YouTube URL format")
}

// resolveHandle looks up the channel id behind a @handle, falling back
// to a channel search when the direct lookup finds nothing.
func (r *Resolver) resolveHandle(handle string) (string, error) {
	response, err := r.service.Channels.List([]string{"id"}).ForHandle(handle).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up handle @%s: %w", handle, err)
	}
	if len(response.Items) > 0 {
		return response.Items[0].Id, nil
	}

	searchResponse, err := r.service.Search.List([]string{"snippet"}).
		Q("@" + handle).
		Type("channel").
		MaxResults(1).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to search for handle @%s: %w", handle, err)
	}
	if len(searchResponse.Items) == 0 {
		return "", fmt.Errorf("no channel found for handle: @%s", handle)
	}
	return searchResponse.Items[0].Id.ChannelId, nil
}

// resolveUsername looks up the channel id behind a legacy username.
func (r *Resolver) resolveUsername(username string) (string, error) {
	response, err := r.service.Channels.List([]string{"id"}).ForUsername(username).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up username %s: %w", username, err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel found for username: %s", username)
	}
	return response.Items[0].Id, nil
}
