package models

import "fmt"

// PostMediaItem is a post-to-library link joined with the media library row
// it points at. The item with the lowest display order is the post's
// featured media. The library itself is owned by the external authoring
// system; this side only reads through the join.
type PostMediaItem struct {
	ID               int64  `json:"id"`
	PostID           int64  `json:"post_id"`
	DisplayOrder     int    `json:"display_order"`
	CustomAltText    string `json:"custom_alt_text"`
	File             string `json:"file"`
	MediaType        string `json:"media_type"`
	OriginalFilename string `json:"original_filename"`
	Width            *int   `json:"width"`
	Height           *int   `json:"height"`
}

func (m PostMediaItem) URL() string {
	return fmt.Sprintf("/media/%s", m.File)
}
