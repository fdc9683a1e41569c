package events

import "time"

const TypePostCreated = "post.created"

type PostCreatedPayload struct {
	PostID   int64  `json:"post_id"`
	Title    string `json:"title"`
	HasImage bool   `json:"has_image"`
}

type PostCreated struct {
	Type      string             `json:"type"`
	Timestamp time.Time          `json:"timestamp"`
	Payload   PostCreatedPayload `json:"payload"`
}

func NewPostCreated(postID int64, title string, hasImage bool) PostCreated {
	return PostCreated{
		Type:      TypePostCreated,
		Timestamp: time.Now().UTC(),
		Payload: PostCreatedPayload{
			PostID:   postID,
			Title:    title,
			HasImage: hasImage,
		},
	}
}
