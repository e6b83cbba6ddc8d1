package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is the account embedded in an Author.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Author of a post. Photo is decoded but not used when exporting.
type Author struct {
	User  User   `json:"user"`
	Photo string `json:"photo"`
}

// DisplayName returns "<first_name> <last_name>".
func (a Author) DisplayName() string {
	return fmt.Sprintf("%s %s", a.User.FirstName, a.User.LastName)
}

// Tag attached to a post
type Tag struct {
	ID          int    `json:"id"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// Post is a record returned by the posts API.
//
// The list endpoint omits content; only the detail endpoint (GET <base>/<id>)
// fills it in. Every other field is required in both shapes.
type Post struct {
	ID            int       `json:"id"`
	Author        Author    `json:"author"`
	Tags          []Tag     `json:"tags"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"published_date"`
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.FirstName == nil:
		return missingField("first_name")
	case raw.LastName == nil:
		return missingField("last_name")
	}
	*u = User{FirstName: *raw.FirstName, LastName: *raw.LastName}
	return nil
}

func (a *Author) UnmarshalJSON(data []byte) error {
	var raw struct {
		User  *User   `json:"user"`
		Photo *string `json:"photo"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("author: %w", err)
	}
	switch {
	case raw.User == nil:
		return missingField("author.user")
	case raw.Photo == nil:
		return missingField("author.photo")
	}
	*a = Author{User: *raw.User, Photo: *raw.Photo}
	return nil
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          *int    `json:"id"`
		Tag         *string `json:"tag"`
		Description *string `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return missingField("tags[].id")
	case raw.Tag == nil:
		return missingField("tags[].tag")
	case raw.Description == nil:
		return missingField("tags[].description")
	}
	*t = Tag{ID: *raw.ID, Tag: *raw.Tag, Description: *raw.Description}
	return nil
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID            *int       `json:"id"`
		Author        *Author    `json:"author"`
		Tags          *[]Tag     `json:"tags"`
		Title         *string    `json:"title"`
		Summary       *string    `json:"summary"`
		Content       *string    `json:"content"`
		PublishedDate *time.Time `json:"published_date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return missingField("id")
	case raw.Author == nil:
		return missingField("author")
	case raw.Tags == nil:
		return missingField("tags")
	case raw.Title == nil:
		return missingField("title")
	case raw.Summary == nil:
		return missingField("summary")
	case raw.PublishedDate == nil:
		return missingField("published_date")
	}

	*p = Post{
		ID:            *raw.ID,
		Author:        *raw.Author,
		Tags:          *raw.Tags,
		Title:         *raw.Title,
		Summary:       *raw.Summary,
		PublishedDate: *raw.PublishedDate,
	}
	// content is only sent by the detail endpoint
	if raw.Content != nil {
		p.Content = *raw.Content
	}
	return nil
}
