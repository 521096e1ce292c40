package model

import "strings"

type Movie struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"posterUrl"`
	ImageUrl    string `json:"imageUrl"`
	AgeRating   string `json:"ageRating"`
	ReleaseDate string `json:"releaseDate"`
}

// DisplayTitle resolves the title across the field variants the backend
// populates inconsistently.
func (m Movie) DisplayTitle() string {
	if title := strings.TrimSpace(m.Title); title != "" {
		return title
	}
	return strings.TrimSpace(m.Name)
}

// Poster resolves the poster image across its field variants.
func (m Movie) Poster() string {
	if url := strings.TrimSpace(m.PosterUrl); url != "" {
		return url
	}
	return strings.TrimSpace(m.ImageUrl)
}
