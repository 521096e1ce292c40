package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinema-booking-cli/model"
)

const (
	movieCacheTTL   = 6 * time.Hour
	comboCacheTTL   = 30 * time.Minute
	maxRecentMovies = 8

	appDirName = "cinema-booking-cli"
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type RecentMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type movieHistory struct {
	Movies []RecentMovie `json:"movies"`
}

func LoadMovieCache() ([]model.Movie, bool, error) {
	path, err := cachePath("movies.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Movie](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= movieCacheTTL, nil
}

func SaveMovieCache(movies []model.Movie) error {
	path, err := cachePath("movies.json")
	if err != nil {
		return err
	}
	return saveCache(path, movies)
}

func LoadComboCache() ([]model.Combo, bool, error) {
	path, err := cachePath("combos.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Combo](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= comboCacheTTL, nil
}

func SaveComboCache(combos []model.Combo) error {
	path, err := cachePath("combos.json")
	if err != nil {
		return err
	}
	return saveCache(path, combos)
}

func LoadRecentMovies() ([]RecentMovie, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history movieHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid movie history format")
	}
	return history.Movies, nil
}

func RememberMovie(movie model.Movie) error {
	history, _ := LoadRecentMovies()
	next := []RecentMovie{{ID: movie.Id, Title: movie.DisplayTitle()}}

	for _, existing := range history {
		if existing.ID == movie.Id && existing.ID != "" {
			continue
		}
		if existing.Title != "" && strings.EqualFold(existing.Title, movie.DisplayTitle()) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}

	return saveJSON("history.json", movieHistory{Movies: next})
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func saveJSON(name string, value any) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func removeJSON(name string) error {
	path, err := configPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
