package store

import (
	"encoding/json"
	"os"

	"cinema-booking-cli/model"
)

// UserSession is the persisted identity used for bookings.
type UserSession struct {
	UserID string `json:"user_id"`
	Token  string `json:"token,omitempty"`
}

// AdminSession is the persisted admin console session.
type AdminSession struct {
	Token string      `json:"token"`
	Admin model.Admin `json:"admin"`
}

func SaveUserSession(session UserSession) error {
	return saveJSON("session.json", session)
}

func LoadUserSession() (UserSession, error) {
	return loadJSON[UserSession]("session.json")
}

func ClearUserSession() error {
	return removeJSON("session.json")
}

func SaveAdminSession(session AdminSession) error {
	return saveJSON("admin_session.json", session)
}

func LoadAdminSession() (AdminSession, error) {
	return loadJSON[AdminSession]("admin_session.json")
}

func ClearAdminSession() error {
	return removeJSON("admin_session.json")
}

func loadJSON[T any](name string) (T, error) {
	var value T
	path, err := configPath(name)
	if err != nil {
		return value, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return value, nil
		}
		return value, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}
