package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"tasktracker/internal/models"
)

// ErrUsernameTaken reports a unique violation on users.username.
var ErrUsernameTaken = errors.New("username already exists")

func CreateUser(db *sql.DB, username, hashedPassword string) (models.User, error) {
	user := models.User{Username: username, Password: hashedPassword}
	err := db.QueryRow(
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id",
		username, hashedPassword,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

func GetUserByUsername(db *sql.DB, username string) (models.User, error) {
	var user models.User
	err := db.QueryRow(
		"SELECT id, username, password FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.Password)
	return user, err
}
