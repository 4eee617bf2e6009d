package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Halcyon-Media-LLC/signet/internal/model"
)

func CreateUser(email, hashedPassword string, name *string) (int, error) {
	var id int
	const q = `
	INSERT INTO users (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;`
	if err := DB.Get(&id, q, email, hashedPassword, name); err != nil {
		log.Error().Err(err).Msg("CreateUser failed")
		return 0, err
	}
	return id, nil
}

func GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	const q = `SELECT id, email, hashed_password, name, created_at, updated_at FROM users WHERE email = $1;`
	if err := DB.Get(&u, q, email); err != nil {
		return nil, err
	}
	return &u, nil
}

func GetUserByID(id int) (*model.User, error) {
	var u model.User
	const q = `SELECT id, email, hashed_password, name, created_at, updated_at FROM users WHERE id = $1;`
	if err := DB.Get(&u, q, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func UpdateUserProfile(id int, email string, name *string) error {
	_, err := DB.Exec(`
		UPDATE users
		SET email = $2,
		    name  = COALESCE($3, name),
		    updated_at = now()
		WHERE id = $1;`,
		id, email, name,
	)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("UpdateUserProfile failed")
	}
	return err
}
