package model

import "time"

type User struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// PublicUser : user projection safe to send to clients and attach to requests
// swagger:model
type PublicUser struct {
	ID        string    `json:"id" example:"5f0c6a3e-8a3b-4d8e-9a53-1c2f0d1e2a3b"`
	FullName  string    `json:"fullName" example:"Mohamed Bensalem"`
	Email     string    `json:"email" example:"mohamed.bensalem@example.com"`
	Phone     string    `json:"phone" example:"0550123456"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
