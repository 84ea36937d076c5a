package domain

import (
	"strings"
	"time"
)

// Role роль пользователя
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// Profile профиль пользователя клуба
type Profile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin возвращает true, если пользователь - администратор клуба
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FullName возвращает имя и фамилию, либо username при их отсутствии
func (p *Profile) FullName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Username
	}
	return name
}
