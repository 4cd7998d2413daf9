package postgres

import (
	"time"

	"github.com/inkwell/content-system/internal/core/domain"
)

// userRecord is the GORM mapping of domain.User. The role column is nullable
// because a user may carry no role.
type userRecord struct {
	ID        string       `gorm:"type:uuid;primaryKey"`
	Name      string       `gorm:"size:255;not null"`
	Email     string       `gorm:"size:255;uniqueIndex;not null"`
	Role      *string      `gorm:"size:16"`
	CreatedAt time.Time    `gorm:"not null"`
	UpdatedAt time.Time    `gorm:"not null"`
	Posts     []postRecord `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (userRecord) TableName() string { return "users" }

// postRecord is the GORM mapping of domain.Post.
type postRecord struct {
	ID        string      `gorm:"type:uuid;primaryKey"`
	Title     string      `gorm:"size:255;not null"`
	Body      string      `gorm:"type:text;not null"`
	UserID    string      `gorm:"type:uuid;index;not null"`
	User      *userRecord `gorm:"foreignKey:UserID"`
	CreatedAt time.Time   `gorm:"not null"`
}

func (postRecord) TableName() string { return "posts" }

// --- Domain ↔ record mapping ---

func toUserRecord(u *domain.User) userRecord {
	var role *string
	if u.Role != "" {
		r := string(u.Role)
		role = &r
	}
	return userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toDomainUser(rec *userRecord) *domain.User {
	u := &domain.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt.UTC(),
		UpdatedAt: rec.UpdatedAt.UTC(),
	}
	if rec.Role != nil {
		u.Role = domain.Role(*rec.Role)
	}
	if len(rec.Posts) > 0 {
		u.Posts = make([]domain.Post, len(rec.Posts))
		for i := range rec.Posts {
			u.Posts[i] = *toDomainPost(&rec.Posts[i])
		}
	}
	return u
}

func toPostRecord(p *domain.Post) postRecord {
	return postRecord{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
}

func toDomainPost(rec *postRecord) *domain.Post {
	p := &domain.Post{
		ID:        rec.ID,
		Title:     rec.Title,
		Body:      rec.Body,
		UserID:    rec.UserID,
		CreatedAt: rec.CreatedAt.UTC(),
	}
	if rec.User != nil {
		p.User = toDomainUser(rec.User)
	}
	return p
}
