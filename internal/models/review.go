package models

import "time"

const (
	ScoreMin = 1
	ScoreMax = 10
)

type Review struct {
	ID       uint   `gorm:"primaryKey"`
	TitleID  uint   `gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	Title    *Title `gorm:"constraint:OnDelete:CASCADE;"`
	AuthorID uint   `gorm:"not null;uniqueIndex:idx_reviews_title_author;index"`
	Author   *User  `gorm:"constraint:OnDelete:CASCADE;"`
	Text     string `gorm:"type:text;not null"`
	Score    int    `gorm:"not null;check:chk_reviews_score,score >= 1 AND score <= 10"`
	// PubDate is stamped on insert and never written again.
	PubDate time.Time `gorm:"autoCreateTime;index"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) OwnerID() uint {
	return r.AuthorID
}

type Comment struct {
	ID       uint      `gorm:"primaryKey"`
	ReviewID uint      `gorm:"not null;index"`
	Review   *Review   `gorm:"constraint:OnDelete:CASCADE;"`
	AuthorID uint      `gorm:"not null;index"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE;"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"autoCreateTime;index"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) OwnerID() uint {
	return c.AuthorID
}
