package models

type Title struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:256;not null;index"`
	Year        int       `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Poster      string    `gorm:"size:512"`
	CategoryID  *uint     `gorm:"index"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;"`
	Genres      []Genre   `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE;"`

	// Rating is the mean review score, filled only by aggregate queries.
	Rating *float64 `gorm:"->;-:migration"`
}

func (Title) TableName() string {
	return "titles"
}

// TitleFilter narrows title listings. Zero values are ignored.
type TitleFilter struct {
	Name     string
	Year     int
	Category string
	Genre    string
}
