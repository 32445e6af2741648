package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Name string `gorm:"size:256;not null;index" json:"name"`
	Slug string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
}

func (Category) TableName() string {
	return "categories"
}
