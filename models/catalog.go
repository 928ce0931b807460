package models

// Category classifies a title ("books", "movies"). Slug is the public
// identifier.
type Category struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:256;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:50;not null"`
}

// Genre tags a title; a title can carry any number of genres.
type Genre struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:256;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:50;not null"`
}

// Title is a catalogued creative work. Rating is never stored: it is derived
// from the current review set at read time.
type Title struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"size:256;not null"`
	Year        int      `json:"year" gorm:"not null"`
	Description string   `json:"description"`
	CategoryID  uint     `json:"-" gorm:"not null"`
	Category    Category `json:"category"`
	Genres      []Genre  `json:"genre" gorm:"many2many:genre_titles"`
}

// GenreTitle is the title/genre join row. Rows live and die with their title.
type GenreTitle struct {
	TitleID uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}
