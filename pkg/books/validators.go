package books

import "mime/multipart"

type ListBooksQuery struct {
	Search      *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
	Category    *string `query:"category" json:"category,omitempty" validate:"omitempty,max=100"`
	AgeCategory *string `query:"age_category" json:"age_category,omitempty" validate:"omitempty,oneof=children teen adult all"`
	Page        int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	PerPage     int     `query:"per_page" json:"per_page,omitempty" default:"12" validate:"min=1,max=100"`
}

type AdminListBooksQuery struct {
	Search  *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
	Status  *string `query:"status" json:"status,omitempty" validate:"omitempty,oneof=active inactive deleted"`
	Page    int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	PerPage int     `query:"per_page" json:"per_page,omitempty" default:"15" validate:"min=1,max=100"`
}

type CreateBookPayload struct {
	Title         string  `form:"title" json:"title" validate:"required,max=255"`
	Author        string  `form:"author" json:"author" validate:"required,max=255"`
	Description   string  `form:"description" json:"description" validate:"required"`
	Category      string  `form:"category" json:"category" validate:"required,max=100"`
	AgeCategory   string  `form:"age_category" json:"age_category" validate:"required,oneof=children teen adult all"`
	PublishedYear *int    `form:"published_year" json:"published_year,omitempty" validate:"omitempty,publishedyear"`
	ISBN          *string `form:"isbn" json:"isbn,omitempty" validate:"omitempty,max=20"`
	Language      *string `form:"language" json:"language,omitempty" validate:"omitempty,max=50"`
	Pages         *int    `form:"pages" json:"pages,omitempty" validate:"omitempty,min=1"`

	FormFiles map[string]*multipart.FileHeader `form:"-" json:"-"`
}

type UpdateBookPayload struct {
	Title         *string `form:"title" json:"title,omitempty" validate:"omitempty,max=255"`
	Author        *string `form:"author" json:"author,omitempty" validate:"omitempty,max=255"`
	Description   *string `form:"description" json:"description,omitempty"`
	Category      *string `form:"category" json:"category,omitempty" validate:"omitempty,max=100"`
	AgeCategory   *string `form:"age_category" json:"age_category,omitempty" validate:"omitempty,oneof=children teen adult all"`
	PublishedYear *int    `form:"published_year" json:"published_year,omitempty" validate:"omitempty,publishedyear"`
	ISBN          *string `form:"isbn" json:"isbn,omitempty" validate:"omitempty,max=20"`
	Language      *string `form:"language" json:"language,omitempty" validate:"omitempty,max=50"`
	Pages         *int    `form:"pages" json:"pages,omitempty" validate:"omitempty,min=1"`
	IsActive      *bool   `form:"is_active" json:"is_active,omitempty"`

	FormFiles map[string]*multipart.FileHeader `form:"-" json:"-"`
}
