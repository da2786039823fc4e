package admin

type ListUsersQuery struct {
	Search  *string `query:"search" json:"search,omitempty" validate:"omitempty,max=100"`
	Page    int     `query:"page" json:"page,omitempty" default:"1" validate:"min=1"`
	PerPage int     `query:"per_page" json:"per_page,omitempty" default:"15" validate:"min=1,max=100"`
}
