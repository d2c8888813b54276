package models

type SignUpRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OAuthSignInRequest carries the identity asserted by an external
// provider after the provider callback has been verified upstream.
type OAuthSignInRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdatePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}

// ArticleInput is shared by create and update. Tags is a comma-separated
// list of tag names; Status defaults to draft when empty.
type ArticleInput struct {
	Title    string        `json:"title" form:"title" validate:"required,min=5,max=100"`
	Content  string        `json:"content" form:"content" validate:"required,min=50"`
	Excerpt  string        `json:"excerpt" form:"excerpt" validate:"omitempty,min=10"`
	Category string        `json:"category" form:"category" validate:"required"`
	Status   ArticleStatus `json:"status" form:"status" validate:"omitempty,oneof=draft published archived"`
	Featured bool          `json:"featured" form:"featured"`
	Tags     string        `json:"tags" form:"tags"`
	// ImageURL is filled by the handler after storing an uploaded
	// image; it is never taken from the request body directly.
	ImageURL *string `json:"-" form:"-"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type NewsletterRequest struct {
	Subject string `json:"subject" validate:"required,min=5"`
	Content string `json:"content" validate:"required,min=10"`
}

type ArticleListParams struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Featured *bool  `form:"featured"`
	AuthorID uint   `form:"-"`
	Limit    int    `form:"limit,default=10"`
	Offset   int    `form:"offset,default=0"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}
