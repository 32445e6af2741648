package handlers

import (
	"time"

	"yamdb-backend/internal/models"
)

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio"`
	Role      models.Role `json:"role" swaggertype:"string" enums:"user,moderator,admin"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

// TitleReadResponse is the shape of list and retrieve: related objects are
// nested and the rating is included.
type TitleReadResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *float64         `json:"rating"`
	Description string           `json:"description"`
	Poster      string           `json:"poster"`
	Genre       []models.Genre   `json:"genre"`
	Category    *models.Category `json:"category"`
}

// TitleWriteResponse echoes a create or update with related objects as slugs.
type TitleWriteResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	Genre       []string `json:"genre"`
	Category    *string  `json:"category"`
}

func toTitleRead(t *models.Title) TitleReadResponse {
	genres := t.Genres
	if genres == nil {
		genres = []models.Genre{}
	}
	return TitleReadResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: t.Description,
		Poster:      t.Poster,
		Genre:       genres,
		Category:    t.Category,
	}
}

func toTitleReads(titles []models.Title) []TitleReadResponse {
	out := make([]TitleReadResponse, len(titles))
	for i := range titles {
		out[i] = toTitleRead(&titles[i])
	}
	return out
}

func toTitleWrite(t *models.Title) TitleWriteResponse {
	resp := TitleWriteResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Description: t.Description,
		Poster:      t.Poster,
		Genre:       make([]string, 0, len(t.Genres)),
	}
	for _, g := range t.Genres {
		resp.Genre = append(resp.Genre, g.Slug)
	}
	if t.Category != nil {
		slug := t.Category.Slug
		resp.Category = &slug
	}
	return resp
}

type ReviewResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func toReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
	if r.Title != nil {
		resp.Title = r.Title.Name
	}
	if r.Author != nil {
		resp.Author = r.Author.Username
	}
	return resp
}

func toReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = toReviewResponse(&reviews[i])
	}
	return out
}

type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func toCommentResponse(cm *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:      cm.ID,
		Text:    cm.Text,
		PubDate: cm.PubDate,
	}
	if cm.Author != nil {
		resp.Author = cm.Author.Username
	}
	return resp
}

func toCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	return out
}
