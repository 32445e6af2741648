package validation

import (
	"errors"
	"testing"
	"time"

	"yamdb-backend/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string  `json:"username" validate:"required,max=150,username"`
	Email    string  `json:"email" validate:"required,max=254,email"`
	Slug     string  `json:"slug" validate:"omitempty,max=50,slug"`
	Year     *int    `json:"year" validate:"omitempty,min=0,notfuture"`
	Score    *int    `json:"score" validate:"omitempty,score"`
	Role     *string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

func intPtr(v int) *int { return &v }

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func TestStructAcceptsValidInput(t *testing.T) {
	role := "moderator"
	err := Struct(sample{
		Username: "bob.smith+1",
		Email:    "bob@example.com",
		Slug:     "sci-fi_2",
		Year:     intPtr(time.Now().Year()),
		Score:    intPtr(10),
		Role:     &role,
	})
	assert.NoError(t, err)
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	fields := fieldsOf(t, Struct(sample{}))

	assert.Equal(t, []string{MsgRequired}, fields["username"])
	assert.Equal(t, []string{MsgRequired}, fields["email"])
}

func TestYearInFutureRejected(t *testing.T) {
	fields := fieldsOf(t, Struct(sample{
		Username: "bob",
		Email:    "bob@example.com",
		Year:     intPtr(time.Now().Year() + 1),
	}))

	assert.Equal(t, []string{MsgFutureYear}, fields["year"])
}

func TestScoreRange(t *testing.T) {
	for _, score := range []int{0, 11, -3} {
		fields := fieldsOf(t, Struct(sample{Username: "bob", Email: "bob@example.com", Score: intPtr(score)}))
		assert.Equal(t, []string{MsgScoreRange}, fields["score"], "score %d", score)
	}
	for _, score := range []int{1, 5, 10} {
		assert.NoError(t, Struct(sample{Username: "bob", Email: "bob@example.com", Score: intPtr(score)}))
	}
}

func TestUsernameRules(t *testing.T) {
	assert.Equal(t, MsgUsernameMe, ValidUsername("me"))
	assert.Equal(t, MsgUsernameChars, ValidUsername("bad name"))
	assert.Equal(t, MsgUsernameChars, ValidUsername("semi;colon"))
	assert.Empty(t, ValidUsername("Иван_99"))
	assert.Empty(t, ValidUsername("a.b@c+d-e"))

	fields := fieldsOf(t, Struct(sample{Username: "me", Email: "me@example.com"}))
	assert.Equal(t, []string{MsgUsernameMe}, fields["username"])
}

func TestSlugAndRoleChoices(t *testing.T) {
	role := "owner"
	fields := fieldsOf(t, Struct(sample{
		Username: "bob",
		Email:    "bob@example.com",
		Slug:     "not a slug",
		Role:     &role,
	}))

	assert.Equal(t, []string{MsgSlug}, fields["slug"])
	assert.Equal(t, []string{`"owner" is not a valid choice.`}, fields["role"])
}
