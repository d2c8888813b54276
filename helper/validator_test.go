package helper

import (
	"testing"

	"newshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsSnakeCaseFields(t *testing.T) {
	verr := Validate(models.SignUpRequest{
		Name:            "J",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
	})

	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "confirm_password")
}

func TestValidatePassesCleanInput(t *testing.T) {
	verr := Validate(models.SignUpRequest{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
	})
	assert.Nil(t, verr)
}

func TestValidateOmitemptySkipsEmptyOptional(t *testing.T) {
	input := models.ArticleInput{
		Title:    "A Fine Article",
		Content:  "This content is comfortably longer than the fifty character floor.",
		Category: "Tech",
	}
	assert.Nil(t, Validate(input))

	input.Excerpt = "too short"
	verr := Validate(input)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "excerpt")
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "confirm_password", Underscore("ConfirmPassword"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "current_password", Underscore("CurrentPassword"))
}
