package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/folio-api/interfaces"
)

func validSubmission() interfaces.ContactSubmission {
	return interfaces.ContactSubmission{
		Name:    "Alice Example",
		Email:   "alice@example.com",
		Subject: "Project inquiry",
		Message: "I saw your portfolio and would like to discuss a project.",
	}
}

func TestSanitizeSubmission_EscapesAndTrims(t *testing.T) {
	sub := validSubmission()
	sub.Name = "  <b>Alice</b>  "
	sub.Email = "  ALICE@Example.COM "
	sub.Message = "Hello <script>alert(1)</script> world  "

	s := sanitizeSubmission(sub)

	assert.Equal(t, "&lt;b&gt;Alice&lt;/b&gt;", s.name)
	assert.Equal(t, "alice@example.com", s.email)
	assert.NotContains(t, s.message, "<script>")
	assert.False(t, strings.HasSuffix(s.message, " "))
}

func TestValidate_AllFieldsValid(t *testing.T) {
	s := sanitizeSubmission(validSubmission())
	require.Nil(t, s.validate())
	assert.Equal(t, "alice@example.com", s.email)
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	s := sanitizeSubmission(interfaces.ContactSubmission{
		Name:    "A",
		Email:   "not-an-email",
		Subject: "Hey",
		Message: "too short",
	})

	errs := s.validate()
	require.NotNil(t, errs)

	details := errs.Details()
	assert.Equal(t, "Name must be between 2 and 100 characters", details["name"])
	assert.Equal(t, "Please provide a valid email address", details["email"])
	assert.Equal(t, "Subject must be between 5 and 200 characters", details["subject"])
	assert.Equal(t, "Message must be between 10 and 2000 characters", details["message"])
}

func TestValidate_MissingFields(t *testing.T) {
	s := sanitizeSubmission(interfaces.ContactSubmission{})

	errs := s.validate()
	require.NotNil(t, errs)

	details := errs.Details()
	assert.Equal(t, "Name is required", details["name"])
	assert.Equal(t, "Email is required", details["email"])
	assert.Equal(t, "Subject is required", details["subject"])
	assert.Equal(t, "Message is required", details["message"])
}

func TestValidate_LengthUpperBounds(t *testing.T) {
	s := sanitizeSubmission(interfaces.ContactSubmission{
		Name:    strings.Repeat("a", 101),
		Email:   "alice@example.com",
		Subject: strings.Repeat("s", 201),
		Message: strings.Repeat("m", 2001),
	})

	errs := s.validate()
	require.NotNil(t, errs)

	details := errs.Details()
	assert.Contains(t, details["name"], "between 2 and 100")
	assert.Contains(t, details["subject"], "between 5 and 200")
	assert.Contains(t, details["message"], "between 10 and 2000")
	assert.NotContains(t, details, "email")
}
