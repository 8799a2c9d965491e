package contact

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/customeros/mailsherpa/mailvalidate"

	apierrors "github.com/devfolio/folio-api/api/errors"
	"github.com/devfolio/folio-api/interfaces"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	subjectMinLen = 5
	subjectMaxLen = 200
	messageMinLen = 10
	messageMaxLen = 2000
)

// sanitized holds a submission after trimming, HTML escaping and email
// normalization. Stored values can never be replayed as markup.
type sanitized struct {
	name    string
	email   string
	subject string
	message string
}

func sanitizeSubmission(sub interfaces.ContactSubmission) sanitized {
	return sanitized{
		name:    html.EscapeString(strings.TrimSpace(sub.Name)),
		email:   strings.ToLower(strings.TrimSpace(sub.Email)),
		subject: html.EscapeString(strings.TrimSpace(sub.Subject)),
		message: html.EscapeString(strings.TrimSpace(sub.Message)),
	}
}

// validate runs every check and reports every violation, not just the first.
// On success the email field holds its canonical form.
func (s *sanitized) validate() *apierrors.MultiErrors {
	errs := apierrors.NewMultiErrors()

	switch n := utf8.RuneCountInString(s.name); {
	case n == 0:
		errs.Add("name", "Name is required", nil)
	case n < nameMinLen || n > nameMaxLen:
		errs.Add("name", "Name must be between 2 and 100 characters", nil)
	}

	switch n := utf8.RuneCountInString(s.subject); {
	case n == 0:
		errs.Add("subject", "Subject is required", nil)
	case n < subjectMinLen || n > subjectMaxLen:
		errs.Add("subject", "Subject must be between 5 and 200 characters", nil)
	}

	switch n := utf8.RuneCountInString(s.message); {
	case n == 0:
		errs.Add("message", "Message is required", nil)
	case n < messageMinLen || n > messageMaxLen:
		errs.Add("message", "Message must be between 10 and 2000 characters", nil)
	}

	if s.email == "" {
		errs.Add("email", "Email is required", nil)
	} else {
		validation := mailvalidate.ValidateEmailSyntax(s.email)
		if !validation.IsValid {
			errs.Add("email", "Please provide a valid email address", nil)
		} else {
			s.email = validation.CleanEmail
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
