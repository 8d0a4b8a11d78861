package portfolio

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidContent wraps every validation failure returned by Validate.
var ErrInvalidContent = errors.New("invalid content")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate reports every record field that is missing or malformed. The
// returned error joins one entry per problem and matches ErrInvalidContent.
func (s Site) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidContent, fmt.Sprintf(format, args...)))
	}
	required := func(record, field, value string) {
		if strings.TrimSpace(value) == "" {
			fail("%s: %s is empty", record, field)
		}
	}

	p := s.Profile
	required("profile", "name", p.Name)
	required("profile", "role", p.Role)
	required("profile", "tagline", p.Tagline)
	required("profile", "photo", p.Photo)
	required("profile", "cv", p.CV)
	if !isWebURL(p.GitHub) {
		fail("profile: github %q is not an http(s) URL", p.GitHub)
	}
	if addr, err := mail.ParseAddress(p.Email); err != nil || addr.Address != p.Email {
		fail("profile: email %q is not a plain address", p.Email)
	}
	if len(p.About) == 0 {
		fail("profile: about is empty")
	}
	for i, para := range p.About {
		required(fmt.Sprintf("profile.about[%d]", i), "text", para)
	}

	for i, sk := range s.Skills {
		rec := fmt.Sprintf("skills[%d]", i)
		required(rec, "title", sk.Title)
		required(rec, "skills", sk.Skills)
		required(rec, "icon", string(sk.Icon))
	}

	for i, c := range s.Certificates {
		rec := fmt.Sprintf("certificates[%d]", i)
		required(rec, "title", c.Title)
		required(rec, "issuer", c.Issuer)
		required(rec, "date", c.Date)
		required(rec, "description", c.Description)
		required(rec, "image", c.Image)
	}

	for i, pr := range s.Projects {
		rec := fmt.Sprintf("projects[%d]", i)
		required(rec, "title", pr.Title)
		required(rec, "description", pr.Description)
		if len(pr.Tags) == 0 {
			fail("%s: tags is empty", rec)
		}
		for j, tag := range pr.Tags {
			required(rec, fmt.Sprintf("tags[%d]", j), tag)
		}
		if !hexColor.MatchString(pr.Color) {
			fail("%s: color %q is not #rrggbb", rec, pr.Color)
		}
		if !isWebURL(pr.Link) {
			fail("%s: link %q is not an http(s) URL", rec, pr.Link)
		}
	}

	for i, sl := range s.Socials {
		rec := fmt.Sprintf("socials[%d]", i)
		required(rec, "name", sl.Name)
		required(rec, "icon", string(sl.Icon))
		if !isWebURL(sl.URL) {
			fail("%s: url %q is not an http(s) URL", rec, sl.URL)
		}
	}

	return errors.Join(errs...)
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
