package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/HSL-2003/portfolio/internal/portfolio"
)

func TestCertificateCardShowsRecordVerbatim(t *testing.T) {
	for _, c := range portfolio.Default().Certificates {
		t.Run(c.Title, func(t *testing.T) {
			doc := render(t, CertificateCard(c, presentAll{}))
			assert.Equal(t, c.Title, text(one(t, doc, byClass("card-title"))))
			assert.Equal(t, c.Description, text(one(t, doc, byClass("card-description"))))
			assert.Equal(t, c.Issuer, text(one(t, doc, byClass("issuer-badge"))))
			assert.Equal(t, c.Date, text(one(t, doc, byClass("card-date"))))
		})
	}
}

func TestCertificateCardIssuerAndDateAdjacentToTitle(t *testing.T) {
	c := portfolio.Certificate{
		Title:       "Academic Skills For University Success",
		Issuer:      "Coursera",
		Date:        "2022",
		Description: "Study skills.",
		Image:       "co1.jpg",
	}
	doc := render(t, CertificateCard(c, presentAll{}))

	meta := one(t, doc, byClass("card-meta"))
	title := one(t, doc, byClass("card-title"))
	assert.Equal(t, "Coursera", text(one(t, meta, byClass("issuer-badge"))))
	assert.Equal(t, "2022", text(one(t, meta, byClass("card-date"))))

	// The meta row is the title's previous element sibling.
	prev := title.PrevSibling
	for prev != nil && prev.Type != html.ElementNode {
		prev = prev.PrevSibling
	}
	assert.Same(t, meta, prev)
}

func TestProjectCardShowsTagsVerbatim(t *testing.T) {
	for _, p := range portfolio.Default().Projects {
		t.Run(p.Title, func(t *testing.T) {
			doc := render(t, ProjectCard(p, presentAll{}))
			assert.Equal(t, p.Title, text(one(t, doc, byClass("card-title"))))
			assert.Equal(t, p.Description, text(one(t, doc, byClass("card-description"))))

			var tags []string
			for _, n := range findAll(doc, byClass("tag")) {
				tags = append(tags, text(n))
			}
			assert.Equal(t, p.Tags, tags)
		})
	}
}

func TestCardsFallBackWhenImageMissing(t *testing.T) {
	site := portfolio.Default()

	for name, doc := range map[string]*html.Node{
		"certificate": render(t, CertificateCard(site.Certificates[0], missingAll{})),
		"project":     render(t, ProjectCard(site.Projects[0], missingAll{})),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, findAll(doc, byTag("img")), "no broken image element")
			placeholder := one(t, doc, byClass("card-placeholder"))
			assert.NotEmpty(t, findAll(placeholder, byTag("svg")))
		})
	}
}

func TestCardsHideImageOnLoadError(t *testing.T) {
	doc := render(t, CertificateCard(portfolio.Default().Certificates[0], presentAll{}))
	img := one(t, doc, byTag("img"))

	src, _ := attr(img, "src")
	assert.Equal(t, "/assets/co1.jpg", src)
	onerror, ok := attr(img, "onerror")
	require.True(t, ok)
	assert.Contains(t, onerror, "display='none'")

	// The placeholder is rendered underneath the image either way.
	assert.Len(t, findAll(doc, byClass("card-placeholder")), 1)
}

func TestProjectWithoutImageRendersPlaceholderOnly(t *testing.T) {
	p := portfolio.Default().Projects[1]
	p.Image = ""
	doc := render(t, ProjectCard(p, nil))
	assert.Empty(t, findAll(doc, byTag("img")))

	svg := one(t, doc, byClass("placeholder-icon"))
	stroke, _ := attr(svg, "stroke")
	assert.Equal(t, p.Color, stroke)
}

func TestNilResolverKeepsImage(t *testing.T) {
	doc := render(t, CertificateCard(portfolio.Default().Certificates[0], nil))
	assert.Len(t, findAll(doc, byTag("img")), 1)
}

func TestOutboundLinksOpenInNewContext(t *testing.T) {
	site := portfolio.Default()
	var links []*html.Node
	for _, s := range site.Socials {
		links = append(links, findAll(render(t, SocialLink(s)), byTag("a"))...)
	}
	for _, p := range site.Projects {
		links = append(links, findAll(render(t, ProjectCard(p, nil)), byTag("a"))...)
	}
	require.Len(t, links, len(site.Socials)+len(site.Projects))

	for _, a := range links {
		target, _ := attr(a, "target")
		rel, _ := attr(a, "rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)
	}
}

func TestSkillItem(t *testing.T) {
	doc := render(t, SkillItem(portfolio.Skill{Icon: portfolio.IconCPU, Title: "Tools", Skills: "Git, Docker, Figma"}))
	assert.Equal(t, "Tools", text(one(t, doc, byTag("h4"))))
	assert.Equal(t, "Git, Docker, Figma", text(one(t, doc, byTag("p"))))
}

func TestTextIsEscaped(t *testing.T) {
	c := portfolio.Certificate{Title: "<script>alert(1)</script>", Issuer: "x", Date: "y", Description: "z"}
	doc := render(t, CertificateCard(c, nil))
	assert.Empty(t, findAll(doc, byTag("script")))
	assert.Equal(t, c.Title, text(one(t, doc, byClass("card-title"))))
}
