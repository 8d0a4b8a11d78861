package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/HSL-2003/portfolio/internal/portfolio"
)

func TestPageSectionsInOrder(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))

	var ids []string
	for _, s := range findAll(doc, byTag("section")) {
		id, _ := attr(s, "id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{AnchorHome, AnchorAbout, AnchorCertificates, AnchorProjects, AnchorContact}, ids)
}

func TestNavLinksTargetAnchors(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))
	nav := one(t, doc, byTag("nav"))

	var hrefs []string
	for _, a := range findAll(nav, byClass("nav-link")) {
		href, _ := attr(a, "href")
		hrefs = append(hrefs, href)
		require.Len(t, findAll(doc, byID(strings.TrimPrefix(href, "#"))), 1, href)
	}
	assert.Equal(t, []string{"#about", "#certificates", "#projects", "#contact"}, hrefs)
}

func TestPageRendersAllCards(t *testing.T) {
	site := portfolio.Default()
	doc := render(t, Page(site, Options{Resolver: presentAll{}}))
	assert.Len(t, findAll(doc, byClass("certificate-card")), len(site.Certificates))
	assert.Len(t, findAll(doc, byClass("project-card")), len(site.Projects))
	assert.Len(t, findAll(doc, byClass("skill-item")), len(site.Skills))
	assert.Len(t, findAll(doc, byClass("social-link")), len(site.Socials))
}

func TestEveryExternalLinkOpensInNewContext(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))

	var external int
	for _, a := range findAll(doc, byTag("a")) {
		href, _ := attr(a, "href")
		if !strings.HasPrefix(href, "http") && !strings.HasPrefix(href, "mailto:") {
			continue
		}
		external++
		target, _ := attr(a, "target")
		rel, _ := attr(a, "rel")
		assert.Equal(t, "_blank", target, href)
		assert.Contains(t, rel, "noopener", href)
		assert.Contains(t, rel, "noreferrer", href)
	}
	// hero GitHub, mailto, three socials, two projects
	assert.Equal(t, 7, external)
}

func TestMailtoLink(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))
	mail := one(t, doc, byClass("btn-mail"))
	href, _ := attr(mail, "href")
	assert.Equal(t, "mailto:Hoangsonlam97@gmail.com", href)
}

func TestCVDownload(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))
	links := findAll(doc, func(n *html.Node) bool {
		_, ok := attr(n, "download")
		return n.Data == "a" && ok
	})
	require.Len(t, links, 1)
	href, _ := attr(links[0], "href")
	assert.Equal(t, "/assets/lamhoangson.pdf", href)
}

func TestProgressBarStartsEmpty(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))
	bar := one(t, doc, byID("scroll-progress"))
	style, _ := attr(bar, "style")
	assert.Contains(t, style, "scaleX(0)")
	assert.Contains(t, style, "position:fixed")
}

func TestBackgroundIgnoresPointer(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{SceneSeed: 42}))
	scene := one(t, doc, byClass("scene"))
	style, _ := attr(scene, "style")
	assert.Contains(t, style, "pointer-events:none")
	assert.Contains(t, style, "z-index:0")

	canvas := one(t, scene, byTag("canvas"))
	src, _ := attr(canvas, "data-scene-src")
	assert.Equal(t, "/api/scene?seed=42", src)
}

func TestRevealWrappers(t *testing.T) {
	doc := render(t, Page(portfolio.Default(), Options{}))
	wrappers := findAll(doc, byClass("reveal"))
	// hero text, hero photo, about, certificates, projects, contact
	require.Len(t, wrappers, 6)

	var triggers []string
	for _, w := range wrappers {
		v, _ := attr(w, "data-reveal")
		triggers = append(triggers, v)
		once, _ := attr(w, "data-reveal-once")
		assert.Equal(t, "true", once)
	}
	assert.Equal(t, []string{"mount", "mount", "view", "view", "view", "view"}, triggers)
}

func TestAboutRendersMarkdown(t *testing.T) {
	site := portfolio.Default()
	site.Profile.About = []string{"I like **Go** and <b>raw</b> tags."}
	doc := render(t, About(site.Profile, site.Skills))

	about := one(t, doc, byClass("about-text"))
	strong := one(t, about, byTag("strong"))
	assert.Equal(t, "Go", text(strong))
	assert.Empty(t, findAll(about, byTag("b")), "raw HTML is not passed through")
	// The tags are dropped rather than escaped; their text survives.
	assert.Contains(t, text(about), "and raw tags.")
	assert.NotContains(t, text(about), "<b>")
}

func TestHeroPhotoFallback(t *testing.T) {
	p := portfolio.Default().Profile
	assert.Empty(t, findAll(render(t, Hero(p, missingAll{})), byClass("profile-photo")))
	assert.Len(t, findAll(render(t, Hero(p, presentAll{})), byClass("profile-photo")), 1)
}
