package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/portfolio"
)

// Every outbound link opens in a new browsing context without handing the
// opener to the destination.
const outboundRel = "noopener noreferrer"

func outbound(href string) g.Group {
	return g.Group{Href(href), Target("_blank"), Rel(outboundRel)}
}

// SocialLink renders an icon-only link to an external profile.
func SocialLink(l portfolio.SocialLink) g.Node {
	return A(
		outbound(l.URL),
		Class("glass-card social-link"),
		g.Attr("aria-label", l.Name),
		icon(l.Icon, 24, "", ""),
	)
}

// SkillItem renders one tech stack tile.
func SkillItem(s portfolio.Skill) g.Node {
	return Div(
		Class("glass-card skill-item"),
		Div(Class("skill-icon"), icon(s.Icon, 20, "", "")),
		H4(g.Text(s.Title)),
		P(g.Text(s.Skills)),
	)
}

// CertificateCard renders a certificate with its thumbnail. The award icon
// beneath the image shows whenever the image is missing or fails to load.
func CertificateCard(c portfolio.Certificate, r assets.Resolver) g.Node {
	return Div(
		Class("glass-card card certificate-card"),
		Div(
			Class("card-media"),
			Div(
				Class("card-placeholder"),
				icon(portfolio.IconAward, 48, "", "placeholder-icon"),
			),
			thumbnail(c.Image, c.Title, r),
		),
		Div(
			Class("card-body"),
			Div(
				Class("card-meta"),
				Span(Class("issuer-badge"), g.Text(c.Issuer)),
				Span(Class("card-date"), g.Text(c.Date)),
			),
			H3(Class("card-title"), g.Text(c.Title)),
			P(Class("card-description"), g.Text(c.Description)),
		),
	)
}

// ProjectCard renders a project as a single outbound link. The project color
// tints the media area and the fallback code icon.
func ProjectCard(p portfolio.Project, r assets.Resolver) g.Node {
	return A(
		outbound(p.Link),
		Class("glass-card card project-card"),
		Div(
			Class("card-media"),
			Style("background:linear-gradient(45deg, "+p.Color+"20, transparent);border-bottom:1px solid "+p.Color+"40"),
			Div(
				Class("card-placeholder"),
				icon(portfolio.IconCode, 48, p.Color, "placeholder-icon"),
			),
			thumbnail(p.Image, p.Title, r),
		),
		Div(
			Class("card-body"),
			H3(Class("card-title"), g.Text(p.Title)),
			P(Class("card-description"), g.Text(p.Description)),
			Div(
				Class("card-tags"),
				g.Map(p.Tags, func(tag string) g.Node {
					return Span(Class("tag"), g.Text(tag))
				}),
			),
		),
	)
}

// thumbnail renders the card image, or nothing when the image is not
// available. A runtime load failure hides the element so the placeholder
// underneath shows through.
func thumbnail(src, alt string, r assets.Resolver) g.Node {
	if src == "" {
		return nil
	}
	if r != nil && !r.Exists(src) {
		return nil
	}
	return Img(
		Class("card-image"),
		Src(assetURL(src)),
		Alt(alt),
		g.Attr("loading", "lazy"),
		g.Attr("onerror", "this.style.display='none'"),
	)
}

// assetURL maps a content path onto the asset route. Paths that cannot be
// cleaned are passed through untouched.
func assetURL(name string) string {
	clean, ok := assets.Clean(name)
	if !ok {
		return name
	}
	return AssetPrefix + clean
}
