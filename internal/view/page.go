// Package view renders the portfolio page. Every component is a pure
// function from records to HTML nodes.
package view

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/portfolio"
	"github.com/HSL-2003/portfolio/internal/reveal"
	"github.com/HSL-2003/portfolio/internal/scroll"
)

const (
	AssetPrefix  = "/assets/"
	StaticPrefix = "/static/"
	SceneURL     = "/api/scene"
)

// Section anchors targeted by the navigation bar.
const (
	AnchorHome         = "home"
	AnchorAbout        = "about"
	AnchorCertificates = "certificates"
	AnchorProjects     = "projects"
	AnchorContact      = "contact"
)

// Options tweaks how a page is composed. The zero value renders every image
// reference and relies on the client-side fallback alone.
type Options struct {
	Resolver assets.Resolver
	// SceneSeed picks the starfield served to the client.
	SceneSeed uint64
}

type navItem struct {
	Anchor string
	Label  string
}

var navItems = []navItem{
	{AnchorAbout, "About"},
	{AnchorCertificates, "Certificates"},
	{AnchorProjects, "Projects"},
	{AnchorContact, "Contact"},
}

// Page composes the whole document.
func Page(site portfolio.Site, opts Options) g.Node {
	p := site.Profile
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(p.Name+" - "+p.Role)),
				TitleEl(g.Text(p.Name+" | Portfolio")),
				Link(Rel("stylesheet"), Href(StaticPrefix+"portfolio.css")),
				Script(Src(StaticPrefix+"portfolio.js"), Defer()),
			),
			Body(
				Div(
					Class("app"),
					Background(opts.SceneSeed),
					ProgressBar(),
					NavBar(),
					Main(
						Hero(p, opts.Resolver),
						About(p, site.Skills),
						Certificates(site.Certificates, opts.Resolver),
						Projects(site.Projects, opts.Resolver),
						Contact(p, site.Socials),
					),
				),
			),
		),
	)
}

// Background hosts the starfield canvas. It sits behind the content and never
// receives pointer events.
func Background(seed uint64) g.Node {
	return Div(
		Class("scene"),
		g.Attr("aria-hidden", "true"),
		Style("position:fixed;top:0;left:0;width:100%;height:100%;z-index:0;pointer-events:none"),
		Canvas(
			ID("scene-canvas"),
			g.Attr("data-scene-src", SceneURL+"?seed="+strconv.FormatUint(seed, 10)),
		),
	)
}

// ProgressBar renders the scroll progress bar at the top of the page.
func ProgressBar() g.Node {
	return Div(
		ID("scroll-progress"),
		Class("scroll-progress"),
		g.Attr("role", "progressbar"),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", "1"),
		g.Attr("aria-valuenow", "0"),
		Style(scroll.DefaultBar.Style(0)),
	)
}

func NavBar() g.Node {
	return Nav(
		Div(
			Class("container nav-inner"),
			A(
				Class("brand"),
				Href("#"+AnchorHome),
				icon(portfolio.IconCode, 28, "", "text-accent"),
				Span(g.Text("Portfolio.")),
			),
			Div(
				Class("nav-links"),
				g.Map(navItems, func(item navItem) g.Node {
					return A(Class("nav-link"), Href("#"+item.Anchor), g.Text(item.Label))
				}),
			),
		),
	)
}

func Hero(p portfolio.Profile, r assets.Resolver) g.Node {
	return Section(
		ID(AnchorHome),
		Class("section container hero"),
		Div(
			Class("hero-grid"),
			revealed(reveal.HeroText,
				H1(g.Text("Frontend "), Span(Class("accent"), g.Text(p.Role)), g.Text(".")),
				P(
					Class("hero-tagline"),
					g.Text("I'm "), Strong(g.Text(p.Name)), g.Text(" - "+p.Tagline),
				),
				Div(
					Class("hero-actions"),
					A(
						Href(assetURL(p.CV)),
						g.Attr("download", ""),
						Class("btn-primary"),
						icon(portfolio.IconDownload, 20, "", ""),
						g.Text(" Download CV"),
					),
					A(
						outbound(p.GitHub),
						Class("btn-outline"),
						icon(portfolio.IconGitHub, 20, "", ""),
						g.Text(" GitHub"),
					),
				),
			),
			revealed(reveal.HeroPhoto,
				Div(
					Class("profile-frame"),
					Div(Class("card-placeholder"), icon(portfolio.IconCode, 64, "", "placeholder-icon")),
					profilePhoto(p, r),
				),
			),
		),
	)
}

func profilePhoto(p portfolio.Profile, r assets.Resolver) g.Node {
	if r != nil && !r.Exists(p.Photo) {
		return nil
	}
	return Img(
		Class("profile-photo"),
		Src(assetURL(p.Photo)),
		Alt(p.Name),
		g.Attr("onerror", "this.style.display='none'"),
	)
}

func About(p portfolio.Profile, skills []portfolio.Skill) g.Node {
	return Section(
		ID(AnchorAbout),
		Class("section container"),
		revealed(reveal.About,
			H2(g.Text("About Me")),
			Div(
				Class("about-grid"),
				Div(
					Class("glass-card about-text"),
					g.Map(p.About, markdown),
				),
				Div(
					H3(Class("stack-title"), g.Text("Tech Stack")),
					Div(Class("skills-grid"), g.Map(skills, SkillItem)),
				),
			),
		),
	)
}

func Certificates(certs []portfolio.Certificate, r assets.Resolver) g.Node {
	return Section(
		ID(AnchorCertificates),
		Class("section container"),
		revealed(reveal.Section,
			H2(g.Text("Certificates")),
			Div(
				Class("card-grid"),
				g.Map(certs, func(c portfolio.Certificate) g.Node { return CertificateCard(c, r) }),
			),
		),
	)
}

func Projects(projects []portfolio.Project, r assets.Resolver) g.Node {
	return Section(
		ID(AnchorProjects),
		Class("section container"),
		revealed(reveal.Section,
			H2(g.Text("My Projects")),
			Div(
				Class("card-grid"),
				g.Map(projects, func(p portfolio.Project) g.Node { return ProjectCard(p, r) }),
			),
		),
	)
}

func Contact(p portfolio.Profile, socials []portfolio.SocialLink) g.Node {
	return Section(
		ID(AnchorContact),
		Class("section container contact"),
		revealed(reveal.Contact,
			Div(
				Class("contact-intro"),
				H2(g.Text("Get In Touch")),
				P(
					g.Text(p.Pitch), Br(),
					g.Text("You can reach me directly at "), Strong(g.Text(p.Phone)), g.Text(" or via email below."),
				),
			),
			A(
				outbound("mailto:"+p.Email),
				Class("btn-primary btn-mail"),
				icon(portfolio.IconMail, 24, "", ""),
				g.Text(" Gmail"),
			),
			Div(Class("socials"), g.Map(socials, SocialLink)),
			Footer(P(g.Textf("© %d %s.", p.Year, p.Name))),
		),
	)
}

// revealed wraps children in an element that plays the given entrance
// animation. The initial state is applied inline so the first paint matches.
func revealed(a reveal.Animation, children ...g.Node) g.Node {
	attrs := a.Attrs()
	nodes := make([]g.Node, 0, len(attrs)+2+len(children))
	nodes = append(nodes, Class("reveal"), Style(a.InitialStyle()))
	for _, kv := range attrs {
		nodes = append(nodes, g.Attr(kv[0], kv[1]))
	}
	nodes = append(nodes, children...)
	return Div(nodes...)
}

var md = goldmark.New()

// markdown renders one authored paragraph. goldmark's default renderer omits
// raw HTML from the source.
func markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return P(g.Text(src))
	}
	return g.Raw(buf.String())
}
