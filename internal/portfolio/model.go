// Package portfolio holds the records rendered by the page and the content
// authored for it.
package portfolio

// Certificate is a completed course or certification shown in the
// certificates grid.
type Certificate struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Project is a card in the projects grid. Color is the accent used for the
// thumbnail gradient and the fallback icon.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Color       string   `json:"color"`
	Link        string   `json:"link"`
	Image       string   `json:"image"`
}

// Icon names a glyph from the inline icon set.
type Icon string

const (
	IconGitHub    Icon = "github"
	IconFacebook  Icon = "facebook"
	IconInstagram Icon = "instagram"
	IconMail      Icon = "mail"
	IconCode      Icon = "code"
	IconTerminal  Icon = "terminal"
	IconDatabase  Icon = "database"
	IconCPU       Icon = "cpu"
	IconDownload  Icon = "download"
	IconAward     Icon = "award"
)

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon Icon   `json:"icon"`
}

type Skill struct {
	Icon   Icon   `json:"icon"`
	Title  string `json:"title"`
	Skills string `json:"skills"`
}

// Profile is the owner of the page. About paragraphs are Markdown.
type Profile struct {
	Name    string
	Role    string
	Tagline string
	Photo   string
	CV      string
	GitHub  string
	Email   string
	Phone   string
	Pitch   string
	About   []string
	Year    int
}

// Site is everything the page composes.
type Site struct {
	Profile      Profile
	Skills       []Skill
	Certificates []Certificate
	Projects     []Project
	Socials      []SocialLink
}

// Images returns every image path referenced by the site in page order.
func (s Site) Images() []string {
	paths := make([]string, 0, 1+len(s.Certificates)+len(s.Projects))
	if s.Profile.Photo != "" {
		paths = append(paths, s.Profile.Photo)
	}
	for _, c := range s.Certificates {
		if c.Image != "" {
			paths = append(paths, c.Image)
		}
	}
	for _, p := range s.Projects {
		if p.Image != "" {
			paths = append(paths, p.Image)
		}
	}
	return paths
}
