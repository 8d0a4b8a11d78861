package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/HSL-2003/portfolio/internal/analytics"
)

func simplePage(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("robots"), Content("noindex")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href(StaticPrefix+"portfolio.css")),
			),
			Body(Main(Class("section container"), g.Group(body))),
		),
	)
}

// Privacy explains what the visit counter stores.
func Privacy() g.Node {
	return simplePage("Privacy Policy",
		H2(g.Text("Privacy Policy")),
		Div(
			Class("glass-card"),
			P(g.Text("This site counts page views to learn which pages are read. It stores a salted, truncated hash of your IP address, your browser's user agent, the page path and the time of the visit.")),
			P(g.Text("Raw IP addresses are never stored. The hashing salt changes whenever the server restarts, so visits cannot be linked across restarts.")),
			P(g.Text("Requests sent with the Do Not Track header are not counted. Records older than the retention window are deleted automatically.")),
			P(A(Href("/"), g.Text("Back to the portfolio"))),
		),
	)
}

// AdminLogin renders the admin login form, with an optional error message.
func AdminLogin(errMsg string) g.Node {
	return simplePage("Admin Login",
		H2(g.Text("Admin Login")),
		g.If(errMsg != "", P(Class("form-error"), g.Text(errMsg))),
		Form(
			Class("glass-card"),
			Method("post"),
			Action("/admin/login"),
			Label(For("username"), g.Text("Username")),
			Input(Type("text"), ID("username"), Name("username"), g.Attr("autocomplete", "username"), Required()),
			Label(For("password"), g.Text("Password")),
			Input(Type("password"), ID("password"), Name("password"), g.Attr("autocomplete", "current-password"), Required()),
			Button(Type("submit"), Class("btn-primary"), g.Text("Sign in")),
		),
	)
}

// AdminDashboard renders visit statistics.
func AdminDashboard(st analytics.Stats) g.Node {
	count := func(label string, n int64) g.Node {
		return Div(Class("glass-card stat"), H4(g.Text(label)), P(Class("stat-value"), g.Text(strconv.FormatInt(n, 10))))
	}
	return simplePage("Dashboard",
		H2(g.Text("Visits")),
		Div(
			Class("skills-grid"),
			count("Total", st.TotalVisits),
			count("Unique", st.UniqueVisitors),
			count("Today", st.VisitsToday),
			count("Last 7 days", st.VisitsThisWeek),
		),
		H3(g.Text("Top pages")),
		Table(
			Class("stats-table top-paths"),
			THead(Tr(Th(g.Text("Path")), Th(g.Text("Visits")))),
			TBody(g.Map(st.TopPaths, func(pc analytics.PathCount) g.Node {
				return Tr(Td(g.Text(pc.Path)), Td(g.Text(strconv.FormatInt(pc.Visits, 10))))
			})),
		),
		H3(g.Text("Recent visits")),
		Table(
			Class("stats-table recent-visits"),
			THead(Tr(Th(g.Text("When")), Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")))),
			TBody(g.Map(st.RecentVisits, func(v analytics.Visit) g.Node {
				return Tr(
					Td(g.Text(v.Timestamp.Format("2006-01-02 15:04"))),
					Td(g.Text(v.HashedIP)),
					Td(g.Text(v.Path)),
					Td(g.Text(v.UserAgent)),
				)
			})),
		),
		P(A(Href("/admin/logout"), g.Text("Sign out"))),
	)
}
