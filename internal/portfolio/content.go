package portfolio

var (
	aboutJourney = `I started my journey in web development with a curiosity for how things work on the internet.
Fast forward to today, and I've had the privilege of building software for various clients and
collaborating with talented people.`

	aboutFocus = `My main focus these days is building accessible, inclusive products and digital experiences
for a variety of clients. I enjoy the intersection of design and engineering.`

	contactPitch = `I am actively seeking new opportunities as a Web Developer. If you are looking for a dedicated
team player to contribute to your company's success, I would love to hear from you.`
)

// Default returns the authored content of the page. Each call returns fresh
// slices so callers cannot alter the shared content.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:    "Hoang Son Lam",
			Role:    "Web Developer",
			Tagline: "a Frontend Web Developer focused on creating immersive, accessible, and performant web applications.",
			Photo:   "59991.jpg",
			CV:      "lamhoangson.pdf",
			GitHub:  "https://github.com/HSL-2003",
			Email:   "Hoangsonlam97@gmail.com",
			Phone:   "(+84) 899 901 359",
			Pitch:   contactPitch,
			About:   []string{aboutJourney, aboutFocus},
			Year:    2026,
		},
		Skills: []Skill{
			{Icon: IconTerminal, Title: "Frontend", Skills: "React, Tailwind, Three.js"},
			{Icon: IconDatabase, Title: "Backend", Skills: "MySQL Server,ASP.NET Core"},
			{Icon: IconCPU, Title: "Tools", Skills: "Git, Docker, Figma"},
		},
		Certificates: []Certificate{
			{
				Title:       "Academic Skills For University Success",
				Issuer:      "Coursera",
				Date:        "2022",
				Description: "Developed academic skills including critical thinking, academic writing, research methods, and effective study strategies for university-level learning.",
				Image:       "co1.jpg",
			},
			{
				Title:       "Project Management Principles and Practices",
				Issuer:      "Coursera",
				Date:        "2024",
				Description: "Learned core project management concepts such as project planning, scheduling, risk management, teamwork, and stakeholder communication.",
				Image:       "co2.jpg",
			},
			{
				Title:       "User Experience Research and Design",
				Issuer:      "Coursera",
				Date:        "2024",
				Description: "Gained knowledge in UX research, user-centered design, usability testing, wireframing, and improving user experience through data-driven design decisions.",
				Image:       "co3.jpg",
			},
			{
				Title:       "CertNexus Certified Ethical Emerging Technologist",
				Issuer:      "Coursera",
				Date:        "2023",
				Description: "Understood ethical issues in emerging technologies, including data privacy, cybersecurity basics, AI ethics, and responsible technology use.",
				Image:       "co4.jpg",
			},
			{
				Title:       "Basic Of Web Development & Coding",
				Issuer:      "Coursera",
				Date:        "2023",
				Description: "Learned the fundamentals of web development, including HTML, CSS, basic JavaScript, and core concepts of building simple and responsive websites.",
				Image:       "co5.jpg",
			},
			{
				Title:       "Computer Communication",
				Issuer:      "Coursera",
				Date:        "2022",
				Description: "Studied computer communication concepts such as data transmission, network models, protocols, and basic networking principles.",
				Image:       "co6.jpg",
			},
			{
				Title:       "Software Development Lifecycle",
				Issuer:      "Coursera",
				Date:        "2023",
				Description: "Learned the full software development lifecycle, including requirement analysis, design, development, testing, deployment, and maintenance.",
				Image:       "co8.jpg",
			},
		},
		Projects: []Project{
			{
				Title:       "Bilco Management System",
				Description: "A Web Application for Bilco Management System",
				Tags:        []string{"React", "Three.js", ".Net Core"},
				Color:       "#22d3ee",
				Link:        "https://bilco-manage-tna5.vercel.app/",
				Image:       "bilco.jpg",
			},
			{
				Title:       "Ohmlab Electronics Lab",
				Description: "A Web Application for Ohmlab Electronics Lab to manage the lab and schedule",
				Tags:        []string{"Next.js", "Tailwind CSS"},
				Color:       "#a78bfa",
				Link:        "https://ohm-lab-management-system.vercel.app/",
				Image:       "ohmlab.jpg",
			},
		},
		Socials: []SocialLink{
			{Name: "GitHub", URL: "https://github.com/HSL-2003", Icon: IconGitHub},
			{Name: "Facebook", URL: "https://www.facebook.com/hoang.son.lam.446973/", Icon: IconFacebook},
			{Name: "Instagram", URL: "https://www.instagram.com/hslaaam/", Icon: IconInstagram},
		},
	}
}
