package main

import (
	"errors"
	"fmt"
	"strings"
)

// Section identifiers double as the in-page anchor targets.
const (
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

var sectionIDs = []string{SectionAbout, SectionSkills, SectionProjects, SectionContact}

var (
	ErrUnknownIcon    = errors.New("unknown icon")
	ErrUnknownSection = errors.New("nav item has no matching section")
)

// SkillCategory is one card in the skills grid.
type SkillCategory struct {
	Name  string
	Icon  Icon
	Items []string
}

// Project is one card in the projects grid.
type Project struct {
	Title       string
	Description string
	Tech        []string
	Icon        Icon
}

// SocialLink is a hero icon link. Href is a placeholder until real profiles exist.
type SocialLink struct {
	Network string
	Icon    Icon
	Href    string
}

// Content is everything the page renders. It is the only input to BuildPage.
type Content struct {
	Title string
	Brand string

	NavItems []string

	HeroTitle   string
	HeroAccent  string
	HeroTagline string
	Social      []SocialLink

	AboutHeading string
	About        string

	SkillsHeading string
	Skills        []SkillCategory

	ProjectsHeading string
	Projects        []Project

	ContactHeading string
	ContactBlurb   string
	Email          string

	Year      int
	Copyright string
}

var skills = []SkillCategory{
	{Name: "Frontend", Icon: IconLayout, Items: []string{"React", "Next.js", "TypeScript", "Tailwind CSS"}},
	{Name: "Backend", Icon: IconServer, Items: []string{"Node.js", "Python", "Express", "FastAPI"}},
	{Name: "Database", Icon: IconDatabase, Items: []string{"PostgreSQL", "MongoDB", "Redis", "Prisma"}},
	{Name: "DevOps", Icon: IconTerminal, Items: []string{"Docker", "AWS", "CI/CD", "Kubernetes"}},
}

var projects = []Project{
	{
		Title:       "E-Commerce Platform",
		Description: "Full-stack marketplace with real-time inventory, payment integration, and admin dashboard",
		Tech:        []string{"Next.js", "Node.js", "PostgreSQL", "Stripe"},
		Icon:        IconGlobe,
	},
	{
		Title:       "AI Analytics Dashboard",
		Description: "Real-time data visualization platform with ML-powered insights and predictive analytics",
		Tech:        []string{"React", "Python", "TensorFlow", "Redis"},
		Icon:        IconCPU,
	},
	{
		Title:       "Social Media API",
		Description: "Scalable RESTful API serving 100k+ users with authentication and real-time features",
		Tech:        []string{"Express", "MongoDB", "Socket.io", "Docker"},
		Icon:        IconZap,
	},
}

var social = []SocialLink{
	{Network: "GitHub", Icon: IconGithub, Href: "#"},
	{Network: "LinkedIn", Icon: IconLinkedin, Href: "#"},
	{Network: "Twitter", Icon: IconTwitter, Href: "#"},
}

const aboutMe = `I'm a passionate fullstack developer with 5+ years of experience building robust, scalable applications. I specialize in creating end-to-end solutions that combine beautiful user interfaces with powerful backend systems. From concept to deployment, I bring ideas to life with clean code and modern architecture.`

// DefaultContent returns a fresh copy of the site content. Callers may modify
// the result without affecting later calls.
func DefaultContent() Content {
	return Content{
		Title:           "DevPortfolio | Fullstack Developer",
		Brand:           "DevPortfolio",
		NavItems:        []string{"About", "Skills", "Projects", "Contact"},
		HeroTitle:       "Fullstack",
		HeroAccent:      "Developer",
		HeroTagline:     "Crafting seamless digital experiences from database to deployment. Building scalable, modern applications with cutting-edge technologies.",
		Social:          append([]SocialLink(nil), social...),
		AboutHeading:    "About Me",
		About:           aboutMe,
		SkillsHeading:   "Technical Skills",
		Skills:          copySkills(skills),
		ProjectsHeading: "Featured Projects",
		Projects:        copyProjects(projects),
		ContactHeading:  "Let's Work Together",
		ContactBlurb:    "Have a project in mind? Let's create something amazing together.",
		Email:           "hello@example.com",
		Year:            2025,
		Copyright:       "Fullstack Developer. Crafted with passion and code.",
	}
}

func copySkills(in []SkillCategory) []SkillCategory {
	out := make([]SkillCategory, len(in))
	for i, s := range in {
		s.Items = append([]string(nil), s.Items...)
		out[i] = s
	}
	return out
}

func copyProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// anchorFor maps a nav label to the id of the section it scrolls to.
func anchorFor(label string) string {
	return strings.ToLower(label)
}

// Validate checks that every icon resolves and every nav item targets a section.
func (c Content) Validate() error {
	for _, item := range c.NavItems {
		if !hasSection(anchorFor(item)) {
			return fmt.Errorf("%w: %q", ErrUnknownSection, item)
		}
	}
	for _, s := range c.Skills {
		if !s.Icon.Known() {
			return fmt.Errorf("skill %q: %w %q", s.Name, ErrUnknownIcon, s.Icon)
		}
	}
	for _, p := range c.Projects {
		if !p.Icon.Known() {
			return fmt.Errorf("project %q: %w %q", p.Title, ErrUnknownIcon, p.Icon)
		}
	}
	for _, l := range c.Social {
		if !l.Icon.Known() {
			return fmt.Errorf("social link %q: %w %q", l.Network, ErrUnknownIcon, l.Icon)
		}
	}
	if c.Email == "" {
		return errors.New("contact email is empty")
	}
	return nil
}

func hasSection(id string) bool {
	for _, s := range sectionIDs {
		if s == id {
			return true
		}
	}
	return false
}
