package main

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RenderPage writes the full document for c to w.
func RenderPage(w io.Writer, c Content) error {
	return BuildPage(c).Render(w)
}

// BuildPage returns the document tree for the single page. The tree depends
// only on c, so equal content always renders to identical bytes.
func BuildPage(c Content) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Meta(h.Name("description"), h.Content(c.HeroTagline)),
				g.El("title", g.Text(c.Title)),
				h.Link(h.Rel("stylesheet"), h.Href("static/site.css")),
				h.Script(g.Raw(`document.documentElement.classList.add("js")`)),
				h.Script(h.Src("static/motion.js"), h.Defer()),
			),
			h.Body(
				h.Main(h.Class("page"),
					navBar(c),
					heroSection(c),
					aboutSection(c),
					skillsSection(c),
					projectsSection(c),
					contactSection(c),
					footer(c),
				),
			),
		),
	)
}

func span(class string, children ...g.Node) g.Node {
	if class == "" {
		return g.El("span", children...)
	}
	return g.El("span", append([]g.Node{h.Class(class)}, children...)...)
}

func navBar(c Content) g.Node {
	return h.Nav(h.Class("nav glass"), NavVariant.Attrs(TriggerLoad, 0),
		h.Div(h.Class("nav-inner"),
			h.Div(h.Class("brand hover-grow"),
				IconCode2.SVG(28, "accent"),
				span("brand-name", g.Text(c.Brand)),
			),
			h.Div(h.Class("nav-links"),
				g.Map(c.NavItems, func(label string) g.Node {
					return h.A(h.Class("nav-link hover-grow"), h.Href("#"+anchorFor(label)), g.Text(label))
				}),
			),
		),
	)
}

func heroSection(c Content) g.Node {
	children := []func() g.Node{
		func() g.Node {
			return h.Div(h.Class("hero-icon"), IconSparkles.SVG(40, "accent float"))
		},
		func() g.Node {
			return h.H1(h.Class("hero-title"), g.Text(c.HeroTitle), span("gradient-text", g.Text(" "+c.HeroAccent)))
		},
		func() g.Node {
			return h.P(h.Class("hero-tagline"), g.Text(c.HeroTagline))
		},
		func() g.Node {
			return h.Div(h.Class("hero-actions"),
				h.A(h.Class("button button-primary glow hover-grow"), h.Href("#"+SectionProjects),
					span("", g.Text("View Projects")), IconRocket.SVG(20, ""),
				),
				h.A(h.Class("button button-ghost glass hover-grow"), h.Href("#"+SectionContact), g.Text("Get In Touch")),
			)
		},
		func() g.Node {
			return h.Div(h.Class("hero-social"),
				g.Map(c.Social, func(l SocialLink) g.Node {
					return h.A(h.Class("social-link hover-tilt"), h.Href(l.Href), h.Aria("label", l.Network), l.Icon.SVG(28, ""))
				}),
			)
		},
	}

	items := make(g.Group, len(children))
	for i, child := range children {
		items[i] = h.Div(h.Class("hero-item"), ItemVariant.Attrs(TriggerLoad, ContainerVariant.ChildDelay(i)), child())
	}

	return h.Section(h.Class("hero"),
		h.Div(h.Class("hero-inner"), ContainerVariant.Attrs(TriggerLoad, 0), items),
	)
}

func aboutSection(c Content) g.Node {
	return h.Section(h.ID(SectionAbout), h.Class("section"),
		h.Div(h.Class("container narrow"),
			h.Div(RevealVariant.Attrs(TriggerInView, 0),
				h.H2(h.Class("section-title gradient-text"), g.Text(c.AboutHeading)),
				h.Div(h.Class("glass panel"),
					h.P(h.Class("about-text"), g.Text(c.About)),
				),
			),
		),
	)
}

// staggered wraps cards in an in-view container whose children follow the
// item preset, each delayed by its position.
func staggered(class string, cards []g.Node) g.Node {
	items := make(g.Group, len(cards))
	for i, card := range cards {
		items[i] = h.Div(h.Class("grid-cell"), ItemVariant.Attrs(TriggerChild, ContainerVariant.ChildDelay(i)), card)
	}
	return h.Div(h.Class("grid "+class), ContainerVariant.Attrs(TriggerInView, 0), items)
}

func skillsSection(c Content) g.Node {
	cards := make([]g.Node, len(c.Skills))
	for i, s := range c.Skills {
		cards[i] = h.Div(h.Class("card skill-card glass hover-lift"),
			s.Icon.SVG(36, "accent"),
			h.H3(g.Text(s.Name)),
			h.Ul(h.Class("skill-items"),
				g.Map(s.Items, func(item string) g.Node {
					return h.Li(g.Text("• " + item))
				}),
			),
		)
	}

	return h.Section(h.ID(SectionSkills), h.Class("section tint-down"),
		h.Div(h.Class("container"),
			h.H2(h.Class("section-title gradient-text"), FadeVariant.Attrs(TriggerInView, 0), g.Text(c.SkillsHeading)),
			staggered("skills-grid", cards),
		),
	)
}

func projectsSection(c Content) g.Node {
	cards := make([]g.Node, len(c.Projects))
	for i, p := range c.Projects {
		cards[i] = h.Div(h.Class("card project-card glass hover-lift-more"),
			p.Icon.SVG(40, "accent"),
			h.H3(g.Text(p.Title)),
			h.P(h.Class("project-description"), g.Text(p.Description)),
			h.Div(h.Class("tags"),
				g.Map(p.Tech, func(t string) g.Node {
					return span("tag", g.Text(t))
				}),
			),
		)
	}

	return h.Section(h.ID(SectionProjects), h.Class("section"),
		h.Div(h.Class("container"),
			h.H2(h.Class("section-title gradient-text"), FadeVariant.Attrs(TriggerInView, 0), g.Text(c.ProjectsHeading)),
			staggered("projects-grid", cards),
		),
	)
}

func contactSection(c Content) g.Node {
	return h.Section(h.ID(SectionContact), h.Class("section tint-up"),
		h.Div(h.Class("container narrow center"),
			h.Div(RevealVariant.Attrs(TriggerInView, 0),
				h.H2(h.Class("section-title gradient-text"), g.Text(c.ContactHeading)),
				h.P(h.Class("contact-blurb"), g.Text(c.ContactBlurb)),
				h.A(h.Class("button button-primary button-large glow hover-grow"), h.Href("mailto:"+c.Email),
					IconMail.SVG(24, ""),
					span("contact-address", g.Text(c.Email)),
				),
			),
		),
	)
}

func footer(c Content) g.Node {
	return h.Footer(h.Class("footer"),
		h.P(g.Textf("© %d %s", c.Year, c.Copyright)),
	)
}
