package models

import "github.com/a-h/templ"

// Session is the demo account state of one page view.
type Session struct {
	Authenticated bool
	DisplayName   string
}

type NavItem struct {
	ID    string
	Label string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title           string
	ViewToken       string
	Session         Session
	Nav             Navigation
	BackToTopOffset int
	Year            int
	Content         templ.Component
}

// SectionIDs lists the in-page anchors in page order.
var SectionIDs = []string{"home", "events", "projects", "competitions", "training", "contact"}

var MainNav = Navigation{
	Items: []NavItem{
		{ID: "home", Label: "Home"},
		{ID: "events", Label: "Events"},
		{ID: "projects", Label: "Projects"},
		{ID: "competitions", Label: "Competitions"},
		{ID: "training", Label: "Training"},
		{ID: "contact", Label: "Contact"},
	},
}
