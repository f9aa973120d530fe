package models

// RingItem is one clickable icon of the hero ring.
type RingItem struct {
	ID    string
	Label string
	Href  string
	Icon  string
}

type EventItem struct {
	Title       string
	Date        string
	Description string
}

type ProjectItem struct {
	ID          string
	Title       string
	Description string
	Cover       string
	Gallery     []string
	Details     string
	VideoURL    string // optional
	PDFURL      string // optional
}

type CompetitionDetails struct {
	RegistrationStart string
	RegistrationEnd   string
	CompetitionDate   string
	Theme             string
	Rules             string
	Platform          string
}

type CompetitionItem struct {
	ID          string
	Name        string
	Description string
	LinkLabel   string
	LinkURL     string
	Details     CompetitionDetails
}

type TrainingCategory string

const (
	CategoryIoT           TrainingCategory = "IoT"
	CategoryHardware      TrainingCategory = "Hardware"
	CategoryCloud         TrainingCategory = "Cloud"
	CategoryDataAnalytics TrainingCategory = "Data Analytics"
	CategorySoftware      TrainingCategory = "Software"
)

var TrainingCategories = []TrainingCategory{
	CategoryIoT,
	CategoryHardware,
	CategoryCloud,
	CategoryDataAnalytics,
	CategorySoftware,
}

func (c TrainingCategory) Valid() bool {
	for _, known := range TrainingCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Icon returns the lucide icon name used for the category.
func (c TrainingCategory) Icon() string {
	switch c {
	case CategoryIoT:
		return "circuit-board"
	case CategoryHardware:
		return "cpu"
	case CategoryCloud:
		return "cloud"
	case CategoryDataAnalytics:
		return "database"
	case CategorySoftware:
		return "code-2"
	default:
		return "book-open"
	}
}

type TrainingItem struct {
	Title    string
	Category TrainingCategory
	Href     string // optional
}

type SocialLink struct {
	Label string
	Icon  string
	Href  string
}

type HeroHighlight struct {
	Label string
	Icon  string
}

// Catalog is the static content the landing page is assembled from.
type Catalog struct {
	ClubName     string
	Tagline      string
	About        string
	Motto        string
	ContactEmail string
	Location     string
	Logo         string
	Highlights   []HeroHighlight
	Ring         []RingItem
	Events       []EventItem
	Projects     []ProjectItem
	Competitions []CompetitionItem
	Training     []TrainingItem
	Socials      []SocialLink
}
