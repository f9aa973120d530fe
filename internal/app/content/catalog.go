// Package content holds the static records the landing page renders.
package content

import (
	"fmt"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

const (
	logo   = "/assets/static/eonics-logo.svg"
	thumb1 = "/assets/static/project-thumb-1.svg"
	thumb2 = "/assets/static/project-thumb-2.svg"
	thumb3 = "/assets/static/project-thumb-3.svg"

	demoVideo = "https://www.youtube.com/watch?v=K0espL8dKa4"
	demoPDF   = "https://en.wikipedia.org/wiki/Industrial_internet_of_things"
)

// Default returns the club's placeholder catalog.
func Default() models.Catalog {
	return models.Catalog{
		ClubName:     "EONICS",
		Tagline:      "The IoT and Hardware Club",
		About:        "EONICS is a student-driven technical club focused on IoT, hardware innovation, and software integration. We build, compete, learn, and innovate together.",
		Motto:        "Build. Compete. Learn. A premium space for hands-on hardware and clean software integration.",
		ContactEmail: "eonics@college.edu",
		Location:     "VIPs-TC",
		Logo:         logo,
		Highlights: []models.HeroHighlight{
			{Label: "Hands-on builds", Icon: "wrench"},
			{Label: "Competitions", Icon: "trophy"},
			{Label: "Workshops", Icon: "play"},
		},
		Ring: []models.RingItem{
			{ID: "iot", Label: "IoT", Href: "https://en.wikipedia.org/wiki/Internet_of_things", Icon: "wifi"},
			{ID: "embedded", Label: "Embedded", Href: "https://en.wikipedia.org/wiki/Embedded_system", Icon: "microchip"},
			{ID: "firmware", Label: "Firmware", Href: "https://en.wikipedia.org/wiki/Firmware", Icon: "cpu"},
			{ID: "radio", Label: "RF & Wireless", Href: "https://en.wikipedia.org/wiki/Radio-frequency_identification", Icon: "radio"},
			{ID: "cloud", Label: "Cloud", Href: "https://en.wikipedia.org/wiki/Cloud_computing", Icon: "cloud"},
			{ID: "data", Label: "Data", Href: "https://en.wikipedia.org/wiki/Data", Icon: "database"},
			{ID: "backend", Label: "Backend", Href: "https://en.wikipedia.org/wiki/Backend_(computing)", Icon: "server"},
			{ID: "security", Label: "Security", Href: "https://en.wikipedia.org/wiki/Computer_security", Icon: "shield"},
			{ID: "devtools", Label: "Dev Tools", Href: "https://en.wikipedia.org/wiki/Software_development", Icon: "terminal"},
			{ID: "code", Label: "Code", Href: "https://en.wikipedia.org/wiki/Computer_programming", Icon: "code"},
			{ID: "version", Label: "Git", Href: "https://en.wikipedia.org/wiki/Git", Icon: "git-branch"},
			{ID: "power", Label: "Power", Href: "https://en.wikipedia.org/wiki/Power_electronics", Icon: "zap"},
		},
		Events: []models.EventItem{
			{
				Title:       "IoT Bootcamp Week 1",
				Date:        "Feb 2026",
				Description: "Foundations of sensors, microcontrollers, and rapid prototyping. Bring your laptop and curiosity.",
			},
			{
				Title:       "Hardware Hacknight",
				Date:        "Mar 2026",
				Description: "Build fast: PCB basics, soldering, and debugging sprints. Teams ship mini-demos by midnight.",
			},
			{
				Title:       "Team Formation: Competition Season",
				Date:        "Apr 2026",
				Description: "Join focused squads for national competitions. Roles include embedded, CAD, cloud, and analytics.",
			},
		},
		Projects: []models.ProjectItem{
			{
				ID:          "p1",
				Title:       "GoldenTrace Sensor Grid",
				Description: "Distributed sensor nodes with a sleek dashboard and alerting.",
				Cover:       thumb1,
				Gallery:     []string{thumb1, thumb2, thumb3},
				Details:     "A modular IoT sensor grid built for rapid deployment. Features edge filtering, resilient messaging, and a minimal analytics panel.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
			{
				ID:          "p2",
				Title:       "AuricLab Hardware Rig",
				Description: "A compact testing bench for repeatable electronics experiments.",
				Cover:       thumb2,
				Gallery:     []string{thumb2, thumb1, thumb3},
				Details:     "A premium lab-in-a-box: regulated power, modular buses, and quick-swap fixtures. Designed for workshop sessions and competitions.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
			{
				ID:          "p3",
				Title:       "NeonNode City Network",
				Description: "Simulated city-scale telemetry with golden network routing visuals.",
				Cover:       thumb3,
				Gallery:     []string{thumb3, thumb1, thumb2},
				Details:     "A learning project that models real-world telemetry pipelines: device provisioning, event routing, storage, and visual diagnostics.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
			{
				ID:          "p4",
				Title:       "Smart Energy Monitor",
				Description: "Clamp-sensor energy tracking with anomaly detection.",
				Cover:       thumb1,
				Gallery:     []string{thumb1, thumb2, thumb3},
				Details:     "Track consumption patterns and spot anomalies. Focused on safe measurement design and clean firmware architecture.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
			{
				ID:          "p5",
				Title:       "RFID Access Prototype",
				Description: "Fast badge-based access control for labs & events.",
				Cover:       thumb2,
				Gallery:     []string{thumb2, thumb3, thumb1},
				Details:     "A prototype for event check-ins and lab entry. Includes logging, admin override, and expandable auth methods.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
			{
				ID:          "p6",
				Title:       "PCB Design Sprint",
				Description: "A set of micro PCBs designed for quick builds.",
				Cover:       thumb3,
				Gallery:     []string{thumb3, thumb2, thumb1},
				Details:     "A curated library of tiny PCBs: power, sensor breakouts, and connectors, built to accelerate club prototyping.",
				VideoURL:    demoVideo,
				PDFURL:      demoPDF,
			},
		},
		Competitions: []models.CompetitionItem{
			{
				ID:          "c1",
				Name:        "IoT Innovators Challenge",
				Description: "Build a connected prototype with a measurable impact.",
				LinkLabel:   "Visit Unstop",
				LinkURL:     "https://unstop.com/",
				Details: models.CompetitionDetails{
					RegistrationStart: "01 Feb 2026",
					RegistrationEnd:   "20 Feb 2026",
					CompetitionDate:   "01 Mar 2026",
					Theme:             "Connected Campus",
					Rules:             "Teams of 2–5. Demo + brief pitch deck. Must include at least one hardware sensor and a clear data flow.",
					Platform:          "Unstop",
				},
			},
			{
				ID:          "c2",
				Name:        "Hardware Design Sprint",
				Description: "Rapid PCB/embedded design under time constraints.",
				LinkLabel:   "Register",
				LinkURL:     "https://forms.gle/",
				Details: models.CompetitionDetails{
					RegistrationStart: "10 Mar 2026",
					RegistrationEnd:   "25 Mar 2026",
					CompetitionDate:   "05 Apr 2026",
					Theme:             "Minimal Footprint",
					Rules:             "Bring your tools. Evaluation on robustness, documentation, and testability.",
					Platform:          "Google Forms",
				},
			},
			{
				ID:          "c3",
				Name:        "Analytics for IoT",
				Description: "Turn raw telemetry into insights and alerts.",
				LinkLabel:   "Visit Link",
				LinkURL:     "https://unstop.com/",
				Details: models.CompetitionDetails{
					RegistrationStart: "15 Apr 2026",
					RegistrationEnd:   "30 Apr 2026",
					CompetitionDate:   "10 May 2026",
					Theme:             "Signal to Insight",
					Rules:             "Submit a notebook + short video. Clarity and reproducibility matter.",
					Platform:          "Unstop",
				},
			},
		},
		Training: []models.TrainingItem{
			{Title: "IoT Fundamentals", Category: models.CategoryIoT, Href: "https://en.wikipedia.org/wiki/Internet_of_things"},
			{Title: "Embedded C Crash Course", Category: models.CategoryHardware, Href: "https://en.wikipedia.org/wiki/C_(programming_language)"},
			{Title: "PCB Design Basics", Category: models.CategoryHardware, Href: "https://en.wikipedia.org/wiki/Printed_circuit_board"},
			{Title: "Cloud Telemetry Pipeline", Category: models.CategoryCloud, Href: "https://en.wikipedia.org/wiki/Cloud_computing"},
			{Title: "Data Analytics Starter", Category: models.CategoryDataAnalytics, Href: "https://en.wikipedia.org/wiki/Data_analysis"},
			{Title: "Full-Stack Dashboard", Category: models.CategorySoftware, Href: "https://en.wikipedia.org/wiki/Web_application"},
			{Title: "Sensors & Calibration", Category: models.CategoryIoT, Href: "https://en.wikipedia.org/wiki/Sensor"},
			{Title: "Version Control for Teams", Category: models.CategorySoftware, Href: "https://en.wikipedia.org/wiki/Version_control"},
		},
		Socials: []models.SocialLink{
			{Label: "LinkedIn", Icon: "linkedin", Href: "https://www.linkedin.com/"},
			{Label: "Instagram", Icon: "instagram", Href: "https://www.instagram.com/"},
			{Label: "GitHub", Icon: "github", Href: "https://github.com/"},
		},
	}
}

// Validate checks the invariants the page components rely on.
func Validate(c models.Catalog) error {
	if err := uniqueIDs("ring", len(c.Ring), func(i int) string { return c.Ring[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("project", len(c.Projects), func(i int) string { return c.Projects[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("competition", len(c.Competitions), func(i int) string { return c.Competitions[i].ID }); err != nil {
		return err
	}

	for _, r := range c.Ring {
		if r.Href == "" {
			return fmt.Errorf("%w: ring item %q has no link", models.ErrInvalidCatalog, r.ID)
		}
	}
	for _, p := range c.Projects {
		if len(p.Gallery) == 0 {
			return fmt.Errorf("%w: project %q has an empty gallery", models.ErrInvalidCatalog, p.ID)
		}
	}
	for _, comp := range c.Competitions {
		if comp.LinkURL == "" {
			return fmt.Errorf("%w: competition %q has no link", models.ErrInvalidCatalog, comp.ID)
		}
	}
	for _, t := range c.Training {
		if !t.Category.Valid() {
			return fmt.Errorf("%w: training item %q has unknown category %q", models.ErrInvalidCatalog, t.Title, t.Category)
		}
	}

	return nil
}

func uniqueIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%w: %s #%d has an empty id", models.ErrInvalidCatalog, kind, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: duplicate %s id %q", models.ErrInvalidCatalog, kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
