package domain

// SiteSettings is the site-wide display configuration persisted as a small
// JSON document.
type SiteSettings struct {
	HeroImage   string `json:"hero_image"`
	HeroOverlay string `json:"hero_overlay"`
}

// DefaultSiteSettings is substituted whenever the settings document cannot
// be read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		HeroImage:   "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&w=1600&q=80",
		HeroOverlay: "rgba(24, 16, 12, 0.42)",
	}
}
