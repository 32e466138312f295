// Package sitecontent defines the editable site content document: ten named
// sections holding the copy, images and links of every public page.
package sitecontent

// Shared small records embedded in sections.

// Step is one entry in a numbered process walkthrough.
type Step struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MenuItem is a navigation link.
type MenuItem struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	IsExternal bool   `json:"isExternal"`
}

// ServiceItem is one card in a services grid.
type ServiceItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Location string `json:"location"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// HomeSection is the landing page copy.
type HomeSection struct {
	HeroTitle         string        `json:"heroTitle"`
	HeroSubtitle      string        `json:"heroSubtitle"`
	HeroImage         string        `json:"heroImage"`
	HeroCTAText       string        `json:"heroCtaText"`
	HeroCTALink       string        `json:"heroCtaLink"`
	IntroHeading      string        `json:"introHeading"`
	IntroText         string        `json:"introText"`
	Services          []ServiceItem `json:"services"`
	Testimonials      []Testimonial `json:"testimonials"`
	ShowNeighborhoods bool          `json:"showNeighborhoods"`
	ShowBlogPreview   bool          `json:"showBlogPreview"`
}

// AboutSection is the agent bio page.
type AboutSection struct {
	Heading          string   `json:"heading"`
	Subheading       string   `json:"subheading"`
	Bio              string   `json:"bio"`
	PortraitImage    string   `json:"portraitImage"`
	YearsExperience  string   `json:"yearsExperience"`
	Credentials      []string `json:"credentials"`
	MissionStatement string   `json:"missionStatement"`
}

// BuySection is the buyer process page.
type BuySection struct {
	Heading   string `json:"heading"`
	Intro     string `json:"intro"`
	HeroImage string `json:"heroImage"`
	Steps     []Step `json:"steps"`
	FAQs      []FAQ  `json:"faqs"`
	CTAText   string `json:"ctaText"`
	CTALink   string `json:"ctaLink"`
}

// SellSection is the seller process page.
type SellSection struct {
	Heading         string   `json:"heading"`
	Intro           string   `json:"intro"`
	HeroImage       string   `json:"heroImage"`
	Steps           []Step   `json:"steps"`
	MarketingPoints []string `json:"marketingPoints"`
	FAQs            []FAQ    `json:"faqs"`
	CTAText         string   `json:"ctaText"`
	CTALink         string   `json:"ctaLink"`
}

// NeighborhoodsSection frames the neighborhood index page.
type NeighborhoodsSection struct {
	Heading     string `json:"heading"`
	Intro       string `json:"intro"`
	MapEmbedURL string `json:"mapEmbedUrl"`
	CTAText     string `json:"ctaText"`
}

// CalculatorsSection frames the calculators page.
type CalculatorsSection struct {
	Heading    string `json:"heading"`
	Intro      string `json:"intro"`
	Disclaimer string `json:"disclaimer"`
}

// ContactSection is the contact page copy and details.
type ContactSection struct {
	Heading            string       `json:"heading"`
	Intro              string       `json:"intro"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email"`
	Address            string       `json:"address"`
	OfficeHours        string       `json:"officeHours"`
	FormSuccessMessage string       `json:"formSuccessMessage"`
	SocialLinks        []SocialLink `json:"socialLinks"`
}

// HeaderSection is the shared site header.
type HeaderSection struct {
	SiteName  string     `json:"siteName"`
	Tagline   string     `json:"tagline"`
	Logo      string     `json:"logo"`
	MenuItems []MenuItem `json:"menuItems"`
	ShowPhone bool       `json:"showPhone"`
	Phone     string     `json:"phone"`
}

// FooterSection is the shared site footer.
type FooterSection struct {
	AboutBlurb       string       `json:"aboutBlurb"`
	Copyright        string       `json:"copyright"`
	MenuItems        []MenuItem   `json:"menuItems"`
	SocialLinks      []SocialLink `json:"socialLinks"`
	DisclaimerText   string       `json:"disclaimerText"`
	BrokerageName    string       `json:"brokerageName"`
	BrokerageLogo    string       `json:"brokerageLogo"`
	ShowEqualHousing bool         `json:"showEqualHousing"`
}

// ResourcesSection frames the downloadable guides page.
type ResourcesSection struct {
	Heading          string `json:"heading"`
	Intro            string `json:"intro"`
	EmailGateMessage string `json:"emailGateMessage"`
	EmptyStateText   string `json:"emptyStateText"`
}

// SiteContent is the singleton content document.
type SiteContent struct {
	Home          HomeSection          `json:"home"`
	About         AboutSection         `json:"about"`
	Buy           BuySection           `json:"buy"`
	Sell          SellSection          `json:"sell"`
	Neighborhoods NeighborhoodsSection `json:"neighborhoods"`
	Calculators   CalculatorsSection   `json:"calculators"`
	Contact       ContactSection       `json:"contact"`
	Header        HeaderSection        `json:"header"`
	Footer        FooterSection        `json:"footer"`
	Resources     ResourcesSection     `json:"resources"`
}
