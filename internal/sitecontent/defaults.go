package sitecontent

// Default returns the content document every field pre-populated. The
// singleton is created from these values on first read.
func Default() SiteContent {
	return SiteContent{
		Home: HomeSection{
			HeroTitle:    "Find Your Place in the Valley",
			HeroSubtitle: "Buying, selling, or relocating — local expertise from a full-time agent who lives here.",
			HeroImage:    "/images/hero-valley.jpg",
			HeroCTAText:  "Schedule a Consultation",
			HeroCTALink:  "/contact",
			IntroHeading: "A Different Kind of Real Estate Experience",
			IntroText:    "Every transaction is personal. I work with a small number of clients at a time so each one gets my full attention from the first showing to closing day.",
			Services: []ServiceItem{
				{Icon: "home", Title: "Buyer Representation", Description: "From pre-approval to keys in hand, a guided search built around your budget and timeline."},
				{Icon: "tag", Title: "Listing & Marketing", Description: "Professional photography, staging advice and pricing strategy that gets homes sold."},
				{Icon: "map", Title: "Relocation", Description: "Moving to the Valley? Neighborhood tours, school guidance and a soft landing."},
			},
			Testimonials: []Testimonial{
				{Quote: "She sold our home in nine days, over asking. We couldn't have asked for more.", Author: "The Raymonds", Location: "Gilbert"},
				{Quote: "Patient, honest, and always available. First-time buying made easy.", Author: "D. Okafor", Location: "Tempe"},
			},
			ShowNeighborhoods: true,
			ShowBlogPreview:   true,
		},
		About: AboutSection{
			Heading:          "About Me",
			Subheading:       "Your neighbor first, your agent second.",
			Bio:              "I've called the East Valley home for over twenty years. After a decade in residential lending I moved to the sales side, and I've since helped more than three hundred families buy or sell across Maricopa County.",
			PortraitImage:    "/images/agent-portrait.jpg",
			YearsExperience:  "15+",
			Credentials:      []string{"Licensed REALTOR®", "Certified Negotiation Expert", "Seller Representative Specialist"},
			MissionStatement: "No pressure, no jargon — just straight answers and steady guidance through the biggest purchase of your life.",
		},
		Buy: BuySection{
			Heading:   "Buying a Home",
			Intro:     "The market moves fast, but the process doesn't have to be stressful. Here's how we'll work together.",
			HeroImage: "/images/buy-hero.jpg",
			Steps: []Step{
				{Icon: "clipboard", Title: "Get Pre-Approved", Text: "Talk to a lender before you tour. Knowing your number keeps the search focused and your offer strong."},
				{Icon: "search", Title: "Tour Homes", Text: "We'll build a shortlist together and see homes on your schedule, often before they hit the portals."},
				{Icon: "file-text", Title: "Make an Offer", Text: "Pricing data and negotiation experience go into every offer we write."},
				{Icon: "check-circle", Title: "Inspect & Close", Text: "Inspections, appraisal, final walkthrough — I manage the deadlines so nothing slips."},
			},
			FAQs: []FAQ{
				{Question: "How much do I need for a down payment?", Answer: "Many buyers put down far less than 20%. Conventional loans start at 3% down, and several Arizona programs assist with closing costs."},
				{Question: "What does it cost to work with a buyer's agent?", Answer: "Compensation is negotiated up front and disclosed in writing before we tour a single home."},
			},
			CTAText: "Start Your Search",
			CTALink: "/contact",
		},
		Sell: SellSection{
			Heading:   "Selling Your Home",
			Intro:     "Pricing, preparation and exposure — get all three right and the market does the rest.",
			HeroImage: "/images/sell-hero.jpg",
			Steps: []Step{
				{Icon: "trending-up", Title: "Pricing Strategy", Text: "A comparative market analysis grounded in closed sales, not wishful thinking."},
				{Icon: "camera", Title: "Prep & Launch", Text: "Staging guidance, professional photos and a coordinated launch across the MLS and portals."},
				{Icon: "users", Title: "Showings & Offers", Text: "Qualified buyers only. Every offer reviewed side by side with net sheets."},
				{Icon: "key", Title: "Escrow to Close", Text: "Repair negotiations, appraisal issues and deadlines handled for you."},
			},
			MarketingPoints: []string{
				"Professional photography and floor plans on every listing",
				"Featured placement on the major search portals",
				"Email campaign to my buyer and broker network",
			},
			FAQs: []FAQ{
				{Question: "When is the best time to list?", Answer: "Spring is busiest in the Valley, but well-priced homes sell year-round. Your timeline matters more than the calendar."},
				{Question: "Do I need to renovate before selling?", Answer: "Rarely. Most sellers see better returns from paint, light staging and small repairs than major projects."},
			},
			CTAText: "Request a Home Valuation",
			CTALink: "/contact",
		},
		Neighborhoods: NeighborhoodsSection{
			Heading:     "Explore Neighborhoods",
			Intro:       "Every community in the Valley has its own character. Browse the areas I know best.",
			MapEmbedURL: "",
			CTAText:     "Ask About an Area",
		},
		Calculators: CalculatorsSection{
			Heading:    "Mortgage Calculators",
			Intro:      "Estimate a monthly payment or see what price range fits your income.",
			Disclaimer: "Estimates are for planning purposes only and are not a lending offer. Confirm figures with a licensed lender.",
		},
		Contact: ContactSection{
			Heading:            "Let's Talk",
			Intro:              "No pressure, no obligation. Tell me what you're planning and I'll tell you how I can help.",
			Phone:              "(480) 555-0142",
			Email:              "hello@copperstatehomes.com",
			Address:            "2077 E Warner Rd, Suite 110, Tempe, AZ 85284",
			OfficeHours:        "Mon–Sat 8am–6pm",
			FormSuccessMessage: "Thanks for reaching out — I'll get back to you within one business day.",
			SocialLinks: []SocialLink{
				{Platform: "instagram", URL: "https://instagram.com/copperstatehomes"},
				{Platform: "facebook", URL: "https://facebook.com/copperstatehomes"},
			},
		},
		Header: HeaderSection{
			SiteName: "Copperstate Homes",
			Tagline:  "East Valley Real Estate",
			Logo:     "/images/logo.svg",
			MenuItems: []MenuItem{
				{Label: "Home", Path: "/"},
				{Label: "About", Path: "/about"},
				{Label: "Buy", Path: "/buy"},
				{Label: "Sell", Path: "/sell"},
				{Label: "Neighborhoods", Path: "/neighborhoods"},
				{Label: "Calculators", Path: "/calculators"},
				{Label: "Blog", Path: "/blog"},
				{Label: "Contact", Path: "/contact"},
			},
			ShowPhone: true,
			Phone:     "(480) 555-0142",
		},
		Footer: FooterSection{
			AboutBlurb: "Full-time REALTOR® serving Tempe, Chandler, Gilbert, Mesa and the greater Phoenix East Valley.",
			Copyright:  "© Copperstate Homes. All rights reserved.",
			MenuItems: []MenuItem{
				{Label: "Privacy Policy", Path: "/privacy"},
				{Label: "Accessibility", Path: "/accessibility"},
			},
			SocialLinks: []SocialLink{
				{Platform: "instagram", URL: "https://instagram.com/copperstatehomes"},
			},
			DisclaimerText:   "Information deemed reliable but not guaranteed. Equal Housing Opportunity.",
			BrokerageName:    "Copperstate Realty Group",
			BrokerageLogo:    "/images/brokerage.svg",
			ShowEqualHousing: true,
		},
		Resources: ResourcesSection{
			Heading:          "Free Guides & Resources",
			Intro:            "Download the same checklists and guides I walk my clients through.",
			EmailGateMessage: "Enter your email and we'll send the guide straight to your inbox.",
			EmptyStateText:   "New guides are on the way — check back soon.",
		},
	}
}
