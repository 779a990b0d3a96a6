package content

// DefaultPayload returns the built-in content used by the seed command and by
// public pages rendering a section that has never been written.
func DefaultPayload(key SectionKey) (interface{}, bool) {
	switch key {
	case SectionHero:
		return HeroContent{
			Location:    HeroLocation{Text: "Serving the Greater Portland Area"},
			MainHeading: HeroHeading{Line1: "Quality Painting.", Line2: "Lasting Results."},
			Subheading:  "Residential and commercial painting done right, on time, and on budget.",
			Buttons: HeroButtons{
				Primary:   HeroButton{Text: "Get a Free Quote", Link: "/contact"},
				Secondary: HeroButton{Text: "View Our Work", Link: "/projects"},
			},
			VideoURL: "/static/media/hero.mp4",
		}, true
	case SectionAboutHero:
		return AboutHeroContent{
			Heading:    "A Family Business Since 1998",
			Subheading: "Three generations of painters who treat your home like their own.",
			ImageURL:   "/static/media/about-hero.jpg",
		}, true
	case SectionAbout:
		return AboutContent{
			Heading: "About PaintPro",
			Paragraphs: []string{
				"PaintPro is a full-service painting company serving homeowners and businesses across the region.",
				"Every crew is licensed, insured, and led by a foreman with at least ten years on the brush.",
			},
			ImageURL: "/static/media/crew.jpg",
		}, true
	case SectionStatistics:
		return StatisticsContent{
			Heading: "Our Track Record",
			Stats: []StatItem{
				{Value: "1,200+", Label: "Projects Completed"},
				{Value: "25", Label: "Years in Business"},
				{Value: "98%", Label: "Customer Satisfaction"},
			},
		}, true
	case SectionContact:
		return ContactContent{
			Phone:   "(503) 555-0147",
			Email:   "hello@paintpro.example.com",
			Address: "412 NW Industrial Way, Portland, OR",
			Hours:   "Mon-Fri 8am-6pm, Sat 9am-1pm",
		}, true
	case SectionAreasServed:
		return AreasServedContent{
			Heading:    "Areas We Serve",
			Subheading: "Proudly painting homes and businesses across the metro.",
			Areas:      []string{"Portland", "Beaverton", "Gresham", "Lake Oswego", "Tigard", "Vancouver"},
		}, true
	case SectionQuote:
		return QuoteContent{
			Heading:    "Ready to transform your space?",
			Subheading: "Free, no-obligation estimates within 48 hours.",
			ButtonText: "Request a Quote",
			ButtonLink: "/contact",
		}, true
	case SectionHistory:
		return HistoryContent{
			Heading: "Our Story",
			Intro:   "From a one-van operation to a regional team of thirty.",
			Milestones: []Milestone{
				{Year: "1998", Text: "Founded as a two-brother residential crew."},
				{Year: "2010", Text: "Opened the commercial division."},
				{Year: "2021", Text: "Passed one thousand completed projects."},
			},
		}, true
	case SectionOurApproach:
		return OurApproachContent{
			Heading: "How We Work",
			Steps: []ApproachStep{
				{Title: "Walkthrough", Description: "We inspect every surface and agree the scope in writing."},
				{Title: "Prep", Description: "Masking, sanding, and priming before any color goes on."},
				{Title: "Paint", Description: "Two coats, premium product, clean lines."},
				{Title: "Final Check", Description: "You sign off before we pack a single ladder."},
			},
		}, true
	case SectionWarranty:
		return WarrantyContent{
			Heading: "Our 5-Year Warranty",
			Body:    "Every exterior job is covered against peeling, blistering, and chipping for five full years.",
			Terms: []string{
				"Covers labor and materials for covered defects.",
				"Transfers to new owners if the property is sold.",
				"Annual inspection available on request.",
			},
		}, true
	default:
		return nil, false
	}
}
