package content

// Default returns the VTable.ai landing page content.
func Default() Site {
	return Site{
		Brand: Brand{
			Name:         "VTable.ai",
			ContactEmail: "founder@yourbrand.com",
			DemoNumber:   "+1 (555) 010-1212",
			BookingURL:   "#",
		},
		MetaDesc: "AI phone host for restaurants. Answers every call, books and modifies OpenTable reservations, and handles FAQs 24/7.",
		Hero: Hero{
			Headline:     "Never miss a reservation again.",
			Lead:         "{brand} is your restaurant’s AI phone host — it answers every call, books and modifies OpenTable reservations, and handles FAQs 24/7. Keep seats full and staff focused on guests.",
			PrimaryCTA:   "See a live demo",
			SecondaryCTA: "View pricing",
			Badges:       []string{"24/7 coverage", "OpenTable integrated", "Minutes-based pricing"},
			PreviewTitle: "Live Call Preview",
			PreviewNote:  "Sample restaurant phone flow",
			WidgetNote:   "Vapi web call widget goes here.",
		},
		Stats: []Stat{
			{Value: "< 1s", Label: "Average answer time"},
			{Value: "+12%", Label: "More reservations captured"},
			{Value: "24/7", Label: "Always on"},
		},
		Value: Heading{
			Title: "Why restaurants choose {brand}",
			Lead:  "Missed calls = empty tables. Your AI host answers instantly, books or updates reservations in OpenTable, and frees up staff during the rush.",
		},
		ValueProps: []Feature{
			{Title: "Never miss a call", Description: "Answer 100% of calls automatically — even during dinner rush or after hours."},
			{Title: "OpenTable native", Description: "Reads availability, makes new reservations, and modifies/cancels existing bookings."},
			{Title: "Lower front-of-house load", Description: "Offload repetitive calls (hours, location, parking, menu). Staff focus on service."},
			{Title: "Track ROI", Description: "Get call summaries, recordings, and conversion metrics so you can see the revenue impact."},
		},
		How: Heading{Title: "How it works"},
		Steps: []Step{
			{Title: "Connect OpenTable", Description: "Share your OpenTable Restaurant ID and basic settings. We sync availability securely."},
			{Title: "Customize voice & FAQs", Description: "Choose greeting, hours, menu highlights, parking, and other common questions."},
			{Title: "Go live in minutes", Description: "We point your phone number to the AI host (or provision a new line) and you’re live."},
		},
		Features: []Feature{
			{Title: "Reservation booking", Description: "Reads real-time availability and books directly into OpenTable."},
			{Title: "Modify & cancel", Description: "Finds existing reservations by phone/name and updates or cancels per policy."},
			{Title: "After-hours coverage", Description: "Capture reservations and messages while you sleep — no voicemail black hole."},
			{Title: "Multilingual", Description: "Serve guests in multiple languages (English/Spanish to start)."},
			{Title: "Smart FAQs", Description: "Answers hours, directions, parking, menu, dietary options, private dining info, and more."},
			{Title: "Analytics & recordings", Description: "See call counts, durations, conversions, and listen back to calls for QA."},
		},
		Analytics: Analytics{
			Title: "Know what your phone line is doing",
			Lead:  "A simple dashboard shows total calls, bookings made, peak hours, and missed-call recapture. Export data and share with managers.",
			Bullets: []string{
				"Calls by hour/day",
				"Reservation conversions & edits",
				"First-response time",
				"Recordings & transcripts",
			},
			PreviewTitle: "Dashboard Preview",
			Metrics: []Metric{
				{Value: "1,248", Label: "Total calls"},
				{Value: "312", Label: "Reservations booked"},
				{Value: "42%", Label: "Conversion rate"},
				{Value: "0.7s", Label: "Avg. answer time"},
			},
		},
		Pricing: Heading{
			Title: "Simple pricing",
			Lead:  "Start small and scale as you grow. No contracts. Cancel anytime.",
		},
		Tiers: []PricingTier{
			{
				Tier:        "Starter",
				Price:       "$99",
				Amount:      99,
				Description: "Best for single-location restaurants getting started with AI answering.",
				Features: []string{
					"500 included minutes",
					"1 phone number",
					"OpenTable integration",
					"Basic analytics",
				},
				CTAText: "Start with Starter",
			},
			{
				Tier:        "Pro",
				Price:       "$249",
				Amount:      249,
				Description: "For busy restaurants wanting deeper analytics and recordings.",
				Features: []string{
					"2,000 included minutes",
					"Recordings & transcripts",
					"Advanced analytics & exports",
					"Priority support",
				},
				CTAText:     "Upgrade to Pro",
				Highlighted: true,
			},
			{
				Tier:        "Enterprise",
				Price:       "Custom",
				Description: "Multi-location groups with onboarding, SSO, and dedicated support.",
				Features: []string{
					"Unlimited locations",
					"Custom provisioning",
					"SLA & onboarding",
					"Dedicated success manager",
				},
				CTAText: "Talk to sales",
			},
		},
		PricingNote: "Overages billed per-minute. Volume discounts available.",
		Demo: Heading{
			Title: "Hear it in action",
			Lead:  "or click below to book a live walkthrough.",
		},
		FAQ: []FAQEntry{
			{Question: "Do you integrate with OpenTable?", Answer: "Yes. We use your OpenTable Restaurant ID to read availability, place new reservations, and modify or cancel existing ones per your policy."},
			{Question: "Can we keep our current phone number?", Answer: "Yes. We can forward your existing number to the AI host or provision a new number and migrate later."},
			{Question: "What languages are supported?", Answer: "English and Spanish at launch, with more languages available on request."},
			{Question: "How fast is setup?", Answer: "Most locations go live the same day. If you have multiple venues, onboarding can be done in under a week."},
			{Question: "What about PCI/PHI compliance?", Answer: "We do not accept credit cards over the phone. For special cases, we can route to a human line. Recordings can be disabled as needed."},
			{Question: "How do you price minutes?", Answer: "Each plan includes a minute bundle. Overages are charged per-minute monthly. Volume discounts available for groups."},
		},
		SEO: SEO{
			Name:        "{brand} – AI Phone Host for Restaurants",
			Description: "AI phone agent that answers calls, books and modifies OpenTable reservations, and handles FAQs 24/7.",
			LowPrice:    99,
			HighPrice:   249,
			Currency:    "USD",
		},
	}
}
