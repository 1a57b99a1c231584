package catalog

import "wedding-timeline/internal/model"

// Phase ids.
const (
	PhaseFoundation        = "foundation"
	PhaseVendorSelection   = "vendor-selection"
	PhaseDetailedPlanning  = "detailed-planning"
	PhaseFinalPreparations = "final-preparations"
	PhaseWeddingWeek       = "wedding-week"
)

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() Catalog {
	return Catalog{
		Categories:    defaultCategories(),
		Phases:        defaultPhases(),
		StandardTasks: defaultStandardTasks(),
	}
}

func defaultCategories() []Category {
	return []Category{
		{
			Name:          "venue",
			Keywords:      []string{"venue", "reception", "ceremony site", "banquet hall"},
			Priority:      model.PriorityCritical,
			MinLeadMonths: 12,
			EstimatedDays: 30,
			Suggestion:    "Book your ceremony and reception venue",
			Tips:          []string{"Visit at least three venues before signing", "Ask about rain plans and noise curfews"},
		},
		{
			Name:          "photography",
			Keywords:      []string{"photographer", "photography", "photos", "videographer", "engagement shoot"},
			Priority:      model.PriorityCritical,
			MinLeadMonths: 10,
			EstimatedDays: 14,
			Suggestion:    "Hire a photographer and videographer",
			Tips:          []string{"Review full galleries, not just highlights", "Agree on delivery dates in the contract"},
		},
		{
			Name:          "catering",
			Keywords:      []string{"caterer", "catering", "menu", "tasting", "cake"},
			Priority:      model.PriorityCritical,
			MinLeadMonths: 9,
			EstimatedDays: 21,
			Suggestion:    "Choose a caterer and schedule a tasting",
			Tips:          []string{"Collect dietary restrictions with RSVPs", "Confirm staffing ratios per guest"},
		},
		{
			Name:          "legal",
			Keywords:      []string{"marriage license", "officiant", "legal", "certificate"},
			Priority:      model.PriorityCritical,
			MinLeadMonths: 1,
			EstimatedDays: 7,
			Suggestion:    "Apply for your marriage license",
			Tips:          []string{"Check how long the license stays valid", "Bring ID and any required documents"},
		},
		{
			Name:          "attire",
			Keywords:      []string{"dress", "gown", "suit", "tuxedo", "attire", "alterations"},
			Priority:      model.PriorityHigh,
			MinLeadMonths: 8,
			EstimatedDays: 60,
			Suggestion:    "Shop for wedding attire",
			Tips:          []string{"Leave time for at least two fittings", "Order accessories with the outfit"},
		},
		{
			Name:          "music",
			Keywords:      []string{"band", "music", "playlist", "musician", "first dance"},
			Priority:      model.PriorityHigh,
			MinLeadMonths: 8,
			EstimatedDays: 10,
			Suggestion:    "Book a band or DJ",
			Tips:          []string{"Share a do-not-play list", "Confirm equipment and power needs with the venue"},
		},
		{
			Name:          "flowers",
			Keywords:      []string{"florist", "flowers", "bouquet", "centerpieces", "boutonniere"},
			Priority:      model.PriorityHigh,
			MinLeadMonths: 6,
			EstimatedDays: 14,
			Suggestion:    "Hire a florist",
			Tips:          []string{"Pick in-season blooms to control cost", "Bring venue photos to the consultation"},
		},
		{
			Name:          "invitations",
			Keywords:      []string{"invitations", "save the date", "rsvp", "stationery"},
			Priority:      model.PriorityMedium,
			MinLeadMonths: 6,
			EstimatedDays: 21,
			Suggestion:    "Order invitations and save-the-dates",
			Tips:          []string{"Mail invitations six to eight weeks ahead", "Set the RSVP deadline a month out"},
		},
		{
			Name:          "beauty",
			Keywords:      []string{"hairstylist", "hair trial", "makeup", "manicure", "beauty"},
			Priority:      model.PriorityMedium,
			MinLeadMonths: 2,
			EstimatedDays: 3,
			Suggestion:    "Book hair and makeup",
			Tips:          []string{"Schedule a trial run", "Bring inspiration photos"},
		},
		{
			Name:          "transportation",
			Keywords:      []string{"transportation", "limo", "shuttle", "car rental"},
			Priority:      model.PriorityMedium,
			MinLeadMonths: 3,
			EstimatedDays: 5,
			Suggestion:    "Arrange wedding-day transportation",
			Tips:          []string{"Plan a shuttle for out-of-town guests", "Build buffer time into the route"},
		},
		{
			Name:          "decorations",
			Keywords:      []string{"decorations", "decor", "lighting", "signage", "table settings"},
			Priority:      model.PriorityMedium,
			MinLeadMonths: 4,
			EstimatedDays: 14,
			Suggestion:    "Plan decorations and lighting",
			Tips:          []string{"Check what the venue already provides", "Assign someone to set up and tear down"},
		},
		{
			Name:          "honeymoon",
			Keywords:      []string{"honeymoon", "flights", "passport", "hotel", "travel"},
			Priority:      model.PriorityLow,
			MinLeadMonths: 6,
			EstimatedDays: 10,
			Suggestion:    "Plan the honeymoon",
			Tips:          []string{"Check passport expiry dates", "Book refundable fares where possible"},
		},
	}
}

func defaultPhases() []Phase {
	return []Phase{
		{
			ID:          PhaseFoundation,
			Name:        "Foundation Planning",
			Description: "Budget, guest count, date and the venue everything else depends on.",
			StartMonths: 12,
			EndMonths:   9,
			IsFlexible:  false,
			Priority:    model.PriorityCritical,
			Tips:        []string{"Agree on a total budget before touring venues", "Draft a rough guest list to size the venue"},
			Icon:        "🏛️",
		},
		{
			ID:          PhaseVendorSelection,
			Name:        "Vendor Selection",
			Description: "Lock in the vendors that book up first.",
			StartMonths: 9,
			EndMonths:   6,
			IsFlexible:  true,
			Priority:    model.PriorityHigh,
			Tips:        []string{"Read contracts for cancellation terms", "Track deposits and due dates in one place"},
			Icon:        "🤝",
		},
		{
			ID:          PhaseDetailedPlanning,
			Name:        "Detailed Planning",
			Description: "Invitations, decor, transport and the guest experience.",
			StartMonths: 6,
			EndMonths:   3,
			IsFlexible:  true,
			Priority:    model.PriorityMedium,
			Tips:        []string{"Send save-the-dates early for destination weddings", "Start a day-of timeline draft"},
			Icon:        "📋",
		},
		{
			ID:          PhaseFinalPreparations,
			Name:        "Final Preparations",
			Description: "Paperwork, fittings, trials and final confirmations.",
			StartMonths: 3,
			EndMonths:   1,
			IsFlexible:  true,
			Priority:    model.PriorityHigh,
			Tips:        []string{"Confirm final headcount with every vendor", "Break in your shoes"},
			Icon:        "✨",
		},
		{
			ID:          PhaseWeddingWeek,
			Name:        "Wedding Week",
			Description: "Rehearsal, final payments and the day itself.",
			StartMonths: 1,
			EndMonths:   0,
			IsFlexible:  false,
			Priority:    model.PriorityCritical,
			Tips:        []string{"Hand off vendor contacts to a trusted friend", "Prepare tip envelopes in advance"},
			Icon:        "💍",
		},
	}
}

func defaultStandardTasks() []StandardTask {
	return []StandardTask{
		{Text: "Set wedding budget", Phase: PhaseFoundation, Months: 12, Urgency: model.PriorityCritical},
		{Text: "Book wedding venue", Phase: PhaseFoundation, Months: 12, Urgency: model.PriorityCritical},
		{Text: "Create guest list", Phase: PhaseFoundation, Months: 11, Urgency: model.PriorityHigh},
		{Text: "Hire photographer", Phase: PhaseVendorSelection, Months: 10, Urgency: model.PriorityCritical},
		{Text: "Book caterer", Phase: PhaseVendorSelection, Months: 9, Urgency: model.PriorityCritical},
		{Text: "Book band or DJ", Phase: PhaseVendorSelection, Months: 8, Urgency: model.PriorityHigh},
		{Text: "Shop for wedding attire", Phase: PhaseVendorSelection, Months: 8, Urgency: model.PriorityHigh},
		{Text: "Hire florist", Phase: PhaseVendorSelection, Months: 7, Urgency: model.PriorityHigh},
		{Text: "Send save-the-dates", Phase: PhaseDetailedPlanning, Months: 6, Urgency: model.PriorityMedium},
		{Text: "Order wedding invitations", Phase: PhaseDetailedPlanning, Months: 5, Urgency: model.PriorityMedium},
		{Text: "Arrange transportation", Phase: PhaseDetailedPlanning, Months: 4, Urgency: model.PriorityMedium},
		{Text: "Schedule hair and makeup trial", Phase: PhaseFinalPreparations, Months: 2, Urgency: model.PriorityMedium},
		{Text: "Get marriage license", Phase: PhaseFinalPreparations, Months: 1, Urgency: model.PriorityCritical},
		{Text: "Pack for honeymoon", Phase: PhaseWeddingWeek, Months: 0, Urgency: model.PriorityLow},
	}
}
