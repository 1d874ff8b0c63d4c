package premium

import "time"

// Plan identifiers double as the values stored on the user row.
const (
	PlanFree     = "free"
	PlanBasic    = "basic"
	PlanPro      = "pro"
	PlanElite    = "elite"
	PlanLifetime = "lifetime"
)

// Plan is one subscription offer shown on the paywall.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

var plans = []Plan{
	{
		ID:          PlanBasic,
		Name:        "Basic",
		Price:       "₹199",
		Period:      "month",
		Description: "Essential mental wellness features",
		Features: []string{
			"Advanced mood insights",
			"Extra voice options",
			"Basic breathing exercises",
			"Limited journal analysis",
		},
	},
	{
		ID:          PlanPro,
		Name:        "Pro",
		Price:       "₹499",
		Period:      "month",
		Description: "Complete mental wellness suite",
		Features: []string{
			"All Basic features",
			"Unlimited coins",
			"All games unlocked",
			"Advanced AI Coach",
			"Sleep stories",
			"Priority support",
		},
	},
	{
		ID:          PlanElite,
		Name:        "Elite",
		Price:       "₹999",
		Period:      "month",
		Description: "Premium experience with exclusive benefits",
		Features: []string{
			"All Pro features",
			"Exclusive themes & avatars",
			"Early access to new features",
			"Personalized coaching",
			"Merch discounts",
			"VIP support",
		},
	},
	{
		ID:          PlanElite,
		Name:        "Elite",
		Price:       "₹1999",
		Period:      "year",
		Description: "Premium experience with exclusive benefits",
		Features: []string{
			"All Pro features",
			"Exclusive themes & avatars",
			"Early access to new features",
			"Personalized coaching",
			"Merch discounts",
			"VIP support",
		},
	},
	{
		ID:          PlanLifetime,
		Name:        "Lifetime",
		Price:       "₹4999",
		Period:      "one-time",
		Description: "Forever access to all premium features",
		Features: []string{
			"Everything in Elite",
			"Lifetime access",
			"Special lifetime badge",
			"Free future updates",
			"Exclusive community",
			"Founder status",
		},
	},
}

// Plans returns the paywall catalog.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// ValidPlan reports whether id names a purchasable plan.
func ValidPlan(id string) bool {
	switch id {
	case PlanBasic, PlanPro, PlanElite, PlanLifetime:
		return true
	}
	return false
}

// ExpiryFor computes when a subscription started at now runs out. Lifetime
// plans return nil.
func ExpiryFor(plan string, now time.Time) *time.Time {
	var expiry time.Time
	switch plan {
	case PlanBasic, PlanPro:
		expiry = now.AddDate(0, 0, 30)
	case PlanElite:
		expiry = now.AddDate(0, 0, 365)
	default:
		return nil
	}
	return &expiry
}

// IsActive reports whether a plan is currently in force.
func IsActive(plan string, expiry *time.Time, now time.Time) bool {
	switch plan {
	case "", PlanFree:
		return false
	case PlanLifetime:
		return true
	}
	return expiry != nil && expiry.After(now)
}

// FeaturesFor maps a plan to the feature switches the client renders.
func FeaturesFor(plan string) map[string]bool {
	paid := plan != "" && plan != PlanFree
	proUp := plan == PlanPro || plan == PlanElite || plan == PlanLifetime
	eliteUp := plan == PlanElite || plan == PlanLifetime

	return map[string]bool{
		"games":               paid,
		"breathing_exercises": paid,
		"ai_coach":            proUp,
		"sleep_stories":       proUp,
		"mood_reports":        paid,
		"exclusive_themes":    eliteUp,
		"challenges":          proUp,
		"priority_support":    proUp,
	}
}
