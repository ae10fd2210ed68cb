package dispatch

import (
	"fmt"
	"time"
)

// Tier is a symbolic remote-model backend.
type Tier string

const (
	Structured     Tier = "structured"
	Conversational Tier = "conversational"
	Quick          Tier = "quick"
)

// TierFallback tags responses produced by the static apology path.
const TierFallback = "fallback"

// Sampling parameters shared by every tier.
const (
	topP             = 0.9
	frequencyPenalty = 0.1
	presencePenalty  = 0.1
)

// TierSpec is the per-tier configuration row.
type TierSpec struct {
	Model             string
	RequestsPerMinute int
	Timeout           time.Duration
	MaxTokens         int
	Temperature       float64
	Persona           string
	// Fallbacks is tried in order when this tier is the primary and fails.
	Fallbacks []Tier
}

// Tiers is the tier table. Adding a tier is a data change here plus a
// selection entry.
type Tiers map[Tier]TierSpec

// AllTiers lists the tiers in capability order.
var AllTiers = []Tier{Structured, Conversational, Quick}

func DefaultTiers() Tiers {
	return Tiers{
		Structured: {
			Model:             "deepseek/deepseek-r1",
			RequestsPerMinute: 20,
			Timeout:           30 * time.Second,
			MaxTokens:         1200,
			Temperature:       0.2,
			Persona:           structuredPersona,
			Fallbacks:         []Tier{Conversational, Quick},
		},
		Conversational: {
			Model:             "deepseek/deepseek-v3",
			RequestsPerMinute: 60,
			Timeout:           15 * time.Second,
			MaxTokens:         600,
			Temperature:       0.5,
			Persona:           conversationalPersona,
			Fallbacks:         []Tier{Quick, Structured},
		},
		Quick: {
			Model:             "qwen/qwen-2.5-72b-instruct",
			RequestsPerMinute: 100,
			Timeout:           10 * time.Second,
			MaxTokens:         200,
			Temperature:       0.5,
			Persona:           quickPersona,
			Fallbacks:         []Tier{Conversational, Structured},
		},
	}
}

// Validate checks that every tier is present and that each fallback list
// names every other tier exactly once.
func (t Tiers) Validate() error {
	if len(t) != len(AllTiers) {
		return fmt.Errorf("dispatch: expected %d tiers, got %d", len(AllTiers), len(t))
	}
	for _, tier := range AllTiers {
		spec, ok := t[tier]
		if !ok {
			return fmt.Errorf("dispatch: tier %q missing", tier)
		}
		if spec.Model == "" {
			return fmt.Errorf("dispatch: tier %q has no model", tier)
		}
		if spec.RequestsPerMinute < 0 {
			return fmt.Errorf("dispatch: tier %q has negative rate limit", tier)
		}
		if spec.Timeout <= 0 {
			return fmt.Errorf("dispatch: tier %q timeout must be positive", tier)
		}
		if err := checkFallbacks(tier, spec.Fallbacks); err != nil {
			return err
		}
	}
	return nil
}

func checkFallbacks(primary Tier, fallbacks []Tier) error {
	if len(fallbacks) != len(AllTiers)-1 {
		return fmt.Errorf("dispatch: tier %q must fall back to %d tiers", primary, len(AllTiers)-1)
	}
	seen := make(map[Tier]bool, len(fallbacks))
	for _, f := range fallbacks {
		if f == primary {
			return fmt.Errorf("dispatch: tier %q falls back to itself", primary)
		}
		if seen[f] {
			return fmt.Errorf("dispatch: tier %q lists %q twice", primary, f)
		}
		seen[f] = true
	}
	for _, tier := range AllTiers {
		if tier != primary && !seen[tier] {
			return fmt.Errorf("dispatch: tier %q never falls back to %q", primary, tier)
		}
	}
	return nil
}

// FallbackOrder returns a copy of primary's fallback list.
func (t Tiers) FallbackOrder(primary Tier) []Tier {
	spec, ok := t[primary]
	if !ok {
		return nil
	}
	return append([]Tier(nil), spec.Fallbacks...)
}

// FallbackOrder returns the default fallback list for primary.
func FallbackOrder(primary Tier) []Tier {
	return DefaultTiers().FallbackOrder(primary)
}
