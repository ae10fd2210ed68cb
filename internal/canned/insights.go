package canned

import (
	"strings"

	"lifecompass/internal/domain"
)

var marketInsights = []domain.MarketInsight{
	{Skill: "Data Science", Demand: "High", SalaryRange: "₹6-15 LPA", Growth: "+25% YoY", Locations: []string{"Bangalore", "Hyderabad", "Pune", "Mumbai", "Delhi"}},
	{Skill: "Full Stack Development", Demand: "High", SalaryRange: "₹5-12 LPA", Growth: "+20% YoY", Locations: []string{"Bangalore", "Mumbai", "Pune", "Chennai", "Hyderabad"}},
	{Skill: "UI/UX Design", Demand: "High", SalaryRange: "₹4-10 LPA", Growth: "+30% YoY", Locations: []string{"Bangalore", "Mumbai", "Delhi", "Pune", "Gurgaon"}},
	{Skill: "Digital Marketing", Demand: "Medium", SalaryRange: "₹3-8 LPA", Growth: "+15% YoY", Locations: []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Chennai"}},
	{Skill: "Cloud Computing", Demand: "High", SalaryRange: "₹7-16 LPA", Growth: "+35% YoY", Locations: []string{"Bangalore", "Hyderabad", "Mumbai", "Pune", "Chennai"}},
}

// Insights returns the entries whose skill contains skill, ignoring case.
// An empty skill returns every entry.
func Insights(skill string) []domain.MarketInsight {
	skill = strings.ToLower(strings.TrimSpace(skill))
	out := make([]domain.MarketInsight, 0, len(marketInsights))
	for _, in := range marketInsights {
		if skill != "" && !strings.Contains(strings.ToLower(in.Skill), skill) {
			continue
		}
		in.Locations = append([]string(nil), in.Locations...)
		out = append(out, in)
	}
	return out
}
