package canned

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lifecompass/internal/domain"
)

func fixedResponder(pick int) *Responder {
	return NewResponder(
		WithClock(func() time.Time { return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC) }),
		WithPicker(func(int) int { return pick }),
	)
}

func TestReply_KeywordRules(t *testing.T) {
	r := fixedResponder(0)
	cases := []struct {
		message string
		want    string
	}{
		{"What is the salary for data scientists?", "**Current Salary Ranges in India (7/3/2025):**"},
		{"Which skill should I learn first?", "**Most In-Demand Skills for 2025:**"},
		{"How is the job market right now?", "**Indian Job Market Insights (7/3/2025):**"},
		{"Is Hyderabad good for freshers?", "**Hyderabad Career Opportunities (7/3/2025):**"},
		{"Help with interview tips", "**Interview Preparation Guide:**"},
		{"Can you fix my CV?", "**Resume Optimization for Indian Job Market:**"},
		{"where can I learn for free", "**Best Free Learning Resources for Indian Students:**"},
	}
	for _, tc := range cases {
		got := r.Reply(tc.message, nil)
		require.True(t, strings.HasPrefix(got, tc.want), "message=%q got=%q", tc.message, got[:min(len(got), 80)])
	}
}

func TestReply_PercentSignsRenderLiterally(t *testing.T) {
	r := fixedResponder(0)
	require.Contains(t, r.Reply("salary?", nil), "20-30% higher")
	require.NotContains(t, r.Reply("job market", nil), "%!")
}

func TestReply_CareerPathUsesProfile(t *testing.T) {
	r := fixedResponder(0)
	p := &domain.StudentProfile{
		AcademicStrengths: []string{"Mathematics", "Physics"},
		Interests:         []string{"Technology & Programming"},
	}
	got := r.Reply("Which career path fits me?", p)
	require.Contains(t, got, "interests: Technology & Programming, strengths: Mathematics, Physics")
	require.Contains(t, got, "(as of 7/3/2025)")

	got = r.Reply("Which career path fits me?", nil)
	require.Contains(t, got, "could you tell me")
}

func TestReply_CityPrecedence(t *testing.T) {
	r := fixedResponder(0)
	got := r.Reply("delhi or bangalore?", nil)
	require.True(t, strings.HasPrefix(got, "**Bangalore Career Opportunities"))
	require.Contains(t, got, "job hunting in Bangalore?")
}

func TestReply_GenericPicker(t *testing.T) {
	got := fixedResponder(0).Reply("hello there", &domain.StudentProfile{})
	require.Contains(t, got, `asking about "hello there"`)
	require.Contains(t, got, "Since I have your profile")

	got = fixedResponder(0).Reply("hello there", nil)
	require.Contains(t, got, "Feel free to share your background")

	got = fixedResponder(1).Reply("hello there", nil)
	require.Contains(t, got, "market trends (7/3/2025)")
	require.Contains(t, got, "up 25% this quarter")
}

func TestInsights(t *testing.T) {
	require.Len(t, Insights(""), 5)

	got := Insights("  data ")
	require.Len(t, got, 1)
	require.Equal(t, "Data Science", got[0].Skill)

	got = Insights("DESIGN")
	require.Len(t, got, 1)
	require.Equal(t, "UI/UX Design", got[0].Skill)

	require.Empty(t, Insights("plumbing"))

	got = Insights("cloud")
	got[0].Locations[0] = "mutated"
	require.Equal(t, "Bangalore", Insights("cloud")[0].Locations[0])
}
