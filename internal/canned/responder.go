// Package canned answers chat messages from static text when the remote
// model API is not configured, and serves the static market insights table.
package canned

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"lifecompass/internal/domain"
)

// Responder picks a canned reply by keyword. It is safe for concurrent use.
type Responder struct {
	now  func() time.Time
	pick func(n int) int
}

type Option func(*Responder)

func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithPicker sets the function that chooses among n generic replies. It must
// return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Responder) {
		if pick != nil {
			r.pick = pick
		}
	}
}

func NewResponder(opts ...Option) *Responder {
	r := &Responder{now: time.Now, pick: rand.Intn}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type reply struct {
	match  func(msg string) bool
	render func(r *Responder, message string, profile *domain.StudentProfile) string
}

func hasAll(msg string, words ...string) bool {
	for _, w := range words {
		if !strings.Contains(msg, w) {
			return false
		}
	}
	return true
}

func hasAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// replies are evaluated in order; the first match wins.
var replies = []reply{
	{func(m string) bool { return hasAll(m, "career", "path") }, careerPathReply},
	{func(m string) bool { return hasAny(m, "salary", "pay") }, salaryReply},
	{func(m string) bool { return hasAll(m, "skill") && hasAny(m, "learn", "develop") }, staticReply(skillsText)},
	{func(m string) bool { return hasAll(m, "job") && hasAny(m, "market", "demand") }, jobMarketReply},
	{func(m string) bool { return cityIn(m) != "" }, cityReply},
	{func(m string) bool { return hasAny(m, "interview", "preparation") }, staticReply(interviewText)},
	{func(m string) bool { return hasAny(m, "resume", "cv") }, staticReply(resumeText)},
	{func(m string) bool { return hasAll(m, "learn") && hasAny(m, "free", "resource") }, staticReply(resourcesText)},
}

// Reply returns the canned answer for message.
func (r *Responder) Reply(message string, profile *domain.StudentProfile) string {
	lower := strings.ToLower(message)
	for _, rep := range replies {
		if rep.match(lower) {
			return rep.render(r, message, profile)
		}
	}
	return r.genericReply(message, profile)
}

// date renders d/m/yyyy.
func (r *Responder) date() string {
	t := r.now()
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func staticReply(text string) func(*Responder, string, *domain.StudentProfile) string {
	return func(*Responder, string, *domain.StudentProfile) string {
		return text
	}
}

func careerPathReply(r *Responder, _ string, profile *domain.StudentProfile) string {
	if profile == nil {
		return fmt.Sprintf(careerPathAnonymousText, r.date())
	}
	return fmt.Sprintf(careerPathProfileText,
		strings.Join(profile.Interests, ", "),
		strings.Join(profile.AcademicStrengths, ", "),
		r.date())
}

func salaryReply(r *Responder, _ string, _ *domain.StudentProfile) string {
	return fmt.Sprintf(salaryText, r.date())
}

func jobMarketReply(r *Responder, _ string, _ *domain.StudentProfile) string {
	return fmt.Sprintf(jobMarketText, r.date())
}

type cityFacts struct {
	strengths     string
	avgSalary     string
	costOfLiving  string
	opportunities string
}

// cityOrder fixes precedence when a message names several cities.
var cityOrder = []string{"Bangalore", "Mumbai", "Delhi", "Hyderabad"}

var cities = map[string]cityFacts{
	"Bangalore": {"Tech capital, highest number of startups, global companies", "₹8-15 LPA for tech roles", "High but manageable", "Software, Data Science, Product roles"},
	"Mumbai":    {"Financial capital, media industry, diverse opportunities", "₹7-14 LPA for tech roles", "Very high, especially housing", "FinTech, Media, Consulting, Tech"},
	"Delhi":     {"Government sector, consulting, growing startup scene", "₹6-12 LPA for tech roles", "High, pollution concerns", "Consulting, Government tech, Startups"},
	"Hyderabad": {"Growing tech hub, lower cost of living, good infrastructure", "₹6-11 LPA for tech roles", "Moderate, best value for money", "Software, Cloud, Data Science"},
}

func cityIn(msg string) string {
	for _, c := range cityOrder {
		if strings.Contains(msg, strings.ToLower(c)) {
			return c
		}
	}
	return ""
}

func cityReply(r *Responder, message string, _ *domain.StudentProfile) string {
	city := cityIn(strings.ToLower(message))
	f := cities[city]
	return fmt.Sprintf(cityText, city, r.date(), f.strengths, f.avgSalary, f.costOfLiving, f.opportunities, city)
}

func (r *Responder) genericReply(message string, profile *domain.StudentProfile) string {
	if r.pick(2) == 0 {
		personal := "Feel free to share your background for personalized guidance."
		if profile != nil {
			personal = "Since I have your profile, I can give personalized advice!"
		}
		return fmt.Sprintf(genericMenuText, message, personal)
	}
	return fmt.Sprintf(genericUpdateText, r.date())
}
