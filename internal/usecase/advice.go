package usecase

import (
	"context"
	"strings"

	"lifecompass/internal/canned"
	"lifecompass/internal/career"
	"lifecompass/internal/domain"
)

const (
	minAge = 10
	maxAge = 100
)

// AdviceService turns an intake profile into recommendations and serves the
// market insights table.
type AdviceService struct{}

func NewAdviceService() *AdviceService {
	return &AdviceService{}
}

func (s *AdviceService) Advise(ctx context.Context, p domain.StudentProfile) (career.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return career.Bundle{}, newError(ErrorCanceled, "request_canceled", err)
	}
	if err := validateProfile(p); err != nil {
		return career.Bundle{}, err
	}
	return career.Advise(p), nil
}

func (s *AdviceService) Insights(_ context.Context, skill string) []domain.MarketInsight {
	return canned.Insights(skill)
}

func validateProfile(p domain.StudentProfile) error {
	if p.Age < minAge || p.Age > maxAge {
		return newError(ErrorInvalidInput, "age_out_of_range", nil)
	}
	if strings.TrimSpace(p.Education.Level) == "" {
		return newError(ErrorInvalidInput, "education_level_required", nil)
	}
	if len(p.AcademicStrengths) == 0 && len(p.Interests) == 0 {
		return newError(ErrorInvalidInput, "strengths_or_interests_required", nil)
	}
	switch p.SocioEconomicConstraints {
	case "", domain.ConstraintNone, domain.ConstraintModerate, domain.ConstraintHigh:
	default:
		return newError(ErrorInvalidInput, "unknown_constraint_level", nil)
	}
	return nil
}
