package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lifecompass/internal/domain"
)

func TestProfileText(t *testing.T) {
	p := domain.StudentProfile{
		Age:                      17,
		Education:                domain.Education{Level: "12th", Stream: "Science"},
		AcademicStrengths:        []string{"Mathematics", "Physics"},
		Interests:                []string{"Technology & Programming"},
		Location:                 "Pune",
		SocioEconomicConstraints: domain.ConstraintModerate,
		AptitudeScores:           &domain.AptitudeScores{Logical: 8, Verbal: 6, Quantitative: 9, Spatial: 5},
	}
	got := profileText(p)
	require.Equal(t, "Student Profile:"+
		"\n- Age: 17"+
		"\n- Education: 12th, Science"+
		"\n- Academic strengths: Mathematics, Physics"+
		"\n- Interests: Technology & Programming"+
		"\n- Location: Pune"+
		"\n- Socio-economic constraints: moderate"+
		"\n- Aptitude scores: logical 8, verbal 6, quantitative 9, spatial 5", got)
}

func TestBuildMessages_NoProfile(t *testing.T) {
	msgs := buildMessages(quickPersona, nil, nil, "hi")
	require.Len(t, msgs, 2)
	require.Equal(t, quickPersona, msgs[0].Content)
	require.Equal(t, "hi", msgs[1].Content)
}
