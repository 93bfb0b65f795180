package clause

import (
	"strings"
	"testing"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
	"github.com/stretchr/testify/require"
)

func TestGenerate_NoneAndUnknownYieldEmpty(t *testing.T) {
	require.Empty(t, Generate(will.TrustNone, "A", "B", "21", ""))
	require.Empty(t, Generate(will.TrustType("Secret Trust"), "A", "B", "21", ""))
	require.Empty(t, Generate(will.TrustType(""), "", "", "", ""))
}

func TestGenerate_DefaultsWhenBlank(t *testing.T) {
	out := Generate(will.TrustDiscretionary, "", "  ", "", "")
	require.Contains(t, out, DefaultTrustees)
	require.Contains(t, out, DefaultBeneficiaries)

	life := Generate(will.TrustLifeInterest, "", "", "  ", "")
	require.Contains(t, life, "attaining age "+DefaultAgeOfAccess)
}

func TestGenerate_SubstitutesVerbatim(t *testing.T) {
	out := Generate(will.TrustDiscretionary, "Alice & Bob", "my children", "25", "")
	require.Contains(t, out, "I give my Residuary Estate to Alice & Bob")
	require.Contains(t, out, "for the benefit of my children")
	// default beneficiaries also appear in the default-beneficiaries clause
	require.Contains(t, out, "held for my children equally")
	require.NotContains(t, out, DefaultTrustees)
}

func TestGenerate_LifeInterestUsesAge(t *testing.T) {
	out := Generate(will.TrustLifeInterest, "T", "B", "30", "")
	require.Contains(t, out, "contingent upon attaining age 30")
}

func TestGenerate_PropertyProtectionStructure(t *testing.T) {
	out := Generate(will.TrustPropertyProtection, "", "my partner", "", "")
	require.True(t, strings.HasPrefix(out, "I give my share and interest in my main residence"))
	require.Contains(t, out, "1. Right of Occupation: my partner may occupy")
	require.Contains(t, out, "3. Remainder:")
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(will.TrustDiscretionary, "T", "B", "18", "")
	b := Generate(will.TrustDiscretionary, "T", "B", "18", "")
	require.Equal(t, a, b)
}

func TestGenerate_SpecialIsIgnored(t *testing.T) {
	a := Generate(will.TrustDiscretionary, "T", "B", "18", "")
	b := Generate(will.TrustDiscretionary, "T", "B", "18", "some future clause customisation")
	require.Equal(t, a, b)
}
