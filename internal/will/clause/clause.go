package clause

import (
	"strings"
	"text/template"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
)

// Default wording used when the form leaves a trust parameter blank.
const (
	DefaultTrustees      = "the Trustees named in this Will"
	DefaultBeneficiaries = "the Beneficiaries named in this Will"
	DefaultAgeOfAccess   = "18"
)

// params are substituted verbatim into the clause templates. No escaping
// happens here; the PDF renderer owns output safety.
type params struct {
	Trustees      string
	Beneficiaries string
	Age           string
}

const discretionaryTmpl = `I give my Residuary Estate to {{.Trustees}} to hold upon discretionary trusts for the benefit of {{.Beneficiaries}} (the "Discretionary Beneficiaries").

1. Discretion: The Trustees may at their absolute discretion apply income and/or capital for any one or more of the Discretionary Beneficiaries in such shares and at such times as they think fit.
2. Accumulation: Income not applied may be accumulated and added to capital during the trust period.
3. Default Beneficiaries: Subject to the above, the trust fund shall be held for {{.Beneficiaries}} equally at the end of the trust period.
4. Letter of Wishes: The Trustees shall have regard to any Letter of Wishes I may leave.`

const lifeInterestTmpl = `I give my interest in the Trust Fund to {{.Trustees}} on trust to pay or apply the income thereof to or for the benefit of {{.Beneficiaries}} (the "Life Tenant") for life, with power to advance capital for the Life Tenant's benefit at the Trustees' discretion. Subject thereto, on the Life Tenant's death the Trust Fund shall be held for the remaindermen as my Trustees shall appoint or, failing such appointment, equally between my issue contingent upon attaining age {{.Age}}.`

const propertyProtectionTmpl = `I give my share and interest in my main residence to {{.Trustees}} to hold upon the following trusts:

1. Right of Occupation: {{.Beneficiaries}} may occupy the property for life or until vacated, subject to reasonable conditions as to insurance, repairs and outgoings.
2. Power to Sell and Reinvest: The Trustees may sell, purchase or invest in an alternative residence for occupation on the same terms.
3. Remainder: On termination of the right of occupation, the Trust Fund shall be held for my residuary beneficiaries equally or as my Trustees shall appoint.`

// one fixed template per trust category
var templates = map[will.TrustType]*template.Template{
	will.TrustDiscretionary:      template.Must(template.New("discretionary").Parse(discretionaryTmpl)),
	will.TrustLifeInterest:       template.Must(template.New("life-interest").Parse(lifeInterestTmpl)),
	will.TrustPropertyProtection: template.Must(template.New("property-protection").Parse(propertyProtectionTmpl)),
}

// Generate returns the clause wording for the chosen trust type. Categories
// outside the enumeration (including TrustNone) yield an empty string.
// Blank parameters fall back to the documented generic wording. The special
// parameter is accepted for forward compatibility and does not affect
// output. The wording is template text only; legal suitability is the
// caller's responsibility.
func Generate(trustType will.TrustType, trustees, beneficiaries, ageOfAccess, special string) string {
	tmpl, ok := templates[trustType]
	if !ok {
		return ""
	}
	_ = special

	p := params{
		Trustees:      strings.TrimSpace(trustees),
		Beneficiaries: strings.TrimSpace(beneficiaries),
		Age:           strings.TrimSpace(ageOfAccess),
	}
	if p.Trustees == "" {
		p.Trustees = DefaultTrustees
	}
	if p.Beneficiaries == "" {
		p.Beneficiaries = DefaultBeneficiaries
	}
	if p.Age == "" {
		p.Age = DefaultAgeOfAccess
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		// templates are static and parameters are plain strings; Execute
		// cannot fail here
		return ""
	}
	return b.String()
}
