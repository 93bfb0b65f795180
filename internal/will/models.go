package will

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TrustType is the closed set of trust selections a client can make on the
// submission form. Anything outside the set is treated as TrustNone.
type TrustType string

const (
	TrustNone               TrustType = "None"
	TrustDiscretionary      TrustType = "Discretionary Trust"
	TrustLifeInterest       TrustType = "Life Interest Trust"
	TrustPropertyProtection TrustType = "Property Protection Trust"
)

// TrustTypes returns the enumeration in form-display order.
func TrustTypes() []TrustType {
	return []TrustType{TrustNone, TrustDiscretionary, TrustLifeInterest, TrustPropertyProtection}
}

// ParseTrustType maps a raw form value onto the enumeration. Unknown values
// fall back to TrustNone rather than erroring.
func ParseTrustType(s string) TrustType {
	switch TrustType(strings.TrimSpace(s)) {
	case TrustDiscretionary:
		return TrustDiscretionary
	case TrustLifeInterest:
		return TrustLifeInterest
	case TrustPropertyProtection:
		return TrustPropertyProtection
	}
	return TrustNone
}

// Will is the persisted record of one client's estate-planning submission.
// Records are immutable after creation except for PDFFilename, which is set
// once after the first successful render.
type Will struct {
	ID        int64     `json:"id" bson:"id"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// Client details
	ClientName string `json:"clientName" bson:"clientName"`
	DOB        string `json:"dob,omitempty" bson:"dob,omitempty"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`

	// Will content; an empty field means the section is omitted
	Executors string `json:"executors,omitempty" bson:"executors,omitempty"`
	Guardians string `json:"guardians,omitempty" bson:"guardians,omitempty"`
	Gifts     string `json:"gifts,omitempty" bson:"gifts,omitempty"`
	Residuary string `json:"residuary,omitempty" bson:"residuary,omitempty"`

	// Trust selection and the derived clause wording
	TrustType TrustType `json:"trustType" bson:"trustType"`
	TrustText string    `json:"trustText,omitempty" bson:"trustText,omitempty"`

	// Output
	PDFFilename string `json:"pdfFilename,omitempty" bson:"pdfFilename,omitempty"`
}

// Submission carries the raw form fields for a new will. The trust parameter
// fields feed clause generation and are not stored on the record themselves.
type Submission struct {
	ClientName string `json:"clientName"`
	DOB        string `json:"dob"`
	Address    string `json:"address"`
	Executors  string `json:"executors"`
	Guardians  string `json:"guardians"`
	Gifts      string `json:"gifts"`
	Residuary  string `json:"residuary"`

	TrustType      string `json:"trustType"`
	Trustees       string `json:"trustees"`
	Beneficiaries  string `json:"beneficiaries"`
	AgeOfAccess    string `json:"ageOfAccess"`
	SpecialClauses string `json:"specialClauses"`
}

var ErrClientNameRequired = errors.New("client name is required")

// Validate checks the submission before any record is created.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.ClientName) == "" {
		return ErrClientNameRequired
	}
	return nil
}

// ArtifactFilename returns the storage key for a record's rendered PDF.
func ArtifactFilename(prefix string, id int64) string {
	if prefix == "" {
		prefix = "will"
	}
	return fmt.Sprintf("%s_%d.pdf", prefix, id)
}
