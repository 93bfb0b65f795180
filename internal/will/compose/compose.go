package compose

import (
	"fmt"
	"strings"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
)

// Kind tells the renderer which style a block takes.
type Kind int

const (
	KindTitle Kind = iota
	KindSection
	KindSignature
	KindDisclaimer
)

// Block is one titled unit of the composed document. Sections carry a
// numbered heading; the title, signature and disclaimer blocks do not.
type Block struct {
	Kind    Kind
	Heading string
	Paras   []string
}

// section describes one conditional part of the will in its fixed position.
// Numbering is assigned at compose time to included sections only.
type section struct {
	heading string
	include func(*will.Will) bool
	body    func(*will.Will) []string
}

var sections = []section{
	{
		heading: "Personal Details",
		include: func(w *will.Will) bool { return w.DOB != "" || w.Address != "" },
		body: func(w *will.Will) []string {
			var lines []string
			if w.DOB != "" {
				lines = append(lines, "Date of Birth: "+w.DOB)
			}
			if w.Address != "" {
				lines = append(lines, "Address: "+w.Address)
			}
			return lines
		},
	},
	{
		heading: "Appointment of Executors",
		include: func(w *will.Will) bool { return w.Executors != "" },
		body:    func(w *will.Will) []string { return []string{w.Executors} },
	},
	{
		heading: "Appointment of Guardians",
		include: func(w *will.Will) bool { return w.Guardians != "" },
		body:    func(w *will.Will) []string { return []string{w.Guardians} },
	},
	{
		heading: "Specific Gifts & Legacies",
		include: func(w *will.Will) bool { return w.Gifts != "" },
		body:    func(w *will.Will) []string { return []string{w.Gifts} },
	},
	{
		heading: "Residuary Estate",
		include: func(w *will.Will) bool { return w.Residuary != "" },
		body:    func(w *will.Will) []string { return []string{w.Residuary} },
	},
	{
		heading: "Trust Provisions",
		include: func(w *will.Will) bool { return w.TrustType != will.TrustNone && w.TrustText != "" },
		body:    func(w *will.Will) []string { return splitParagraphs(w.TrustText) },
	},
}

var signatureLines = []string{
	"Executed as a Will on the date of signature below.",
	"Signed by the Testator in the presence of:",
	"______________________________    ______________________________",
	"Testator Signature                      Date",
	"Witness 1: Name/Address/Signature",
	"Witness 2: Name/Address/Signature",
}

const disclaimer = "This document is generated from template wording and is provided for review. " +
	"You are responsible for ensuring legal suitability and witnessing in accordance with applicable law."

// Compose turns a record into the ordered block sequence the renderer
// consumes. Pure: identical records compose to identical sequences.
func Compose(w *will.Will) []Block {
	blocks := []Block{{Kind: KindTitle, Heading: "Last Will and Testament of " + w.ClientName}}

	num := 0
	for _, s := range sections {
		if !s.include(w) {
			continue
		}
		num++
		blocks = append(blocks, Block{
			Kind:    KindSection,
			Heading: fmt.Sprintf("%d. %s", num, s.heading),
			Paras:   s.body(w),
		})
	}

	blocks = append(blocks,
		Block{Kind: KindSignature, Paras: signatureLines},
		Block{Kind: KindDisclaimer, Paras: []string{disclaimer}},
	)
	return blocks
}

// splitParagraphs splits text into maximal runs of non-blank lines separated
// by at least one fully blank line.
func splitParagraphs(text string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}
