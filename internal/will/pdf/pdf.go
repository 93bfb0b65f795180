// Package pdf renders a composed block sequence into a paginated A4 PDF.
package pdf

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mycrmsystems/elatco-will-system/internal/will/compose"
)

const (
	fontFamily   = "Arial"
	marginSide   = 18 // mm
	marginTopBot = 16 // mm
)

// signatureGaps is the vertical spacing (mm) inserted after each line of the
// execution block, mirroring the document layout of the generated wills.
var signatureGaps = []float64{14, 8, 0, 12, 6, 0}

// Render produces the PDF bytes for a block sequence. Output is
// byte-deterministic for a given sequence (document dates are pinned) and
// pagination is left to fpdf's automatic page breaks. User text is drawn
// through fpdf's text primitives, so PDF-reserved characters stay literal
// and cannot alter document structure. Any renderer fault aborts the whole
// render; no partial output is returned.
func Render(blocks []compose.Block) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginSide, marginTopBot, marginSide)
	doc.SetAutoPageBreak(true, marginTopBot)
	// pin document metadata dates so identical input renders identical bytes
	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	doc.SetCreationDate(epoch)
	doc.SetModificationDate(epoch)
	// sort catalog objects; otherwise fpdf emits fonts in map order and the
	// bytes vary between renders of the same sequence
	doc.SetCatalogSort(true)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, b := range blocks {
		switch b.Kind {
		case compose.KindTitle:
			doc.SetFont(fontFamily, "B", 16)
			doc.MultiCell(0, 8, tr(b.Heading), "", "C", false)
			doc.Ln(4)
		case compose.KindSection:
			doc.SetFont(fontFamily, "B", 12)
			doc.MultiCell(0, 6, tr(b.Heading), "", "L", false)
			doc.SetFont(fontFamily, "", 10)
			for _, p := range b.Paras {
				doc.MultiCell(0, 5, tr(p), "", "L", false)
				doc.Ln(2)
			}
			doc.Ln(2)
		case compose.KindSignature:
			doc.Ln(6)
			doc.SetFont(fontFamily, "", 10)
			for i, line := range b.Paras {
				doc.MultiCell(0, 5, tr(line), "", "L", false)
				if i < len(signatureGaps) && signatureGaps[i] > 0 {
					doc.Ln(signatureGaps[i])
				}
			}
		case compose.KindDisclaimer:
			doc.Ln(10)
			doc.SetFont(fontFamily, "", 8)
			for _, p := range b.Paras {
				doc.MultiCell(0, 4, tr(p), "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
