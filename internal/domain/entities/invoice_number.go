package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DefaultInvoiceNumberTemplate = "INV-{YYYY}{MM}{DD}-{SEQ6}"

var paddedSeqToken = regexp.MustCompile(`\{SEQ(\d+)\}`)

// FormatInvoiceNumber renders a human-readable invoice number (also used as the payment
// reference) from a template, the issue date and a sequence value.
//
// Supported tokens: {YYYY} {YY} {MM} {DD} {SEQ} {SEQn} (zero padded to n digits).
func FormatInvoiceNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	issuedAt = issuedAt.UTC()
	out := strings.NewReplacer(
		"{YYYY}", issuedAt.Format("2006"),
		"{YY}", issuedAt.Format("06"),
		"{MM}", issuedAt.Format("01"),
		"{DD}", issuedAt.Format("02"),
		"{SEQ}", strconv.FormatInt(seq, 10),
	).Replace(template)

	out = paddedSeqToken.ReplaceAllStringFunc(out, func(tok string) string {
		width, err := strconv.Atoi(paddedSeqToken.FindStringSubmatch(tok)[1])
		if err != nil || width <= 0 {
			return tok
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in invoice number template: %s", out)
	}
	return out, nil
}
