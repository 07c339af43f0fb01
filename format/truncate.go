package format

import "fmt"

// MaxOutputChars is the hard ceiling on any tool output. It protects a
// downstream consumer with a bounded context window; it is not a domain
// correctness requirement.
const MaxOutputChars = 25000

// truncationReserve leaves room for the truncation marker so the final
// output stays under MaxOutputChars.
const truncationReserve = 200

// Truncate cuts text exceeding MaxOutputChars at MaxOutputChars minus the
// reserve and appends an explicit marker carrying the original length.
// Truncate is idempotent and the identity for text within the budget.
func Truncate(text string) string {
	if len(text) <= MaxOutputChars {
		return text
	}
	cut := text[:MaxOutputChars-truncationReserve]
	return cut + fmt.Sprintf("... [output truncated, original length %d characters]", len(text))
}
