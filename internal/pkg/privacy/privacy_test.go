package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrubFullExample(t *testing.T) {
	input := "Contact John Smith at john.smith@example.com or 555-123-4567, SSN 123-45-6789, 123 Main Street."
	expected := "Contact [NAME] at [EMAIL] or [PHONE], SSN [SSN], [ADDRESS]."

	assert.Equal(t, expected, Scrub(input))
}

func TestScrubIdempotent(t *testing.T) {
	input := "Contact John Smith at john.smith@example.com or 555-123-4567, SSN 123-45-6789, 123 Main Street."
	once := Scrub(input)

	assert.Equal(t, once, Scrub(once))
}

func TestScrubNameMidSentence(t *testing.T) {
	assert.Equal(t,
		"The tenant, [NAME], agrees to the terms.",
		Scrub("The tenant, Jane Doe, agrees to the terms."),
	)
}

func TestScrubNameAtSentenceStart(t *testing.T) {
	// A capitalized run opening a sentence keeps its leading word so common
	// sentence openers are not swallowed into the placeholder.
	assert.Equal(t, "Contact [NAME] for details.", Scrub("Contact John Smith for details."))
}

func TestScrubStreetNameNotTreatedAsPerson(t *testing.T) {
	// "Oak Avenue" looks like a name run but belongs to the address pass.
	assert.Equal(t, "Deliveries go to [ADDRESS].", Scrub("Deliveries go to 42 Oak Avenue."))
}

func TestScrubSSNBeforePhone(t *testing.T) {
	assert.Equal(t, "[SSN] then [PHONE]", Scrub("987-65-4321 then 800-555-0199"))
}

func TestScrubEmailVariants(t *testing.T) {
	assert.Equal(t, "[EMAIL] and [EMAIL]", Scrub("a.b+c@sub.example.co and plain@example.com"))
}

func TestScrubNoMatches(t *testing.T) {
	input := "this agreement renews annually unless terminated."
	assert.Equal(t, input, Scrub(input))
}
