package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"greeting halo", "halo", Greeting},
		{"greeting uppercase", "HALO kak", Greeting},
		{"greeting time of day", "selamat pagi", Greeting},
		{"thanks", "oke makasih banyak", Thanks},
		{"thanks english", "thank you so much", Thanks},
		{"goodbye", "ya sudah, bye", Goodbye},
		{"goodbye quit", "quit", Goodbye},
		{"venting", "aku capek banget hari ini", Venting},
		{"no match", "berapa biaya ganti layar", None},
		{"empty", "", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Substring containment is the contract: a keyword inside an unrelated
// word still triggers. "hai" inside "mempertahaikan" must classify as
// a greeting.
func TestClassifySubstringContainment(t *testing.T) {
	assert.Equal(t, Greeting, Classify("mempertahaikan"))
	assert.Equal(t, Goodbye, Classify("goodbye semua"))
}

// When keywords from several intents appear, the fixed priority order
// decides: greeting before thanks before goodbye before venting.
func TestClassifyPriorityOrder(t *testing.T) {
	assert.Equal(t, Greeting, Classify("halo, makasih ya, bye"))
	assert.Equal(t, Thanks, Classify("makasih, bye"))
	assert.Equal(t, Goodbye, Classify("bye aku capek"))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "greeting", Greeting.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "venting", Venting.String())
}
