package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameToDisplayName(t *testing.T) {
	cases := map[string]string{
		"devleta.brkic":  "Devleta Brkic",
		"amir":           "Amir",
		" sanja.kovac ":  "Sanja Kovac",
		"":               "",
	}
	for input, want := range cases {
		assert.Equal(t, want, UsernameToDisplayName(input), "input %q", input)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Devleta Brkić":  "devleta.brkic",
		"Amir Hodžić":    "amir.hodzic",
		"Sanja Đurić":    "sanja.duric",
		"Čedo Žuljević":  "cedo.zuljevic",
		"O'Neill":        "oneill",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "devleta.brkic", EmailLocalPart("devleta.brkic@rtv.ba"))
	assert.Equal(t, "bez-domene", EmailLocalPart("bez-domene"))
	assert.Equal(t, "", EmailLocalPart("@rtv.ba"))
}
