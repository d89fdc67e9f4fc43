package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Build your own computer": "build-your-own-computer",
		"  Leading and trailing  ": "leading-and-trailing",
		"Łódź Voivodeship":        "odz-voivodeship",
		"Café au lait":            "cafe-au-lait",
		"Price: $25.00!":          "price-25-00",
		"already-a-slug":          "already-a-slug",
		"":                        "",
		"---":                     "",
	}

	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	a := GenerateSlug("Test")
	b := GenerateSlug("Test")
	assert.Equal(t, a, b)
	assert.Equal(t, "test", a)
}
