package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "one-piece", Slugify("One Piece"))
	assert.Equal(t, "solo-leveling", Slugify("  Solo   Leveling "))
	assert.Equal(t, "dr-stone", Slugify("Dr. Stone!"))
	assert.Equal(t, "chapter-101", Slugify("Chapter 101"))
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"One Piece", "already-a-slug", "Tower -- of God", "  "}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestSlugify_CaseAndWhitespaceCollapse(t *testing.T) {
	// Titles differing only by case/whitespace must collide.
	assert.Equal(t, Slugify("Berserk"), Slugify("  berserk "))
	assert.Equal(t, Slugify("Vinland Saga"), Slugify("vinland   SAGA"))
}

func TestSlugify_TrimsDashes(t *testing.T) {
	assert.Equal(t, "a-b", Slugify("--a--b--"))
	assert.Equal(t, "", Slugify("!!!"))
}
