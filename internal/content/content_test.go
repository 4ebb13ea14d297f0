package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "5-ply-heavy-duty-boxes", Slugify("5-Ply Heavy Duty Boxes"))
	assert.Equal(t, "custom-printed-cartons", Slugify("  Custom Printed  Cartons  "))
}

func TestSlugWithSuffix(t *testing.T) {
	assert.Equal(t, "export-cartons", SlugWithSuffix("Export Cartons", 0))
	assert.Equal(t, "export-cartons-2", SlugWithSuffix("Export Cartons", 1))
	assert.Equal(t, "export-cartons-3", SlugWithSuffix("Export Cartons", 2))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 0, ReadTime(""))
	assert.Equal(t, 1, ReadTime("short post"))
	assert.Equal(t, 1, ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, ReadTime(strings.Repeat("word ", 1000)))
}
