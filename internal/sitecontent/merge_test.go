package sitecontent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDoc(t *testing.T) []byte {
	t.Helper()
	doc := Default()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestMergeSectionPreservesUntouchedFields(t *testing.T) {
	raw := defaultDoc(t)

	partial := map[string]json.RawMessage{
		"heroTitle": json.RawMessage(`"A New Headline"`),
	}
	merged, err := MergeSection(raw, "home", partial)
	require.NoError(t, err)

	var doc SiteContent
	require.NoError(t, json.Unmarshal(merged, &doc))

	orig := Default()
	assert.Equal(t, "A New Headline", doc.Home.HeroTitle)
	assert.Equal(t, orig.Home.HeroSubtitle, doc.Home.HeroSubtitle)
	assert.Equal(t, orig.Home.Services, doc.Home.Services)
	assert.Equal(t, orig.About, doc.About, "other sections untouched")
}

func TestMergeSectionReplacesArraysWholesale(t *testing.T) {
	raw := defaultDoc(t)
	require.Greater(t, len(Default().Home.Services), 1, "defaults must seed multiple services")

	partial := map[string]json.RawMessage{
		"services": json.RawMessage(`[{"icon":"key","title":"Only One","description":"left standing"}]`),
	}
	merged, err := MergeSection(raw, "home", partial)
	require.NoError(t, err)

	var doc SiteContent
	require.NoError(t, json.Unmarshal(merged, &doc))
	require.Len(t, doc.Home.Services, 1)
	assert.Equal(t, "Only One", doc.Home.Services[0].Title)
}

func TestMergeDocument(t *testing.T) {
	raw := defaultDoc(t)

	partial := map[string]map[string]json.RawMessage{
		"home":    {"heroTitle": json.RawMessage(`"Two Sections"`)},
		"contact": {"phone": json.RawMessage(`"(480) 555-0199"`)},
	}
	merged, err := MergeDocument(raw, partial)
	require.NoError(t, err)

	var doc SiteContent
	require.NoError(t, json.Unmarshal(merged, &doc))
	assert.Equal(t, "Two Sections", doc.Home.HeroTitle)
	assert.Equal(t, "(480) 555-0199", doc.Contact.Phone)
	assert.Equal(t, Default().Contact.Email, doc.Contact.Email)
}

func TestSectionNames(t *testing.T) {
	assert.Len(t, SectionNames, 10)
	for _, name := range SectionNames {
		assert.True(t, IsSection(name), name)
	}
	assert.False(t, IsSection("Home"))
	assert.False(t, IsSection(""))
}
