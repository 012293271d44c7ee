package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampSortsLexicographically(t *testing.T) {
	earlier := Timestamp(time.Date(2023, 9, 5, 8, 30, 0, 0, time.UTC))
	later := Timestamp(time.Date(2023, 10, 1, 7, 0, 0, 0, time.UTC))

	assert.Equal(t, "2023-09-05 08:30:00", earlier)
	assert.True(t, earlier < later, "timestamps must compare chronologically as strings")
}

func TestSortSaves(t *testing.T) {
	saves := []Save{
		{Name: "old", Timestamp: "2023-01-01 00:00:00"},
		{Name: "newest", Timestamp: "2023-06-01 12:00:00"},
		{Name: "b-mid", Timestamp: "2023-03-01 00:00:00"},
		{Name: "a-mid", Timestamp: "2023-03-01 00:00:00"},
	}

	SortSaves(saves)

	var names []string
	for _, s := range saves {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"newest", "a-mid", "b-mid", "old"}, names)
}

func TestDocumentLookups(t *testing.T) {
	doc := Document{
		Saves: []Save{{Name: "active", Directory: "id-1"}},
		Trash: []Save{{Name: "trashed", Directory: "id-2"}},
	}

	assert.Equal(t, 0, doc.FindSave("active"))
	assert.Equal(t, -1, doc.FindSave("trashed"))
	assert.Equal(t, 0, doc.FindTrashed("trashed"))
	assert.Equal(t, -1, doc.FindTrashed("active"))

	assert.True(t, doc.NameExists("active"))
	assert.True(t, doc.NameExists("trashed"))
	assert.False(t, doc.NameExists("missing"))
}

func TestConfigured(t *testing.T) {
	var doc Document
	assert.False(t, doc.Configured())

	doc.Config.NoitaRootDir = "/games/noita"
	assert.True(t, doc.Configured())
}
