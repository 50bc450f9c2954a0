// Package extract turns uploaded schedule documents into candidate events.
// Extractors have no conflict or consistency logic; their output is fed to
// the change executor like any other add.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

// Extractor is the document-extractor collaborator contract.
type Extractor interface {
	Extract(path string) ([]*models.Event, error)
}

// ForFile picks an extractor from the file extension.
func ForFile(path string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ics":
		return NewICSExtractor(), nil
	case ".json":
		return NewJSONExtractor(), nil
	default:
		return nil, fmt.Errorf("no extractor for %q (supported: .ics, .json)", filepath.Ext(path))
	}
}

// inferCategory guesses an event category from keywords in its title.
func inferCategory(title string) models.Category {
	lower := strings.ToLower(title)
	for _, cat := range []models.Category{
		models.CategoryLecture,
		models.CategoryLab,
		models.CategoryExam,
		models.CategoryMeeting,
		models.CategoryPractice,
	} {
		if strings.Contains(lower, string(cat)) {
			return cat
		}
	}
	return models.CategoryOther
}
