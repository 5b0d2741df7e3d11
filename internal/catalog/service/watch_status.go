package service

import (
	"fmt"
	"strings"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWatchStatus title-cases raw and maps it onto the canonical
// spelling when it names one of the known statuses. In strict mode any
// other value is rejected; otherwise the title-cased text is returned.
func NormalizeWatchStatus(raw string, strict bool) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidWatchStatus)
	}
	titled := cases.Title(language.Und).String(strings.Join(fields, " "))

	for _, canonical := range models.WatchStatuses() {
		if strings.EqualFold(titled, canonical) {
			return canonical, nil
		}
	}
	if strict {
		return "", fmt.Errorf("%w: %q (want one of %s)",
			ErrInvalidWatchStatus, raw, strings.Join(models.WatchStatuses(), ", "))
	}
	return titled, nil
}
