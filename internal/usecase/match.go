package usecase

import (
	"strings"

	"comicshelf/internal/entity"
)

// bestMatch selects a catalog candidate for a comic. Candidates are
// scanned in the order the catalog returned them and the first one whose
// issue AND volume both match wins. When nothing satisfies both
// predicates the first candidate is used as a fallback, matching the
// behavior the collection UI has always relied on.
func bestMatch(comic entity.Comic, candidates []entity.CatalogCandidate) entity.CatalogCandidate {
	for _, c := range candidates {
		if issueMatches(comic.Issue, c.IssueNumber) && titleMatches(comic.Title, c.VolumeName) {
			return c
		}
	}
	return candidates[0]
}

// issueMatches accepts a verbatim match, a "#"-prefixed form, or the
// candidate number appearing inside the comic's issue designator.
func issueMatches(comicIssue, candidateIssue string) bool {
	if candidateIssue == "" {
		return false
	}
	if candidateIssue == comicIssue || candidateIssue == "#"+comicIssue {
		return true
	}
	return strings.Contains(comicIssue, candidateIssue)
}

// titleMatches checks case-insensitive containment in either direction
// between the comic title and the candidate's parent volume name.
func titleMatches(comicTitle, volumeName string) bool {
	if volumeName == "" {
		return false
	}
	title := strings.ToLower(comicTitle)
	volume := strings.ToLower(volumeName)
	return strings.Contains(volume, title) || strings.Contains(title, volume)
}
