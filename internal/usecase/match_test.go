package usecase

import (
	"testing"

	"comicshelf/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBestMatch(t *testing.T) {
	comic := entity.Comic{Title: "Amazing Spider-Man", Issue: "300"}

	t.Run("first candidate matching both predicates wins", func(t *testing.T) {
		candidates := []entity.CatalogCandidate{
			{ExternalID: 1, IssueNumber: "#300", VolumeName: "Amazing Spider-Man"},
			{ExternalID: 2, IssueNumber: "300", VolumeName: "Web of Spider-Man"},
		}

		got := bestMatch(comic, candidates)

		assert.Equal(t, 1, got.ExternalID)
	})

	t.Run("selection is first-match-wins, not best-score-wins", func(t *testing.T) {
		// The second candidate is a verbatim issue and exact volume
		// match, but the first already satisfies both predicates.
		candidates := []entity.CatalogCandidate{
			{ExternalID: 1, IssueNumber: "#300", VolumeName: "The Amazing Spider-Man Annual"},
			{ExternalID: 2, IssueNumber: "300", VolumeName: "Amazing Spider-Man"},
		}

		got := bestMatch(comic, candidates)

		assert.Equal(t, 1, got.ExternalID)
	})

	t.Run("skips candidates matching only one predicate", func(t *testing.T) {
		candidates := []entity.CatalogCandidate{
			{ExternalID: 1, IssueNumber: "300", VolumeName: "Batman"},
			{ExternalID: 2, IssueNumber: "12", VolumeName: "Amazing Spider-Man"},
			{ExternalID: 3, IssueNumber: "300", VolumeName: "Spider-Man"},
		}

		// Candidate 3: issue matches verbatim, and the comic title
		// contains "Spider-Man".
		got := bestMatch(comic, candidates)

		assert.Equal(t, 3, got.ExternalID)
	})

	t.Run("falls back to the first candidate when nothing dual-matches", func(t *testing.T) {
		candidates := []entity.CatalogCandidate{
			{ExternalID: 1, IssueNumber: "5", VolumeName: "Batman"},
			{ExternalID: 2, IssueNumber: "7", VolumeName: "Superman"},
		}

		got := bestMatch(comic, candidates)

		assert.Equal(t, 1, got.ExternalID)
	})
}

func TestIssueMatches(t *testing.T) {
	tests := []struct {
		name           string
		comicIssue     string
		candidateIssue string
		want           bool
	}{
		{"verbatim", "300", "300", true},
		{"hash prefixed", "300", "#300", true},
		{"candidate inside comic designator", "300a", "300", true},
		{"annual designator contains number", "Annual 1", "1", true},
		{"different number", "300", "301", false},
		{"empty candidate", "300", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, issueMatches(tt.comicIssue, tt.candidateIssue))
		})
	}
}

func TestTitleMatches(t *testing.T) {
	tests := []struct {
		name       string
		comicTitle string
		volumeName string
		want       bool
	}{
		{"volume contains title", "Amazing Spider-Man", "The Amazing Spider-Man", true},
		{"title contains volume", "The Amazing Spider-Man", "Amazing Spider-Man", true},
		{"case insensitive", "amazing spider-man", "AMAZING SPIDER-MAN", true},
		{"unrelated", "Amazing Spider-Man", "Batman", false},
		{"empty volume", "Amazing Spider-Man", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleMatches(tt.comicTitle, tt.volumeName))
		})
	}
}
