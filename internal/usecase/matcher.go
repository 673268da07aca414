package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/cartscope/backend/internal/domain"
)

// MatcherConfig holds configuration for the fuzzy product matcher
type MatcherConfig struct {
	ScoreThreshold        float64
	MaxResults            int
	MaxSuggestionDistance float64
	EnableDebugLogging    bool
}

// MatcherService ranks catalog products against free-text queries and
// suggests spelling corrections when nothing relevant is found.
type MatcherService struct {
	scoreThreshold        float64
	maxResults            int
	maxSuggestionDistance float64
	enableDebugLogging    bool
}

// NewMatcherService creates a new matcher service with the given configuration
func NewMatcherService(config MatcherConfig) *MatcherService {
	threshold := config.ScoreThreshold
	if threshold <= 0 {
		threshold = 0.5 // Default relevance threshold
	}

	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = 10 // Default result cap
	}

	maxDist := config.MaxSuggestionDistance
	if maxDist <= 0 {
		maxDist = 0.4 // Suggest only when tokens are < 40% different
	}

	return &MatcherService{
		scoreThreshold:        threshold,
		maxResults:            maxResults,
		maxSuggestionDistance: maxDist,
		enableDebugLogging:    config.EnableDebugLogging,
	}
}

// Search scores every catalog product against the query and returns the
// candidates at or above the relevance threshold, best first. Ties keep
// catalog order, so identical snapshots always rank identically.
func (s *MatcherService) Search(ctx context.Context, catalog []domain.Product, query string) []domain.MatchCandidate {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var candidates []domain.MatchCandidate
	for _, product := range catalog {
		select {
		case <-ctx.Done():
			return candidates
		default:
		}

		score := wordSimilarity(product.Keywords, query)
		if score >= s.scoreThreshold {
			candidates = append(candidates, domain.MatchCandidate{Product: product, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > s.maxResults {
		candidates = candidates[:s.maxResults]
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] query %q: %d candidates above %.2f", query, len(candidates), s.scoreThreshold)
	}

	return candidates
}

// SuggestCorrection finds the vocabulary word closest to the query by
// normalized edit distance. It returns "" when no correction is needed
// (some vocabulary entry already contains the query), the query is too
// short, or nothing in the vocabulary is close enough. At most one
// suggestion is returned: the single closest token across the whole
// vocabulary, not one per query word.
func (s *MatcherService) SuggestCorrection(query string, vocabulary []string) string {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if len(queryLower) < minTokenLength {
		return ""
	}

	for _, entry := range vocabulary {
		if strings.Contains(strings.ToLower(entry), queryLower) {
			return "" // direct matches exist, no correction needed
		}
	}

	closest := ""
	minDistance := s.maxSuggestionDistance

	for _, inputWord := range strings.Fields(queryLower) {
		if len(inputWord) < minTokenLength {
			continue
		}

		for _, entry := range vocabulary {
			for _, word := range strings.Fields(strings.ToLower(entry)) {
				if len(word) < minTokenLength {
					continue
				}

				distance := normalizedEditDistance(inputWord, word)
				if distance < minDistance {
					minDistance = distance
					closest = word
				}
			}
		}
	}

	if closest == "" || closest == queryLower {
		return ""
	}

	if s.enableDebugLogging {
		log.Printf("[SUGGEST] %q -> %q (distance %.3f)", query, closest, minDistance)
	}

	return closest
}

// ResolveFreeTextItems matches recognized text fragments (OCR lines,
// pasted shopping lists) to catalog products. Each fragment takes its
// top-scoring candidate; a product already claimed by an earlier
// fragment is not matched twice. Matched products keep fragment input
// order. Blank fragments are skipped entirely.
func (s *MatcherService) ResolveFreeTextItems(ctx context.Context, fragments []string, catalog []domain.Product) *domain.ResolveResult {
	result := &domain.ResolveResult{}
	seen := make(map[string]bool)

	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		candidates := s.Search(ctx, catalog, fragment)

		matched := false
		if len(candidates) > 0 {
			top := candidates[0].Product
			if !seen[top.ID] {
				seen[top.ID] = true
				result.Matched = append(result.Matched, top)
				matched = true
			}
		}

		if !matched {
			result.Unmatched = append(result.Unmatched, fragment)
		}

		if s.enableDebugLogging {
			log.Printf("[RESOLVE] fragment %q matched=%v", fragment, matched)
		}
	}

	return result
}
