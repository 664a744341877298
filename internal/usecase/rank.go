package usecase

import (
	"sort"

	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/usecase/dto"
)

// FilterRank returns the places passing every filter predicate, ordered by
// ascending distance to the route. Ties are broken by descending rating and
// then by stable input order. Places without a rating pass the rating filter
// only when no minimum is set; places without a price level always pass the
// price filter.
func FilterRank(places []domain.PlaceWithDistance, f dto.SearchFilters) []domain.PlaceWithDistance {
	result := make([]domain.PlaceWithDistance, 0, len(places))

	for _, p := range places {
		if f.MaxDistanceMeters != nil && p.DistanceMeters > *f.MaxDistanceMeters {
			continue
		}
		if f.MinRating > 0 && (p.Rating == nil || *p.Rating < f.MinRating) {
			continue
		}
		if len(f.PriceLevels) > 0 && p.PriceLevel != "" && !containsString(f.PriceLevels, p.PriceLevel) {
			continue
		}
		if f.OpenNow && (p.OpenNow == nil || !*p.OpenNow) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].DistanceMeters != result[j].DistanceMeters {
			return result[i].DistanceMeters < result[j].DistanceMeters
		}
		return ratingValue(result[i].Rating) > ratingValue(result[j].Rating)
	})

	return result
}

func ratingValue(r *float64) float64 {
	if r == nil {
		return 0
	}
	return *r
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
