package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"adjaoko/app/domains"
	"adjaoko/app/dto"
	"adjaoko/app/session"
	"adjaoko/app/storage"
)

// ListingService drives the post and browse flows.
type ListingService struct {
	remote *RemoteStore
	cache  *storage.Cache
	holder *session.Holder
	logger *zap.Logger
}

// NewListingService creates a listing service.
func NewListingService(remote *RemoteStore, cache *storage.Cache, holder *session.Holder, logger *zap.Logger) *ListingService {
	return &ListingService{
		remote: remote,
		cache:  cache,
		holder: holder,
		logger: logger,
	}
}

// Post publishes a harvest listing for the signed-in user. The listing is
// stamped with the posting time, active status and the session user's id;
// on success it is written through to the cache for offline availability.
func (s *ListingService) Post(ctx context.Context, form dto.PostListingRequest) (*domains.Listing, error) {
	sess := s.holder.Session()
	if sess == nil || sess.User == nil || sess.User.ID == "" {
		return nil, ErrNotAuthenticated
	}

	unit := form.Unit
	if unit == "" {
		unit = "kg"
	}

	listing := domains.Listing{
		CropType:    form.CropType,
		Quantity:    form.Quantity,
		Unit:        unit,
		Location:    form.Location,
		Price:       form.Price,
		Contact:     form.Contact,
		Description: form.Description,
		DatePosted:  time.Now().UTC().Format(time.RFC3339),
		Status:      domains.ListingStatusActive,
		UserID:      sess.User.ID,
	}

	created, err := s.remote.InsertListing(ctx, listing)
	if err != nil {
		return nil, err
	}

	s.cache.AddListing(ctx, *created)
	return created, nil
}

// BrowseFilter narrows the browse results. Search matches the French crop
// label or the location, case-insensitively; Crop and Location match
// exactly.
type BrowseFilter struct {
	Search   string
	Crop     string
	Location string
}

// Browse returns the current listings, filtered. A remote failure degrades
// to an empty result so the screen stays renderable.
func (s *ListingService) Browse(ctx context.Context, filter BrowseFilter) []domains.Listing {
	listings, err := s.remote.ListListings(ctx)
	if err != nil {
		s.logger.Error("failed to load listings", zap.Error(err))
		return []domains.Listing{}
	}
	return FilterListings(listings, filter)
}

// FilterListings applies the browse filter client-side.
func FilterListings(listings []domains.Listing, filter BrowseFilter) []domains.Listing {
	filtered := make([]domains.Listing, 0, len(listings))
	search := strings.ToLower(filter.Search)

	for _, listing := range listings {
		if search != "" {
			label := strings.ToLower(domains.CropLabel(listing.CropType))
			location := strings.ToLower(listing.Location)
			if !strings.Contains(label, search) && !strings.Contains(location, search) {
				continue
			}
		}
		if filter.Crop != "" && listing.CropType != filter.Crop {
			continue
		}
		if filter.Location != "" && listing.Location != filter.Location {
			continue
		}
		filtered = append(filtered, listing)
	}

	return filtered
}
