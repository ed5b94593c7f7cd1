package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.uber.org/zap"
)

const (
	subjectProperty = "property"

	// half width, in degrees, of the embedded map's bounding box
	mapSpan = 0.01
)

type PropertyDetail struct {
	Property    *domain.Property `json:"property"`
	ImageURLs   []string         `json:"imageUrls"`
	MapEmbedURL string           `json:"mapEmbedUrl"`
	MapURL      string           `json:"mapUrl"`
}

// GalleryView is one position in a property's image carousel.
type GalleryView struct {
	PropertyID string `json:"propertyId"`
	Index      int    `json:"index"`
	Count      int    `json:"count"`
	Next       int    `json:"next"`
	Prev       int    `json:"prev"`
	URL        string `json:"url"`
}

type PropertyUsecase struct {
	catalog Catalog
	lister  *Lister
	actions *ActionRunner
	images  domain.ImageResolver
	logger  *logger.Logger
}

// NewPropertyUsecase wires the property views. images may be nil, in which
// case stored references are returned unchanged.
func NewPropertyUsecase(cat Catalog, lister *Lister, actions *ActionRunner, images domain.ImageResolver, log *logger.Logger) *PropertyUsecase {
	return &PropertyUsecase{
		catalog: cat,
		lister:  lister,
		actions: actions,
		images:  images,
		logger:  log.Named("PropertyUsecase"),
	}
}

func (uc *PropertyUsecase) List(ctx context.Context, c filter.Criteria) (*ListResult[domain.Property, PropertyStats], error) {
	uc.logger.Debug("Listing properties", zap.String("q", c.Text), zap.Int("filters", len(c.Categorical)))
	res, err := list(ctx, uc.lister, "properties", propertySchema, uc.catalog.Properties(), c, computePropertyStats)
	if err != nil {
		uc.logger.Warn("Failed to list properties", zap.Error(err))
		return nil, err
	}
	return res, nil
}

// Pending returns every property still awaiting moderation.
func (uc *PropertyUsecase) Pending(ctx context.Context) []domain.Property {
	_, span := tracer.Start(ctx, "property.pending")
	defer span.End()
	return filter.Apply(uc.catalog.Properties(), (*domain.Property).PendingApproval)
}

func (uc *PropertyUsecase) Detail(ctx context.Context, id string) (*PropertyDetail, error) {
	ctx, span := tracer.Start(ctx, "property.detail")
	defer span.End()

	p, err := uc.catalog.Property(id)
	if err != nil {
		uc.logger.Warn("Property not found", zap.String("property_id", id))
		return nil, err
	}

	urls := make([]string, 0, len(p.Images))
	for _, ref := range p.Images {
		urls = append(urls, uc.resolve(ctx, ref))
	}
	embed, link := MapURLs(p.Location.Latitude, p.Location.Longitude)
	return &PropertyDetail{Property: p, ImageURLs: urls, MapEmbedURL: embed, MapURL: link}, nil
}

// Gallery returns the image at index, normalised into range, together with
// the neighbouring positions.
func (uc *PropertyUsecase) Gallery(ctx context.Context, id string, index int) (*GalleryView, error) {
	p, err := uc.catalog.Property(id)
	if err != nil {
		return nil, err
	}
	n := len(p.Images)
	i, err := Normalize(index, n)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", id, err)
	}
	next, _ := Next(i, n)
	prev, _ := Prev(i, n)
	return &GalleryView{
		PropertyID: id,
		Index:      i,
		Count:      n,
		Next:       next,
		Prev:       prev,
		URL:        uc.resolve(ctx, p.Images[i]),
	}, nil
}

func (uc *PropertyUsecase) resolve(ctx context.Context, ref string) string {
	if uc.images == nil {
		return ref
	}
	url, err := uc.images.ResolveURL(ctx, ref)
	if err != nil {
		uc.logger.Warn("Failed to resolve image URL, using stored reference", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	return url
}

// Approve simulates accepting a listing. Only pending listings can be approved.
func (uc *PropertyUsecase) Approve(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "approve", subjectProperty, id, func(context.Context) (*domain.Notification, error) {
		p, err := uc.catalog.Property(id)
		if err != nil {
			return nil, err
		}
		if !p.PendingApproval() {
			return nil, fmt.Errorf("%w: property %s is already approved", domain.ErrInvalidInput, id)
		}
		return &domain.Notification{
			Title:       "Propriété approuvée",
			Description: fmt.Sprintf("%q a été approuvée avec succès.", p.Title),
			Variant:     domain.VariantDefault,
		}, nil
	})
}

// Reject simulates refusing a listing. The reason is optional and, when
// given, is appended to the notification.
func (uc *PropertyUsecase) Reject(ctx context.Context, id, reason string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "reject", subjectProperty, id, func(context.Context) (*domain.Notification, error) {
		p, err := uc.catalog.Property(id)
		if err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("%q a été rejetée.", p.Title)
		if r := strings.TrimSpace(reason); r != "" {
			desc += " Motif : " + r
		}
		return &domain.Notification{
			Title:       "Propriété rejetée",
			Description: desc,
			Variant:     domain.VariantDestructive,
		}, nil
	})
}

func (uc *PropertyUsecase) Delete(ctx context.Context, id string) (*domain.Notification, error) {
	return uc.actions.Run(ctx, "delete", subjectProperty, id, func(context.Context) (*domain.Notification, error) {
		p, err := uc.catalog.Property(id)
		if err != nil {
			return nil, err
		}
		return &domain.Notification{
			Title:       "Propriété supprimée",
			Description: fmt.Sprintf("%q a été supprimée définitivement.", p.Title),
			Variant:     domain.VariantDestructive,
		}, nil
	})
}

// MapURLs returns the OpenStreetMap embed URL and the full map link for a
// coordinate.
func MapURLs(lat, lon float64) (embed, link string) {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	embed = fmt.Sprintf("https://www.openstreetmap.org/export/embed.html?bbox=%s,%s,%s,%s&layer=mapnik&marker=%s,%s",
		f(lon-mapSpan), f(lat-mapSpan), f(lon+mapSpan), f(lat+mapSpan), f(lat), f(lon))
	link = fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=15/%s/%s", f(lat), f(lon), f(lat), f(lon))
	return embed, link
}
