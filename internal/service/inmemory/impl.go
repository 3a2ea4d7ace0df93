// Package inmemory provides the CatalogService implementation that serves
// the synced catalog from memory
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/readmode-server/internal/catalog"
	"github.com/stacklok/readmode-server/internal/filtering"
	"github.com/stacklok/readmode-server/internal/otel"
	"github.com/stacklok/readmode-server/internal/recent"
	"github.com/stacklok/readmode-server/internal/service"
	"github.com/stacklok/readmode-server/internal/sync/writer"
	"github.com/stacklok/readmode-server/internal/tags"
)

// ServiceTracerName is the name of the catalog service tracer
const ServiceTracerName = "github.com/stacklok/readmode-server/service/inmemory"

// catalogSvc implements the CatalogService interface
type catalogSvc struct {
	catalogName string
	sourceType  string
	reader      writer.CatalogReader

	playlistFilter filtering.PlaylistFilter
	definitions    []tags.Definition
	policy         tags.ExclusionPolicy

	// Serializes read-modify-write cycles on the recent store
	recentMu    sync.Mutex
	recentStore recent.Store
	recentLimit int

	// Categories are cached per stored catalog; a sync replaces the pointer
	categoriesMu  sync.Mutex
	categoriesFor *catalog.Catalog
	categories    tags.Categories

	tracer trace.Tracer
	now    func() time.Time
}

var _ service.CatalogService = (*catalogSvc)(nil)

// Option is a functional option for configuring the catalog service
type Option func(*catalogSvc)

// WithSourceType records the configured source type reported by GetCatalogInfo
func WithSourceType(sourceType string) Option {
	return func(s *catalogSvc) {
		s.sourceType = sourceType
	}
}

// WithTagDefinitions replaces the built-in category definitions
func WithTagDefinitions(defs []tags.Definition) Option {
	return func(s *catalogSvc) {
		if len(defs) > 0 {
			s.definitions = defs
		}
	}
}

// WithExclusionPolicy replaces the built-in mood exclusion policy
func WithExclusionPolicy(policy tags.ExclusionPolicy) Option {
	return func(s *catalogSvc) {
		s.policy = policy
	}
}

// WithPlaylistFilter replaces the selection filter
func WithPlaylistFilter(filter filtering.PlaylistFilter) Option {
	return func(s *catalogSvc) {
		s.playlistFilter = filter
	}
}

// WithRecentStore sets the recently watched store. Defaults to memory.
func WithRecentStore(store recent.Store) Option {
	return func(s *catalogSvc) {
		s.recentStore = store
	}
}

// WithRecentLimit sets how many recently watched videos are kept
func WithRecentLimit(limit int) Option {
	return func(s *catalogSvc) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// WithTracer sets the tracer used for service spans
func WithTracer(tracer trace.Tracer) Option {
	return func(s *catalogSvc) {
		s.tracer = tracer
	}
}

// New creates a catalog service reading catalogName from reader
func New(reader writer.CatalogReader, catalogName string, opts ...Option) (service.CatalogService, error) {
	if reader == nil {
		return nil, fmt.Errorf("catalog reader is required")
	}
	if catalogName == "" {
		return nil, fmt.Errorf("catalog name is required")
	}

	s := &catalogSvc{
		catalogName:    catalogName,
		reader:         reader,
		playlistFilter: filtering.NewPlaylistFilter(),
		definitions:    tags.DefaultDefinitions(),
		policy:         tags.DefaultExclusionPolicy(),
		recentLimit:    recent.DefaultLimit,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.recentStore == nil {
		s.recentStore = recent.NewMemoryStore()
	}

	return s, nil
}

// CheckReadiness implements CatalogService.CheckReadiness
func (s *catalogSvc) CheckReadiness(ctx context.Context) error {
	_, err := s.getCatalog(ctx)
	return err
}

// GetCatalogInfo implements CatalogService.GetCatalogInfo
func (s *catalogSvc) GetCatalogInfo(ctx context.Context) (*service.CatalogInfo, error) {
	ctx, span := s.startSpan(ctx, "catalog.GetCatalogInfo")
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	return &service.CatalogInfo{
		CatalogName:   s.catalogName,
		Source:        s.sourceType,
		Version:       cat.Version,
		LastUpdated:   cat.LastUpdated,
		PlaylistCount: len(cat.Playlists),
		VideoCount:    len(cat.Videos),
	}, nil
}

// ListPlaylists implements CatalogService.ListPlaylists
func (s *catalogSvc) ListPlaylists(ctx context.Context, opts ...service.Option) (*service.PlaylistList, error) {
	options := &service.ListPlaylistsOptions{}
	if err := service.ApplyOptions(options, opts...); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "catalog.ListPlaylists",
		trace.WithAttributes(otel.AttrSelectionSize.Int(len(options.Selection))))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	matched := s.playlistFilter.ApplySelection(ctx, cat.Playlists, options.Selection)
	counts := cat.VideoCounts()

	views := make([]service.PlaylistView, 0, len(matched))
	for _, p := range matched {
		if options.HideEmpty && counts[p.ID] == 0 {
			continue
		}
		views = append(views, service.NewPlaylistView(p, counts[p.ID]))
	}

	page, next, err := paginate(views, options.Cursor, options.Limit)
	if err != nil {
		otel.RecordError(span, err, service.ErrInvalidCursor)
		return nil, err
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(page)))
	slog.DebugContext(ctx, "Listed playlists",
		"selected", []string(options.Selection),
		"matched", len(matched),
		"returned", len(page))

	selected := options.Selection
	if selected == nil {
		selected = tags.Selection{}
	}
	return &service.PlaylistList{
		Playlists:     page,
		Count:         len(page),
		Total:         len(views),
		FiltersActive: !options.Selection.IsEmpty(),
		Selected:      selected,
		NextCursor:    next,
	}, nil
}

// paginate cuts one page out of views. The returned cursor is empty on the
// last page.
func paginate(views []service.PlaylistView, cursor *service.Cursor, limit int) ([]service.PlaylistView, string, error) {
	start, err := cursor.Resume(len(views), func(i int) string { return views[i].ID })
	if err != nil {
		return nil, "", err
	}
	if limit == 0 || start+limit >= len(views) {
		return views[start:], "", nil
	}
	end := start + limit
	return views[start:end], service.EncodeCursor(end, views[end-1].ID), nil
}

// GetPlaylist implements CatalogService.GetPlaylist
func (s *catalogSvc) GetPlaylist(ctx context.Context, id string) (*service.PlaylistView, error) {
	ctx, span := s.startSpan(ctx, "catalog.GetPlaylist",
		trace.WithAttributes(otel.AttrPlaylistID.String(id)))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	p, ok := cat.FindPlaylist(id)
	if !ok {
		err := fmt.Errorf("%w: %s", service.ErrPlaylistNotFound, id)
		otel.RecordError(span, err, service.ErrPlaylistNotFound)
		return nil, err
	}

	view := service.NewPlaylistView(p, len(cat.VideosFor(id)))
	return &view, nil
}

// ListPlaylistVideos implements CatalogService.ListPlaylistVideos
func (s *catalogSvc) ListPlaylistVideos(ctx context.Context, id string) ([]service.VideoView, error) {
	ctx, span := s.startSpan(ctx, "catalog.ListPlaylistVideos",
		trace.WithAttributes(otel.AttrPlaylistID.String(id)))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	if _, ok := cat.FindPlaylist(id); !ok {
		err := fmt.Errorf("%w: %s", service.ErrPlaylistNotFound, id)
		otel.RecordError(span, err, service.ErrPlaylistNotFound)
		return nil, err
	}

	videos := cat.VideosFor(id)
	views := make([]service.VideoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, service.NewVideoView(v))
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(views)))
	return views, nil
}

// GetVideo implements CatalogService.GetVideo
func (s *catalogSvc) GetVideo(ctx context.Context, youtubeID string) (*service.VideoView, error) {
	ctx, span := s.startSpan(ctx, "catalog.GetVideo",
		trace.WithAttributes(otel.AttrVideoID.String(youtubeID)))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	v, ok := cat.FindVideo(youtubeID)
	if !ok {
		err := fmt.Errorf("%w: %s", service.ErrVideoNotFound, youtubeID)
		otel.RecordError(span, err, service.ErrVideoNotFound)
		return nil, err
	}

	view := service.NewVideoView(v)
	return &view, nil
}

// ListCategories implements CatalogService.ListCategories
func (s *catalogSvc) ListCategories(ctx context.Context) (tags.Categories, error) {
	cat, err := s.getCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return s.categoriesOf(cat), nil
}

// DescribeTags implements CatalogService.DescribeTags
func (s *catalogSvc) DescribeTags(ctx context.Context, opts ...service.Option) ([]tags.CategoryState, error) {
	options := &service.DescribeTagsOptions{}
	if err := service.ApplyOptions(options, opts...); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "catalog.DescribeTags",
		trace.WithAttributes(otel.AttrSelectionSize.Int(len(options.Selection))))
	defer span.End()

	cat, err := s.getCatalog(ctx)
	if err != nil {
		otel.RecordError(span, err, service.ErrCatalogNotReady)
		return nil, err
	}

	matched := s.playlistFilter.ApplySelection(ctx, cat.Playlists, options.Selection)
	available := filtering.AvailableTags(matched)
	return s.policy.Describe(s.categoriesOf(cat), options.Selection, available), nil
}

// ToggleTag implements CatalogService.ToggleTag
func (s *catalogSvc) ToggleTag(
	ctx context.Context,
	selection tags.Selection,
	tag string,
	key tags.CategoryKey,
) (tags.Selection, error) {
	category, err := s.findCategory(ctx, key)
	if err != nil {
		return nil, err
	}

	if s.policy.IsDisabled(selection, tag, key) {
		slog.DebugContext(ctx, "Rejected disabled tag",
			"tag", tag,
			"category", string(key),
			"selected", []string(selection))
		return nil, fmt.Errorf("%w: %s", service.ErrTagDisabled, tag)
	}

	return selection.Toggle(tag, category), nil
}

// ClearSelection implements CatalogService.ClearSelection
func (s *catalogSvc) ClearSelection(
	ctx context.Context,
	selection tags.Selection,
	key *tags.CategoryKey,
) (tags.Selection, error) {
	if key == nil {
		return selection.ClearAll(), nil
	}

	category, err := s.findCategory(ctx, *key)
	if err != nil {
		return nil, err
	}
	return selection.ClearCategory(category), nil
}

func (s *catalogSvc) findCategory(ctx context.Context, key tags.CategoryKey) (tags.Category, error) {
	if _, err := tags.ParseCategoryKey(string(key)); err != nil {
		return tags.Category{}, fmt.Errorf("%w: %s", service.ErrUnknownCategory, key)
	}

	cat, err := s.getCatalog(ctx)
	if err != nil {
		return tags.Category{}, err
	}

	category, ok := s.categoriesOf(cat).Find(key)
	if !ok {
		return tags.Category{}, fmt.Errorf("%w: %s", service.ErrUnknownCategory, key)
	}
	return category, nil
}

// getCatalog returns the stored catalog, mapping a missing one to ErrCatalogNotReady
func (s *catalogSvc) getCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := s.reader.Get(ctx, s.catalogName)
	if err != nil {
		if errors.Is(err, writer.ErrCatalogNotFound) {
			return nil, service.ErrCatalogNotReady
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return cat, nil
}

func (s *catalogSvc) categoriesOf(cat *catalog.Catalog) tags.Categories {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	if s.categoriesFor != cat {
		s.categories = cat.Categories(s.definitions...)
		s.categoriesFor = cat
	}
	return s.categories
}

func (s *catalogSvc) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	opts = append([]trace.SpanStartOption{
		trace.WithAttributes(otel.AttrCatalogName.String(s.catalogName)),
	}, opts...)
	return otel.StartSpan(ctx, s.tracer, name, opts...)
}
