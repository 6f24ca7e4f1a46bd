package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"

	"staradmin/config"
	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/domain/repository"
	"staradmin/internal/domain/service"
	"staradmin/internal/infra/prefs"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// defaultLayout is the storefront layout seeded when the backend has no
// sections yet.
var defaultLayout = map[string][]entity.SectionType{
	entity.HomePage: {
		entity.SectionHero,
		entity.SectionCategories,
		entity.SectionAboutBanner,
		entity.SectionFeatured,
		entity.SectionBrandGrid,
		entity.SectionSmartDiscovery,
		entity.SectionTrust,
		entity.SectionFooter,
	},
	"about": {
		entity.SectionAboutBlock,
	},
}

// builderService implements the BuilderUsecase interface.
type builderService struct {
	sectionRepo repository.SectionRepository
	translator  service.Translator
	qr          service.QRCodeService
	state       *store.State
	notifier    *store.Notifier
	activity    *store.ActivityLog
	prefs       *prefs.Store
	logger      *slog.Logger
	previewURL  string

	mu         sync.Mutex
	extraPages map[string]struct{}
}

// NewBuilderService is the constructor for builderService.
func NewBuilderService(
	cfg *config.Config,
	sectionRepo repository.SectionRepository,
	translator service.Translator,
	qr service.QRCodeService,
	state *store.State,
	notifier *store.Notifier,
	activity *store.ActivityLog,
	prefsStore *prefs.Store,
	logger *slog.Logger,
) usecase.BuilderUsecase {
	return &builderService{
		sectionRepo: sectionRepo,
		translator:  translator,
		qr:          qr,
		state:       state,
		notifier:    notifier,
		activity:    activity,
		prefs:       prefsStore,
		logger:      logger,
		previewURL:  cfg.Builder.PreviewURL,
		extraPages:  map[string]struct{}{},
	}
}

// Sections returns the cached sections of one page in render order.
func (srv *builderService) Sections(page string) []entity.SiteSection {
	if page == "" {
		page = entity.HomePage
	}

	var out []entity.SiteSection
	for _, section := range srv.state.Sections.Items() {
		if section.PageOrDefault() == page {
			out = append(out, section)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })

	return out
}

// Pages lists the known page slugs, home first, the rest alphabetical.
func (srv *builderService) Pages() []string {
	seen := map[string]struct{}{entity.HomePage: {}}
	for _, section := range srv.state.Sections.Items() {
		seen[section.PageOrDefault()] = struct{}{}
	}

	srv.mu.Lock()
	for page := range srv.extraPages {
		seen[page] = struct{}{}
	}
	srv.mu.Unlock()

	var rest []string
	for page := range seen {
		if page != entity.HomePage {
			rest = append(rest, page)
		}
	}
	sort.Strings(rest)

	return append([]string{entity.HomePage}, rest...)
}

// AddPage registers a new page slug derived from name.
func (srv *builderService) AddPage(_ context.Context, name string) (string, error) {
	slug := slugifyPage(name)
	if slug == "" {
		return "", domainerrors.ErrPageNameRequired
	}

	for _, existing := range srv.Pages() {
		if existing == slug {
			return "", domainerrors.ErrPageExists
		}
	}

	srv.mu.Lock()
	srv.extraPages[slug] = struct{}{}
	srv.mu.Unlock()

	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s sahifasi yaratildi.", slug))
	srv.activity.Record("Sahifa yaratildi", actorName(srv.state), slug, entity.ActivityOK, "tag")

	return slug, nil
}

// DeletePage removes a page and every section on it. Home is protected.
func (srv *builderService) DeletePage(ctx context.Context, page string) error {
	if page == entity.HomePage {
		return domainerrors.ErrHomePageProtected
	}

	for _, section := range srv.Sections(page) {
		if err := srv.sectionRepo.DeleteSection(ctx, section.ID); err != nil {
			srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Sahifa o'chirilmadi: %s", rootMessage(err)))

			return err
		}
		srv.state.Sections.Remove(section.ID)
	}

	srv.mu.Lock()
	delete(srv.extraPages, page)
	srv.mu.Unlock()

	srv.notifier.Push(entity.NotifySuccess, "", fmt.Sprintf("%s sahifasi o'chirildi.", page))
	srv.activity.Record("Sahifa o'chirildi", actorName(srv.state), page, entity.ActivityOK, "tag")

	return nil
}

// SeedDefaultLayout pushes the default layout when the backend holds no
// sections at all. Called once after the first successful sync.
func (srv *builderService) SeedDefaultLayout(ctx context.Context) error {
	if srv.state.Sections.Len() > 0 {
		return nil
	}

	var seeded []entity.SiteSection
	for page, types := range defaultLayout {
		for i, sectionType := range types {
			seeded = append(seeded, entity.SiteSection{
				Type:       sectionType,
				OrderIndex: i,
				Page:       page,
				Enabled:    true,
				Data:       defaultSectionData(sectionType),
			})
		}
	}

	created := make([]entity.SiteSection, 0, len(seeded))
	for _, section := range seeded {
		saved, err := srv.sectionRepo.CreateSection(ctx, section)
		if err != nil {
			return err
		}
		created = append(created, saved)
	}

	if err := srv.sectionRepo.ReorderSections(ctx, created); err != nil {
		return err
	}

	srv.state.Sections.ReplaceAll(sortSections(created))
	srv.logger.InfoContext(ctx, "seeded default storefront layout", slog.Int("sections", len(created)))

	return nil
}

// AddSection inserts a new section of the given type on a page.
func (srv *builderService) AddSection(ctx context.Context, page string, sectionType entity.SectionType, insertIndex int) (entity.SiteSection, error) {
	if !knownSectionType(sectionType) {
		return entity.SiteSection{}, domainerrors.ErrInvalidInput.WithDetails("unknown section type")
	}
	if page == "" {
		page = entity.HomePage
	}

	existing := srv.Sections(page)
	if insertIndex < 0 || insertIndex > len(existing) {
		insertIndex = len(existing)
	}

	section := entity.SiteSection{
		Type:    sectionType,
		Page:    page,
		Enabled: true,
		Data:    defaultSectionData(sectionType),
	}

	created, err := srv.sectionRepo.CreateSection(ctx, section)
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Bo'lim qo'shilmadi: %s", rootMessage(err)))

		return entity.SiteSection{}, err
	}

	// Splice into position, renumber the page and push the new order.
	layout := append(append(append([]entity.SiteSection{}, existing[:insertIndex]...), created), existing[insertIndex:]...)
	if err := srv.persistPageOrder(ctx, layout); err != nil {
		return entity.SiteSection{}, err
	}

	srv.notifier.Push(entity.NotifySuccess, "", "Bo'lim qo'shildi.")
	srv.activity.Record("Bo'lim qo'shildi", actorName(srv.state), string(sectionType), entity.ActivityOK, "tag")

	created.OrderIndex = insertIndex

	return created, nil
}

// UpdateSection persists edited section data, refreshing the derived
// translations for its text fields.
func (srv *builderService) UpdateSection(ctx context.Context, input *usecase.UpdateSectionInput) (entity.SiteSection, error) {
	section, ok := srv.state.Sections.Get(input.ID)
	if !ok {
		return entity.SiteSection{}, domainerrors.ErrSectionNotFound
	}

	if input.Enabled != nil {
		section.Enabled = *input.Enabled
	}
	if input.Data != nil {
		section.Data = input.Data
	} else {
		// The cached map is shared; edit a copy so a failed update
		// leaves the working set untouched.
		section.Data = cloneSectionData(section.Data)
	}
	section.Data = srv.enrichSectionI18n(ctx, section.Data)

	updated, err := srv.sectionRepo.UpdateSection(ctx, section)
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Bo'lim saqlanmadi: %s", rootMessage(err)))

		return entity.SiteSection{}, err
	}

	srv.state.Sections.Upsert(updated)
	srv.notifier.Push(entity.NotifySuccess, "", "Bo'lim saqlandi.")

	return updated, nil
}

// DeleteSection removes one section and renumbers its page.
func (srv *builderService) DeleteSection(ctx context.Context, id string) error {
	section, ok := srv.state.Sections.Get(id)
	if !ok {
		return domainerrors.ErrSectionNotFound
	}

	if err := srv.sectionRepo.DeleteSection(ctx, id); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Bo'lim o'chirilmadi: %s", rootMessage(err)))

		return err
	}
	srv.state.Sections.Remove(id)

	if err := srv.persistPageOrder(ctx, srv.Sections(section.PageOrDefault())); err != nil {
		return err
	}

	srv.notifier.Push(entity.NotifySuccess, "", "Bo'lim o'chirildi.")
	srv.activity.Record("Bo'lim o'chirildi", actorName(srv.state), string(section.Type), entity.ActivityOK, "tag")

	return nil
}

// MoveSection swaps a section with its neighbour and renumbers the page.
func (srv *builderService) MoveSection(ctx context.Context, id string, direction usecase.MoveDirection) error {
	section, ok := srv.state.Sections.Get(id)
	if !ok {
		return domainerrors.ErrSectionNotFound
	}

	layout := srv.Sections(section.PageOrDefault())
	idx := -1
	for i, s := range layout {
		if s.ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return domainerrors.ErrSectionNotFound
	}

	target := idx - 1
	if direction == usecase.MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(layout) {
		return nil // already at the edge
	}

	layout[idx], layout[target] = layout[target], layout[idx]

	return srv.persistPageOrder(ctx, layout)
}

// HandleMessage dispatches one structural command posted by the
// embedded storefront preview.
func (srv *builderService) HandleMessage(ctx context.Context, msg *usecase.BuilderMessage) error {
	if msg.Source != usecase.BuilderMessageSource {
		return nil // foreign message, ignore
	}

	switch msg.Type {
	case "select":
		// Selection only drives preview highlighting; nothing to persist.
		return nil

	case "add":
		insertIndex := -1
		if msg.InsertIndex != nil {
			insertIndex = *msg.InsertIndex
		}
		_, err := srv.AddSection(ctx, msg.Page, entity.SectionType(msg.SectionType), insertIndex)

		return err

	case "add-slide":
		return srv.addSlide(ctx, msg.SectionID)

	case "set-link":
		return srv.setLink(ctx, msg.SectionID, msg.LinkTarget, msg.LinkURL)

	case "delete":
		return srv.DeleteSection(ctx, msg.SectionID)

	default:
		return domainerrors.ErrInvalidInput.WithDetails("unknown builder message type")
	}
}

// addSlide appends an empty slide to a hero section's carousel.
func (srv *builderService) addSlide(ctx context.Context, sectionID string) error {
	section, ok := srv.state.Sections.Get(sectionID)
	if !ok {
		return domainerrors.ErrSectionNotFound
	}

	data := cloneSectionData(section.Data)
	slides, _ := data["slides"].([]any)
	slides = append(slides, map[string]any{
		"title":      "",
		"subtitle":   "",
		"buttonText": "",
		"image":      "",
	})
	data["slides"] = slides
	section.Data = data

	updated, err := srv.sectionRepo.UpdateSection(ctx, section)
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Slayd qo'shilmadi: %s", rootMessage(err)))

		return err
	}
	srv.state.Sections.Upsert(updated)
	srv.notifier.Push(entity.NotifySuccess, "", "Slayd qo'shildi.")

	return nil
}

// setLink stores a navigation link on the section's data payload.
func (srv *builderService) setLink(ctx context.Context, sectionID, linkTarget, linkURL string) error {
	section, ok := srv.state.Sections.Get(sectionID)
	if !ok {
		return domainerrors.ErrSectionNotFound
	}

	if linkTarget == "" {
		linkTarget = "link"
	}
	data := cloneSectionData(section.Data)
	data[linkTarget] = linkURL
	section.Data = data

	updated, err := srv.sectionRepo.UpdateSection(ctx, section)
	if err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Havola saqlanmadi: %s", rootMessage(err)))

		return err
	}
	srv.state.Sections.Upsert(updated)
	srv.notifier.Push(entity.NotifySuccess, "", "Havola saqlandi.")

	return nil
}

// PreviewURL returns the persisted storefront preview address.
func (srv *builderService) PreviewURL() string {
	if url := srv.prefs.Get(prefs.KeyPreviewURL); url != "" {
		return url
	}

	return srv.previewURL
}

// SetPreviewURL persists a new preview address.
func (srv *builderService) SetPreviewURL(_ context.Context, url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return domainerrors.ErrInvalidInput.WithDetails("preview url must be http(s)")
	}

	return srv.prefs.Set(prefs.KeyPreviewURL, url)
}

// PreviewQR renders the preview address as a QR PNG.
func (srv *builderService) PreviewQR() ([]byte, error) {
	return srv.qr.GeneratePNG(srv.PreviewURL())
}

// persistPageOrder renumbers layout by array position, merges it over
// the full cached section list and pushes one bulk reorder. Sections on
// other pages keep their stored order; unknown ids survive at the tail.
func (srv *builderService) persistPageOrder(ctx context.Context, layout []entity.SiteSection) error {
	page := ""
	byID := make(map[string]entity.SiteSection, len(layout))
	for i := range layout {
		layout[i].OrderIndex = i
		byID[layout[i].ID] = layout[i]
		page = layout[i].PageOrDefault()
	}

	var full []entity.SiteSection
	seen := map[string]struct{}{}
	for _, section := range srv.state.Sections.Items() {
		if replacement, ok := byID[section.ID]; ok {
			section = replacement
			seen[section.ID] = struct{}{}
		}
		full = append(full, section)
	}
	for _, section := range layout {
		if _, ok := seen[section.ID]; !ok {
			full = append(full, section)
		}
	}
	full = sortSections(full)

	if err := srv.sectionRepo.ReorderSections(ctx, full); err != nil {
		srv.notifier.Push(entity.NotifyError, "", fmt.Sprintf("Tartib saqlanmadi: %s", rootMessage(err)))

		return err
	}

	srv.state.Sections.ReplaceAll(full)
	srv.logger.DebugContext(ctx, "page layout reordered", slog.String("page", page), slog.Int("sections", len(layout)))

	return nil
}

// cloneSectionData copies a section payload, including the nested slide
// maps, so edits never reach the cached section until Upsert.
func cloneSectionData(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}

	out := maps.Clone(data)
	if slides, ok := data["slides"].([]any); ok {
		copied := make([]any, len(slides))
		for i, raw := range slides {
			if slide, ok := raw.(map[string]any); ok {
				copied[i] = maps.Clone(slide)
			} else {
				copied[i] = raw
			}
		}
		out["slides"] = copied
	}

	return out
}

// enrichSectionI18n derives the en/ru translation payload for every
// translatable text field of a section.
func (srv *builderService) enrichSectionI18n(ctx context.Context, data map[string]any) map[string]any {
	if data == nil {
		return nil
	}

	i18n := map[string]any{}
	for _, lang := range i18nTargets {
		entry := map[string]any{}

		for _, field := range []string{"title", "subtitle", "linkText", "buttonText"} {
			if text, ok := data[field].(string); ok && text != "" {
				entry[field] = srv.translateOr(ctx, text, lang)
			}
		}

		if slides, ok := data["slides"].([]any); ok && len(slides) > 0 {
			translated := make([]any, 0, len(slides))
			for _, raw := range slides {
				slide, ok := raw.(map[string]any)
				if !ok {
					translated = append(translated, raw)

					continue
				}
				slideEntry := map[string]any{}
				for _, field := range []string{"title", "subtitle", "buttonText"} {
					if text, ok := slide[field].(string); ok && text != "" {
						slideEntry[field] = srv.translateOr(ctx, text, lang)
					}
				}
				translated = append(translated, slideEntry)
			}
			entry["slides"] = translated
		}

		if links, ok := data["footerLinks"].([]any); ok && len(links) > 0 {
			labels := make([]any, 0, len(links))
			for _, raw := range links {
				link, ok := raw.(map[string]any)
				if !ok {
					labels = append(labels, raw)

					continue
				}
				if label, ok := link["label"].(string); ok && label != "" {
					labels = append(labels, srv.translateOr(ctx, label, lang))
				} else {
					labels = append(labels, "")
				}
			}
			entry["footerLinks"] = labels
		}

		if len(entry) > 0 {
			i18n[lang] = entry
		}
	}

	if len(i18n) > 0 {
		data["i18n"] = i18n
	}

	return data
}

func (srv *builderService) translateOr(ctx context.Context, text, target string) string {
	translated, err := srv.translator.Translate(ctx, text, target)
	if err != nil || translated == "" {
		return text
	}

	return translated
}

// slugifyPage turns a display name into a page slug: lowercase, spaces
// to dashes, everything else alphanumeric-only.
func slugifyPage(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}

	return strings.Trim(b.String(), "-")
}

func knownSectionType(t entity.SectionType) bool {
	for _, known := range entity.SectionTypes {
		if known == t {
			return true
		}
	}

	return false
}

// sortSections orders by page then order index, keeping pages grouped.
func sortSections(sections []entity.SiteSection) []entity.SiteSection {
	out := make([]entity.SiteSection, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PageOrDefault() != out[j].PageOrDefault() {
			return out[i].PageOrDefault() < out[j].PageOrDefault()
		}

		return out[i].OrderIndex < out[j].OrderIndex
	})

	return out
}

// defaultSectionData is the starting payload of a freshly placed block.
func defaultSectionData(t entity.SectionType) map[string]any {
	switch t {
	case entity.SectionHero:
		return map[string]any{
			"title":      "Yangi Kolleksiya",
			"subtitle":   "Eng so'nggi modellar endi do'konda",
			"buttonText": "Xarid qilish",
			"slides":     []any{},
		}
	case entity.SectionBanner:
		return map[string]any{"title": "Maxsus taklif", "linkText": "Batafsil", "link": ""}
	case entity.SectionText:
		return map[string]any{"title": "Sarlavha", "subtitle": ""}
	case entity.SectionAboutBlock:
		return map[string]any{"title": "Biz haqimizda", "subtitle": ""}
	case entity.SectionSpacer:
		return map[string]any{"height": 48}
	case entity.SectionFooter:
		return map[string]any{"footerLinks": []any{}}
	default:
		return map[string]any{}
	}
}
