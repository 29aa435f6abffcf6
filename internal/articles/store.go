package articles

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// defaultAuthor is stamped on articles created without a configured author.
const defaultAuthor = "エディタユーザー"

// timeLayout is the ISO format used for metadata timestamps in the dataset.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Action identifies the kind of store mutation an Event reports.
type Action string

const (
	ActionCollectionLoaded      Action = "collection_loaded"
	ActionArticleCreated        Action = "article_created"
	ActionArticleUpdated        Action = "article_updated"
	ActionArticleDeleted        Action = "article_deleted"
	ActionRequirementAdded      Action = "requirement_added"
	ActionRequirementRemoved    Action = "requirement_removed"
	ActionRelatedArticleAdded   Action = "related_article_added"
	ActionRelatedArticleRemoved Action = "related_article_removed"
	ActionRelatedRecitalAdded   Action = "related_recital_added"
	ActionRelatedRecitalRemoved Action = "related_recital_removed"
)

// Event is a state-changed notification delivered to subscribers after a
// mutation has been committed. The presentation layer uses these to decide
// when to re-render; the store is agnostic to whether anyone listens.
type Event struct {
	Action    Action `json:"action"`
	ArticleID string `json:"article_id,omitempty"`
	Summary   string `json:"summary"`
}

// EditPatch carries the editor's rebuilt field values for a commit. The
// three sequence fields are keyed by the row's position in the article
// before the edit: a prior row whose index is absent from the map is
// silently dropped from the saved result, matching the editor's
// reconstruct-from-form behavior. A nil map leaves that sequence untouched.
type EditPatch struct {
	Text            *ArticleText           `json:"article_text,omitempty"`
	Requirements    map[int]RequirementRow `json:"requirements,omitempty"`
	RelatedArticles map[int]RelatedArticle `json:"related_articles,omitempty"`
	RelatedRecitals map[int]RelatedRecital `json:"related_recitals,omitempty"`
}

// RequirementRow is one requirement as held by the edit form. Sub-items are
// not editable in the form; they carry over from the prior row at the same
// index.
type RequirementRow struct {
	ReqID              string           `json:"req_id"`
	Type               RequirementType  `json:"type"`
	DescriptionJA      string           `json:"description_ja"`
	DescriptionEN      string           `json:"description_en"`
	Conditions         string           `json:"conditions"`
	VerificationMethod string           `json:"verification_method"`
	ResponsibleParty   ResponsibleParty `json:"responsible_party"`
}

// Store owns the article collection, the current selection, the edit-mode
// flag and the filter criteria. All operations are synchronous; the mutex
// only serializes concurrent HTTP handlers, there is still one logical
// writer at a time.
type Store struct {
	mu         sync.RWMutex
	collection Collection
	filter     Filter
	view       []string // filtered article ids, in collection order
	selectedID string
	editMode   bool
	author     string
	now        func() time.Time

	subMu       sync.Mutex
	subscribers []func(Event)
}

// NewStore creates an empty store. The author is stamped on newly created
// articles; when empty a default editor identity is used.
func NewStore(author string) *Store {
	if author == "" {
		author = defaultAuthor
	}
	s := &Store{
		author: author,
		now:    time.Now,
	}
	s.collection = Collection{
		SchemaVersion: "1.0",
		CreatedAt:     s.timestamp(),
		Articles:      []Article{},
	}
	s.view = []string{}
	return s
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run synchronously on the mutating goroutine, outside the store
// lock.
func (s *Store) Subscribe(fn func(Event)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

// Load replaces the entire collection with the given JSON payload. On a
// malformed payload the prior state is left unchanged and the error wraps
// ErrParse. A successful load clears selection and edit mode and recomputes
// the filtered view.
func (s *Store) Load(payload []byte) error {
	var c Collection
	if err := json.Unmarshal(payload, &c); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if c.SchemaVersion == "" {
		return fmt.Errorf("%w: missing schema_version", ErrParse)
	}
	if c.Articles == nil {
		return fmt.Errorf("%w: missing articles", ErrParse)
	}
	for i := range c.Articles {
		if c.Articles[i].ArticleID == "" {
			return fmt.Errorf("%w: article %d has no article_id", ErrParse, i)
		}
		normalizeArticle(&c.Articles[i])
	}

	s.mu.Lock()
	s.collection = c
	s.selectedID = ""
	s.editMode = false
	s.refilter()
	s.mu.Unlock()

	s.notify(Event{
		Action:  ActionCollectionLoaded,
		Summary: fmt.Sprintf("loaded %d articles", len(c.Articles)),
	})
	return nil
}

// Serialize renders the current collection as indented JSON. Every field
// round-trips, including empty sequences.
func (s *Store) Serialize() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.MarshalIndent(s.collection, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing collection: %w", err)
	}
	return data, nil
}

// Collection returns a snapshot of the full collection.
func (s *Store) Collection() Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.collection
	c.Articles = make([]Article, len(s.collection.Articles))
	copy(c.Articles, s.collection.Articles)
	return c
}

// Articles returns a snapshot of all articles in collection order.
func (s *Store) Articles() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Article, len(s.collection.Articles))
	copy(out, s.collection.Articles)
	return out
}

// SetFilter replaces the filter criteria and recomputes the filtered view.
// Filtering is a pure function of the collection and the criteria; the
// backing collection is never reordered.
func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.refilter()
}

// CurrentFilter returns the active filter criteria.
func (s *Store) CurrentFilter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Filtered returns the articles matching the current filter, a subset of
// the collection in original order.
func (s *Store) Filtered() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Article, 0, len(s.view))
	for _, id := range s.view {
		if i := s.indexOf(id); i >= 0 {
			out = append(out, s.collection.Articles[i])
		}
	}
	return out
}

// refilter recomputes the view. Caller holds the write lock.
func (s *Store) refilter() {
	s.view = s.view[:0]
	for i := range s.collection.Articles {
		if s.matches(&s.collection.Articles[i]) {
			s.view = append(s.view, s.collection.Articles[i].ArticleID)
		}
	}
}

func (s *Store) matches(a *Article) bool {
	return Matches(a, s.filter)
}

// Matches reports whether the article passes the filter. Search is a
// case-insensitive substring match against the article number and both
// titles only, never against body text or requirements. A pure function of
// its inputs.
func Matches(a *Article, f Filter) bool {
	if term := strings.ToLower(f.SearchText); term != "" {
		if !strings.Contains(strings.ToLower(a.ArticleNumber), term) &&
			!strings.Contains(strings.ToLower(a.TitleJA), term) &&
			!strings.Contains(strings.ToLower(a.TitleEN), term) {
			return false
		}
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.RiskLevel != "" && a.RiskLevel != f.RiskLevel {
		return false
	}
	return true
}

func (s *Store) indexOf(id string) int {
	for i := range s.collection.Articles {
		if s.collection.Articles[i].ArticleID == id {
			return i
		}
	}
	return -1
}

// Select makes the article the current selection and exits edit mode,
// discarding any in-progress edit state.
func (s *Store) Select(id string) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.selectedID = id
	s.editMode = false
	a := s.collection.Articles[i]
	return &a, nil
}

// Selected returns the currently selected article, or nil when nothing is
// selected.
func (s *Store) Selected() *Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedID == "" {
		return nil
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		a := s.collection.Articles[i]
		return &a
	}
	return nil
}

// EditMode reports whether edit mode is active.
func (s *Store) EditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editMode
}

// Resolve looks up an article by id for navigation. Dangling references are
// tolerated by design: an unknown id yields nil, never an error.
func (s *Store) Resolve(id string) *Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		a := s.collection.Articles[i]
		return &a
	}
	return nil
}

// ToggleEdit flips the edit-mode flag for the current selection. Entering
// edit mode takes no patch. Leaving edit mode applies the editor's held
// values through CommitEdit exactly once; a nil patch exits without
// applying changes.
func (s *Store) ToggleEdit(patch *EditPatch) error {
	s.mu.Lock()
	if s.selectedID == "" {
		s.mu.Unlock()
		return ErrNoSelection
	}
	if !s.editMode {
		s.editMode = true
		s.mu.Unlock()
		return nil
	}
	id := s.selectedID
	s.editMode = false
	s.mu.Unlock()

	if patch == nil {
		return nil
	}
	return s.CommitEdit(id, *patch)
}

// CommitEdit applies the patch to the article and stamps
// metadata.updated_at. It fails only when the id does not resolve; empty
// strings are valid field values.
func (s *Store) CommitEdit(id string, patch EditPatch) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	a := &s.collection.Articles[i]

	if patch.Text != nil {
		a.ArticleText = *patch.Text
	}
	if patch.Requirements != nil {
		kept := make([]Requirement, 0, len(a.Requirements))
		for j := range a.Requirements {
			row, ok := patch.Requirements[j]
			if !ok {
				continue // row removed from the form
			}
			kept = append(kept, Requirement{
				ReqID:              row.ReqID,
				Type:               row.Type,
				DescriptionJA:      row.DescriptionJA,
				DescriptionEN:      row.DescriptionEN,
				SubItems:           a.Requirements[j].SubItems,
				Conditions:         row.Conditions,
				VerificationMethod: row.VerificationMethod,
				ResponsibleParty:   row.ResponsibleParty,
			})
		}
		a.Requirements = kept
	}
	if patch.RelatedArticles != nil {
		kept := make([]RelatedArticle, 0, len(a.RelatedArticles))
		for j := range a.RelatedArticles {
			if row, ok := patch.RelatedArticles[j]; ok {
				kept = append(kept, row)
			}
		}
		a.RelatedArticles = kept
	}
	if patch.RelatedRecitals != nil {
		kept := make([]RelatedRecital, 0, len(a.RelatedRecitals))
		for j := range a.RelatedRecitals {
			if row, ok := patch.RelatedRecitals[j]; ok {
				kept = append(kept, row)
			}
		}
		a.RelatedRecitals = kept
	}

	a.Metadata.UpdatedAt = s.timestamp()
	number := a.ArticleNumber
	s.mu.Unlock()

	s.notify(Event{
		Action:    ActionArticleUpdated,
		ArticleID: id,
		Summary:   fmt.Sprintf("updated %s", number),
	})
	return nil
}

// AddArticle creates a new article from a user-supplied number such as
// "24条". The id is derived by stripping non-digit characters and prefixing
// "article_". On a collision the collection is unchanged. The new article
// is appended, the view recomputed, and the selection moved to it.
func (s *Store) AddArticle(number string) (*Article, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: empty article number", ErrParse)
	}
	id := "article_" + digitsOf(number)

	s.mu.Lock()
	if s.indexOf(id) >= 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	now := s.timestamp()
	a := Article{
		ArticleID:     id,
		ArticleNumber: number,
		SectionID:     "3-x",
		TitleJA:       "新しい条文",
		TitleEN:       "New Article",
		SlidePages:    []int{},
		Category:      CategoryGeneral,
		RiskLevel:     RiskGeneral,
		ArticleText: ArticleText{
			JA: "条文本文（日本語）",
			EN: "Article text (English)",
		},
		Requirements:    []Requirement{},
		RelatedArticles: []RelatedArticle{},
		RelatedRecitals: []RelatedRecital{},
		RelatedAnnexes:  []RelatedAnnex{},
		Notes:           []Note{},
		VisualElements:  VisualElements{Elements: []VisualElement{}},
		Metadata: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   "1.0",
			Author:    s.author,
			Status:    StatusDraft,
			Tags:      []string{},
			Comments:  []Comment{},
		},
	}
	s.collection.Articles = append(s.collection.Articles, a)
	s.refilter()
	s.selectedID = id
	s.editMode = false
	s.mu.Unlock()

	s.notify(Event{
		Action:    ActionArticleCreated,
		ArticleID: id,
		Summary:   fmt.Sprintf("created %s", number),
	})
	return &a, nil
}

// DeleteArticle removes the article from the collection. When it was the
// selection, the selection is cleared. Other articles' related_articles
// entries pointing at it are left dangling; resolution of those ids simply
// fails to find a match.
func (s *Store) DeleteArticle(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	number := s.collection.Articles[i].ArticleNumber
	s.collection.Articles = append(s.collection.Articles[:i], s.collection.Articles[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
		s.editMode = false
	}
	s.refilter()
	s.mu.Unlock()

	s.notify(Event{
		Action:    ActionArticleDeleted,
		ArticleID: id,
		Summary:   fmt.Sprintf("deleted %s", number),
	})
	return nil
}

// selectedArticle returns a pointer into the collection for the current
// selection. Caller holds the write lock.
func (s *Store) selectedArticle() (*Article, error) {
	if s.selectedID == "" {
		return nil, ErrNoSelection
	}
	i := s.indexOf(s.selectedID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.selectedID)
	}
	return &s.collection.Articles[i], nil
}

// AddRequirement appends a placeholder requirement to the selected article
// and returns its index. The generated id carries a time-based suffix so it
// does not collide with existing rows.
func (s *Store) AddRequirement() (int, error) {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	a.Requirements = append(a.Requirements, Requirement{
		ReqID:         fmt.Sprintf("new_req_%d", s.now().UnixMilli()),
		Type:          RequirementMandatory,
		DescriptionJA: "新しい要件",
		DescriptionEN: "New requirement",
		SubItems:      []SubItem{},
	})
	idx := len(a.Requirements) - 1
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRequirementAdded, ArticleID: id, Summary: fmt.Sprintf("requirement #%d added", idx+1)})
	return idx, nil
}

// DeleteRequirement removes the requirement at the index from the selected
// article. An out-of-range index is a no-op reported as ErrIndexOutOfRange.
func (s *Store) DeleteRequirement(index int) error {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if index < 0 || index >= len(a.Requirements) {
		s.mu.Unlock()
		return fmt.Errorf("%w: requirement %d", ErrIndexOutOfRange, index)
	}
	a.Requirements = append(a.Requirements[:index], a.Requirements[index+1:]...)
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRequirementRemoved, ArticleID: id, Summary: fmt.Sprintf("requirement #%d removed", index+1)})
	return nil
}

// AddRelatedArticle appends a placeholder related-article link to the
// selected article and returns its index.
func (s *Store) AddRelatedArticle() (int, error) {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	a.RelatedArticles = append(a.RelatedArticles, RelatedArticle{
		ArticleID:     fmt.Sprintf("article_x_%d", s.now().UnixMilli()),
		ArticleNumber: "X条",
		RelationType:  RelationRelated,
		Description:   "新しい関連条文",
	})
	idx := len(a.RelatedArticles) - 1
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRelatedArticleAdded, ArticleID: id, Summary: fmt.Sprintf("related article #%d added", idx+1)})
	return idx, nil
}

// DeleteRelatedArticle removes the related-article link at the index from
// the selected article.
func (s *Store) DeleteRelatedArticle(index int) error {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if index < 0 || index >= len(a.RelatedArticles) {
		s.mu.Unlock()
		return fmt.Errorf("%w: related article %d", ErrIndexOutOfRange, index)
	}
	a.RelatedArticles = append(a.RelatedArticles[:index], a.RelatedArticles[index+1:]...)
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRelatedArticleRemoved, ArticleID: id, Summary: fmt.Sprintf("related article #%d removed", index+1)})
	return nil
}

// AddRelatedRecital appends a placeholder recital reference to the selected
// article and returns its index.
func (s *Store) AddRelatedRecital() (int, error) {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	a.RelatedRecitals = append(a.RelatedRecitals, RelatedRecital{
		RecitalNumber: fmt.Sprintf("前文X_%d", s.now().UnixMilli()),
		SummaryJA:     "新しい関連前文",
		SummaryEN:     "New related recital",
		Relevance:     "関連性の説明",
	})
	idx := len(a.RelatedRecitals) - 1
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRelatedRecitalAdded, ArticleID: id, Summary: fmt.Sprintf("related recital #%d added", idx+1)})
	return idx, nil
}

// DeleteRelatedRecital removes the recital reference at the index from the
// selected article.
func (s *Store) DeleteRelatedRecital(index int) error {
	s.mu.Lock()
	a, err := s.selectedArticle()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if index < 0 || index >= len(a.RelatedRecitals) {
		s.mu.Unlock()
		return fmt.Errorf("%w: related recital %d", ErrIndexOutOfRange, index)
	}
	a.RelatedRecitals = append(a.RelatedRecitals[:index], a.RelatedRecitals[index+1:]...)
	id := a.ArticleID
	s.mu.Unlock()

	s.notify(Event{Action: ActionRelatedRecitalRemoved, ArticleID: id, Summary: fmt.Sprintf("related recital #%d removed", index+1)})
	return nil
}

// digitsOf strips every non-digit rune from the number string.
func digitsOf(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeArticle replaces nil sequences with empty ones so that a
// serialize after load emits arrays, never null.
func normalizeArticle(a *Article) {
	if a.SlidePages == nil {
		a.SlidePages = []int{}
	}
	if a.Requirements == nil {
		a.Requirements = []Requirement{}
	}
	for i := range a.Requirements {
		if a.Requirements[i].SubItems == nil {
			a.Requirements[i].SubItems = []SubItem{}
		}
	}
	if a.RelatedArticles == nil {
		a.RelatedArticles = []RelatedArticle{}
	}
	if a.RelatedRecitals == nil {
		a.RelatedRecitals = []RelatedRecital{}
	}
	if a.RelatedAnnexes == nil {
		a.RelatedAnnexes = []RelatedAnnex{}
	}
	for i := range a.RelatedAnnexes {
		if a.RelatedAnnexes[i].Items == nil {
			a.RelatedAnnexes[i].Items = []AnnexItem{}
		}
	}
	if a.Notes == nil {
		a.Notes = []Note{}
	}
	if a.VisualElements.Elements == nil {
		a.VisualElements.Elements = []VisualElement{}
	}
	if a.Metadata.Tags == nil {
		a.Metadata.Tags = []string{}
	}
	if a.Metadata.Comments == nil {
		a.Metadata.Comments = []Comment{}
	}
}
