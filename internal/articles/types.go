package articles

// Category classifies what an article regulates.
type Category string

const (
	CategoryDefinition           Category = "definition"
	CategoryScope                Category = "scope"
	CategoryProhibition          Category = "prohibition"
	CategoryClassification       Category = "classification"
	CategoryObligationProvider   Category = "obligation_provider"
	CategoryObligationDeployer   Category = "obligation_deployer"
	CategoryQualityManagement    Category = "quality_management"
	CategoryConformityAssessment Category = "conformity_assessment"
	CategoryTransparency         Category = "transparency"
	CategoryTesting              Category = "testing"
	CategoryMonitoring           Category = "monitoring"
	CategoryGPAI                 Category = "gpai"

	// CategoryGeneral is the default for newly created articles. It has no
	// display label and renders raw.
	CategoryGeneral Category = "general"
)

// RiskLevel is the AI Act risk tier an article applies to.
type RiskLevel string

const (
	RiskProhibited   RiskLevel = "prohibited"
	RiskHigh         RiskLevel = "high-risk"
	RiskGPAI         RiskLevel = "gpai"
	RiskGPAISystemic RiskLevel = "gpai_systemic"
	RiskLimited      RiskLevel = "limited-risk"
	RiskMinimal      RiskLevel = "minimal-risk"
	RiskGeneral      RiskLevel = "general"
)

// RequirementType describes the normative force of a requirement.
type RequirementType string

const (
	RequirementMandatory       RequirementType = "mandatory"
	RequirementConditional     RequirementType = "conditional"
	RequirementRecommendation  RequirementType = "recommendation"
	RequirementProhibition     RequirementType = "prohibition"
	RequirementDefinition      RequirementType = "definition"
	RequirementScopeDefinition RequirementType = "scope_definition"
	RequirementConsideration   RequirementType = "consideration"
)

// ResponsibleParty names the operator a requirement binds. The dataset also
// carries the combined value "provider, deployer" and the empty string.
type ResponsibleParty string

const (
	PartyProvider         ResponsibleParty = "provider"
	PartyDeployer         ResponsibleParty = "deployer"
	PartyProviderDeployer ResponsibleParty = "provider, deployer"
	PartyImporter         ResponsibleParty = "importer"
	PartyDistributor      ResponsibleParty = "distributor"
	PartyNone             ResponsibleParty = ""
)

// RelationType describes how one article relates to another.
type RelationType string

const (
	RelationReferences     RelationType = "references"
	RelationPrerequisite   RelationType = "prerequisite"
	RelationRelated        RelationType = "related"
	RelationUsesDefinition RelationType = "uses_definition"
	RelationImplements     RelationType = "implements"
)

// NoteType classifies an annotation.
type NoteType string

const (
	NoteExplanation NoteType = "explanation"
	NoteReference   NoteType = "reference"
	NoteCaution     NoteType = "caution"
	NoteExample     NoteType = "example"
)

// VisualElementType identifies a supplementary visual descriptor.
type VisualElementType string

const (
	VisualFlowchart VisualElementType = "flowchart"
	VisualTable     VisualElementType = "table"
	VisualDiagram   VisualElementType = "diagram"
	VisualGraph     VisualElementType = "graph"
)

// Status is the editorial lifecycle stage of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReviewed  Status = "reviewed"
	StatusApproved  Status = "approved"
	StatusPublished Status = "published"
)

// Collection is the root aggregate: one dataset of regulation articles.
// Article order is display order and survives load/save round-trips.
type Collection struct {
	SchemaVersion string    `json:"schema_version"`
	Description   string    `json:"description"`
	CreatedAt     string    `json:"created_at"`
	Articles      []Article `json:"articles"`
}

// Article is one structured legal-text unit, the unit of edit and selection.
type Article struct {
	ArticleID       string           `json:"article_id"`
	ArticleNumber   string           `json:"article_number"`
	SectionID       string           `json:"section_id"`
	TitleJA         string           `json:"title_ja"`
	TitleEN         string           `json:"title_en"`
	SlidePages      []int            `json:"slide_pages"`
	Category        Category         `json:"category"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	ArticleText     ArticleText      `json:"article_text"`
	Requirements    []Requirement    `json:"requirements"`
	RelatedArticles []RelatedArticle `json:"related_articles"`
	RelatedRecitals []RelatedRecital `json:"related_recitals"`
	RelatedAnnexes  []RelatedAnnex   `json:"related_annexes"`
	Notes           []Note           `json:"notes"`
	VisualElements  VisualElements   `json:"visual_elements"`
	Metadata        Metadata         `json:"metadata"`
}

// ArticleText is a bilingual body text pair.
type ArticleText struct {
	JA string `json:"ja"`
	EN string `json:"en"`
}

// Requirement is one obligation, prohibition or definition extracted from an
// article. ReqID is unique within its article, not globally.
type Requirement struct {
	ReqID              string           `json:"req_id"`
	Type               RequirementType  `json:"type"`
	DescriptionJA      string           `json:"description_ja"`
	DescriptionEN      string           `json:"description_en"`
	SubItems           []SubItem        `json:"sub_items"`
	Conditions         string           `json:"conditions"`
	VerificationMethod string           `json:"verification_method"`
	ResponsibleParty   ResponsibleParty `json:"responsible_party"`
}

// SubItem is a lettered sub-point of a requirement.
type SubItem struct {
	ItemID        string `json:"item_id"`
	DescriptionJA string `json:"description_ja"`
	DescriptionEN string `json:"description_en"`
}

// RelatedArticle is a weak reference to another article. The target may have
// been deleted; resolution is expected to tolerate dangling ids.
type RelatedArticle struct {
	ArticleID     string       `json:"article_id"`
	ArticleNumber string       `json:"article_number"`
	RelationType  RelationType `json:"relation_type"`
	Description   string       `json:"description"`
}

// RelatedRecital is a denormalized reference to an explanatory recital.
// Recitals are never first-class entities in this model.
type RelatedRecital struct {
	RecitalNumber string `json:"recital_number"`
	SummaryJA     string `json:"summary_ja"`
	SummaryEN     string `json:"summary_en"`
	Relevance     string `json:"relevance"`
}

// RelatedAnnex references an annex section of the regulation.
type RelatedAnnex struct {
	AnnexID     string      `json:"annex_id"`
	Section     string      `json:"section"`
	TitleJA     string      `json:"title_ja"`
	TitleEN     string      `json:"title_en"`
	Description string      `json:"description"`
	Items       []AnnexItem `json:"items"`
}

// AnnexItem is one entry of a referenced annex.
type AnnexItem struct {
	ItemID    string `json:"item_id"`
	ContentJA string `json:"content_ja"`
	ContentEN string `json:"content_en"`
}

// Note is an editorial annotation attached to an article.
type Note struct {
	NoteID    string   `json:"note_id"`
	Type      NoteType `json:"type"`
	ContentJA string   `json:"content_ja"`
	ContentEN string   `json:"content_en"`
	Position  string   `json:"position"`
}

// VisualElements carries supplementary visual descriptors. The store passes
// these through unchanged.
type VisualElements struct {
	HasFlowchart bool            `json:"has_flowchart"`
	HasDiagram   bool            `json:"has_diagram"`
	HasTable     bool            `json:"has_table"`
	Elements     []VisualElement `json:"elements"`
}

// VisualElement is one visual descriptor. Data is opaque to the store.
type VisualElement struct {
	Type        VisualElementType `json:"type"`
	Description string            `json:"description"`
	Data        map[string]any    `json:"data"`
	ImagePath   string            `json:"image_path,omitempty"`
}

// Metadata is the editorial lifecycle record of an article.
type Metadata struct {
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Version   string    `json:"version"`
	Author    string    `json:"author"`
	Status    Status    `json:"status"`
	Tags      []string  `json:"tags"`
	Comments  []Comment `json:"comments"`
}

// Comment is a review comment on an article.
type Comment struct {
	CommentID string `json:"comment_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Filter selects a subset of the collection for display. Empty fields match
// everything.
type Filter struct {
	SearchText string    `json:"search_text"`
	Category   Category  `json:"category"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

var categoryLabels = map[Category]string{
	CategoryDefinition:           "定義",
	CategoryScope:                "範囲・目的",
	CategoryProhibition:          "禁止事項",
	CategoryClassification:       "分類",
	CategoryObligationProvider:   "提供者の義務",
	CategoryObligationDeployer:   "配備者の義務",
	CategoryQualityManagement:    "品質管理",
	CategoryConformityAssessment: "適合性評価",
	CategoryTransparency:         "透明性",
	CategoryTesting:              "テスト",
	CategoryMonitoring:           "モニタリング",
	CategoryGPAI:                 "汎用AI関連",
}

var riskLabels = map[RiskLevel]string{
	RiskProhibited:   "禁止",
	RiskHigh:         "高リスク",
	RiskGPAI:         "汎用AI",
	RiskGPAISystemic: "システミックリスクGPAI",
	RiskLimited:      "限定的リスク",
	RiskMinimal:      "最小リスク",
	RiskGeneral:      "一般",
}

// Label returns the Japanese display label for the category. Unknown values
// pass through unchanged rather than being swallowed.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Label returns the Japanese display label for the risk level. Unknown
// values pass through unchanged.
func (r RiskLevel) Label() string {
	if l, ok := riskLabels[r]; ok {
		return l
	}
	return string(r)
}
