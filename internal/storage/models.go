package storage

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Flexible sub-documents from the content schemas (specifications, image
// lists, SEO blocks...) are stored as JSONB and passed through unparsed.

type Product struct {
	ID             int64          `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Slug           string         `db:"slug" json:"slug"`
	Description    string         `db:"description" json:"description"`
	Category       string         `db:"category" json:"category"`
	Type           string         `db:"type" json:"type"`
	Specifications types.JSONText `db:"specifications" json:"specifications,omitempty"`
	Pricing        types.JSONText `db:"pricing" json:"pricing,omitempty"`
	Features       pq.StringArray `db:"features" json:"features"`
	Applications   pq.StringArray `db:"applications" json:"applications"`
	Images         types.JSONText `db:"images" json:"images,omitempty"`
	TechnicalSpecs types.JSONText `db:"technical_specs" json:"technicalSpecs,omitempty"`
	Certifications pq.StringArray `db:"certifications" json:"certifications"`
	SEO            types.JSONText `db:"seo" json:"seo,omitempty"`
	IsActive       bool           `db:"is_active" json:"isActive"`
	IsFeatured     bool           `db:"is_featured" json:"isFeatured"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// ProductFilter narrows ListProducts. Nil pointers mean "no constraint".
type ProductFilter struct {
	Category string
	Type     string
	Featured *bool
	Active   *bool
}

type Blog struct {
	ID          int64          `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Excerpt     string         `db:"excerpt" json:"excerpt"`
	Content     string         `db:"content" json:"content"`
	Category    string         `db:"category" json:"category"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Author      string         `db:"author" json:"author"`
	ReadTime    int            `db:"read_time" json:"readTime"`
	Views       int64          `db:"views" json:"views"`
	IsPublished bool           `db:"is_published" json:"isPublished"`
	PublishedAt *time.Time     `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

type BlogFilter struct {
	Category      string
	Tag           string
	PublishedOnly bool
}

type Testimonial struct {
	ID             int64          `db:"id" json:"id"`
	ClientName     string         `db:"client_name" json:"clientName"`
	Company        string         `db:"company" json:"company"`
	Position       string         `db:"position" json:"position"`
	Rating         int            `db:"rating" json:"rating"`
	Testimonial    string         `db:"testimonial" json:"testimonial"`
	Image          types.JSONText `db:"image" json:"image,omitempty"`
	CompanyLogo    string         `db:"company_logo" json:"companyLogo"`
	ProjectDetails string         `db:"project_details" json:"projectDetails"`
	IsActive       bool           `db:"is_active" json:"isActive"`
	IsFeatured     bool           `db:"is_featured" json:"isFeatured"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
}

type CaseStudy struct {
	ID            int64          `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Slug          string         `db:"slug" json:"slug"`
	Client        types.JSONText `db:"client" json:"client,omitempty"`
	Challenge     string         `db:"challenge" json:"challenge"`
	Solution      string         `db:"solution" json:"solution"`
	Results       string         `db:"results" json:"results"`
	Metrics       types.JSONText `db:"metrics" json:"metrics,omitempty"`
	Images        types.JSONText `db:"images" json:"images,omitempty"`
	FeaturedImage types.JSONText `db:"featured_image" json:"featuredImage,omitempty"`
	Tags          pq.StringArray `db:"tags" json:"tags"`
	IsPublished   bool           `db:"is_published" json:"isPublished"`
	IsFeatured    bool           `db:"is_featured" json:"isFeatured"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// Quote statuses follow the admin review workflow.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusReviewed  = "reviewed"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusConverted = "converted"
	QuoteStatusRejected  = "rejected"
)

// Quote is a customer-submitted request for custom pricing. It stores the
// raw requirements only; no computed estimate is persisted.
type Quote struct {
	ID                  int64     `db:"id" json:"id"`
	Reference           string    `db:"reference" json:"reference"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	Phone               string    `db:"phone" json:"phone"`
	Company             string    `db:"company" json:"company"`
	BoxType             string    `db:"box_type" json:"boxType"`
	Quantity            int       `db:"quantity" json:"quantity"`
	Length              *float64  `db:"length" json:"length,omitempty"`
	Width               *float64  `db:"width" json:"width,omitempty"`
	Height              *float64  `db:"height" json:"height,omitempty"`
	Printing            bool      `db:"printing" json:"printing"`
	PrintColors         string    `db:"print_colors" json:"printColors"`
	UseCase             string    `db:"use_case" json:"useCase"`
	SpecialRequirements string    `db:"special_requirements" json:"specialRequirements"`
	Status              string    `db:"status" json:"status"`
	QuotedPrice         *float64  `db:"quoted_price" json:"quotedPrice,omitempty"`
	Notes               string    `db:"notes" json:"notes"`
	CreatedAt           time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}

type Contact struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
