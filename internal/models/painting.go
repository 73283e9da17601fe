package models

import (
	"time"
)

// Painting statuses. Availability is split by sales venue: paintings are
// either sold through the Maison du Père charity sale or directly by the artist.
const (
	StatusAvailableMaisonPere = "available_maison_pere"
	StatusAvailableDirect     = "available_direct"
	StatusSoldMaisonPere      = "sold_maison_pere"
	StatusSoldDirect          = "sold_direct"
	StatusNotForSale          = "not_for_sale"
)

// PaintingStatuses lists every valid painting status
var PaintingStatuses = []string{
	StatusAvailableMaisonPere,
	StatusAvailableDirect,
	StatusSoldMaisonPere,
	StatusSoldDirect,
	StatusNotForSale,
}

// IsValidStatus reports whether s is a member of the painting status enum
func IsValidStatus(s string) bool {
	for _, v := range PaintingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Painting represents a single artwork in the gallery
type Painting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SKU         string `gorm:"uniqueIndex;not null;size:20" json:"sku"`
	Title       string `gorm:"not null;size:200" json:"title"`
	Slug        string `gorm:"uniqueIndex;not null;size:200" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	PriceCAD   float64 `gorm:"not null" json:"price_cad"`
	Dimensions string  `gorm:"size:100" json:"dimensions"`

	CategoryID *uint `gorm:"index" json:"category_id,omitempty"`
	FinishID   *uint `gorm:"index" json:"finish_id,omitempty"`

	IsActive   bool   `gorm:"default:true" json:"is_active"`
	IsFeatured bool   `gorm:"default:false" json:"is_featured"`
	Status     string `gorm:"not null;size:25;default:'available_maison_pere';index" json:"status"`

	// Purchase record, filled in by the artist once a painting is sold
	PurchaserName   string     `gorm:"size:200" json:"purchaser_name,omitempty"`
	PurchaserCity   string     `gorm:"size:100" json:"purchaser_city,omitempty"`
	PurchaseComment string     `gorm:"type:text" json:"purchase_comment,omitempty"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Category *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Finish   *Finish         `gorm:"foreignKey:FinishID;constraint:OnDelete:SET NULL" json:"finish,omitempty"`
	Images   []PaintingImage `gorm:"foreignKey:PaintingID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName returns the table name for Painting
func (Painting) TableName() string {
	return "paintings"
}

// IsAvailable reports whether the painting can be purchased
func (p *Painting) IsAvailable() bool {
	return p.IsActive && (p.Status == StatusAvailableMaisonPere || p.Status == StatusAvailableDirect)
}

// PrimaryImage returns the image flagged as primary, or the first image
func (p *Painting) PrimaryImage() *PaintingImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// PaintingImage represents one of the images attached to a painting.
// At most one image per painting carries the primary flag; the repository
// enforces this transactionally on every primary-flag write.
type PaintingImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PaintingID uint   `gorm:"not null;index" json:"painting_id"`
	FilePath   string `gorm:"not null;size:500" json:"file_path"`
	AltText    string `gorm:"size:200" json:"alt_text,omitempty"`
	IsPrimary  bool   `gorm:"default:false" json:"is_primary"`
	Position   int    `gorm:"default:0" json:"position"`

	Painting Painting `gorm:"foreignKey:PaintingID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for PaintingImage
func (PaintingImage) TableName() string {
	return "painting_images"
}

// Category groups paintings (Abstraction, Banlieue, ...)
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:100" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null;size:100" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Position    int    `gorm:"default:0" json:"position"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Paintings []Painting `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount is used for API responses that include the active painting count
type CategoryWithCount struct {
	Category
	PaintingCount int64 `json:"painting_count"`
}

// Finish is the finish applied to a painting (epoxy, ink on canvas and mortar, ...)
type Finish struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:100" json:"name"`

	Paintings []Painting `gorm:"foreignKey:FinishID" json:"-"`
}

// TableName returns the table name for Finish
func (Finish) TableName() string {
	return "finishes"
}
