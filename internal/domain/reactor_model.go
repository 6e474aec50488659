package domain

import "time"

// Reactor type categories derived from the free-text model field.
const (
	TypePWR  = "PWR"
	TypeBWR  = "BWR"
	TypePHWR = "PHWR"
	TypeGCR  = "GCR"
	TypeLWGR = "LWGR"
	TypeFBR  = "FBR"
)

// TypeCategories lists every valid derived category, in taxonomy order.
var TypeCategories = []string{TypePWR, TypeBWR, TypePHWR, TypeGCR, TypeLWGR, TypeFBR}

// Reactor is one physical generating unit. The name is the natural key used
// for cross-referencing during re-import; everything else is nullable because
// the upstream database is full of holes.
type Reactor struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	AlternateName *string `gorm:"size:255" json:"alternate_name"`
	Country       *string `gorm:"size:100;index" json:"country"`
	Status        *string `gorm:"size:100" json:"status"`
	Owner         *string `gorm:"size:255" json:"owner"`
	Operator      *string `gorm:"size:255" json:"operator"`
	Model         *string `gorm:"size:100;index" json:"model"`

	// Derived by the classifier pass, one of TypeCategories when set.
	TypeCategory *string `gorm:"size:10;index" json:"type_category"`

	NetCapacity     *float64 `gorm:"column:net_capacity" json:"net_capacity"`
	ThermalCapacity *float64 `gorm:"column:thermal_capacity" json:"thermal_capacity"`
	GrossCapacity   *float64 `gorm:"column:gross_capacity" json:"gross_capacity"`

	ConstructionStart *time.Time `json:"construction_start"`
	FirstGridConnect  *time.Time `json:"first_grid_connection"`
	PermanentShutdown *time.Time `json:"permanent_shutdown"`

	// Filled in by the coordinate backfill pass.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	History []PerformanceRecord `gorm:"foreignKey:ReactorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (reactor *Reactor) HasCoordinates() bool {
	return reactor.Latitude != nil && reactor.Longitude != nil
}
