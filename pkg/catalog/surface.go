package catalog

import "fmt"

// Surface identifies the sub-builder a method is invoked on.
type Surface int

const (
	SurfaceMinimumLevel Surface = iota + 1
	SurfaceEnrich
	// SurfaceSink methods are valid on both WriteTo and AuditTo.
	SurfaceSink
	SurfaceFilter
)

func (s Surface) String() string {
	switch s {
	case SurfaceMinimumLevel:
		return "MinimumLevel"
	case SurfaceEnrich:
		return "Enrich"
	case SurfaceSink:
		return "Sink"
	case SurfaceFilter:
		return "Filter"
	default:
		return fmt.Sprintf("Surface(%d)", int(s))
	}
}

// Category is the key-prefix class a recorded call belongs to.
type Category int

const (
	CategoryMinimumLevel Category = iota + 1
	CategoryMinimumLevelIs
	CategoryMinimumLevelOverride
	CategoryEnrich
	CategoryWriteTo
	CategoryAuditTo
	CategoryFilter
)

// String returns the key prefix word used by the key/value settings format.
func (c Category) String() string {
	switch c {
	case CategoryMinimumLevel, CategoryMinimumLevelIs, CategoryMinimumLevelOverride:
		return "minimum-level"
	case CategoryEnrich:
		return "enrich"
	case CategoryWriteTo:
		return "write-to"
	case CategoryAuditTo:
		return "audit-to"
	case CategoryFilter:
		return "filter"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Surface returns the sub-builder calls of this category are made on.
func (c Category) Surface() Surface {
	switch c {
	case CategoryMinimumLevel, CategoryMinimumLevelIs, CategoryMinimumLevelOverride:
		return SurfaceMinimumLevel
	case CategoryEnrich:
		return SurfaceEnrich
	case CategoryWriteTo, CategoryAuditTo:
		return SurfaceSink
	case CategoryFilter:
		return SurfaceFilter
	default:
		return 0
	}
}
