package banner

import (
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/ui/icon"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// Status selects the banner's tone.
type Status string

// Banner statuses. The zero value is the neutral default.
const (
	StatusDefault  Status = ""
	StatusSuccess  Status = "success"
	StatusInfo     Status = "info"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Valid reports whether s is one of the named statuses. Rendering does not
// require it: unknown statuses fall back to the default variant.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusInfo, StatusWarning, StatusCritical:
		return true
	default:
		return false
	}
}

// ARIA roles a banner announces itself with.
const (
	RoleStatus = "status"
	RoleAlert  = "alert"
)

// Variant is the presentation derived from a status.
type Variant struct {
	Color icon.Color
	Icon  icons.Source
	Role  string
	// Class is the status modifier class, empty for the default variant.
	Class string
}

// VariantFor maps status to its presentation.
func VariantFor(status Status) Variant {
	switch status {
	case StatusSuccess:
		return Variant{Color: icon.ColorGreenDark, Icon: icons.CircleTickMajorTwotone, Role: RoleStatus, Class: styles.BannerStatus(string(status))}
	case StatusInfo:
		return Variant{Color: icon.ColorTealDark, Icon: icons.CircleInformationMajorTwotone, Role: RoleStatus, Class: styles.BannerStatus(string(status))}
	case StatusWarning:
		return Variant{Color: icon.ColorYellowDark, Icon: icons.CircleAlertMajorTwotone, Role: RoleAlert, Class: styles.BannerStatus(string(status))}
	case StatusCritical:
		return Variant{Color: icon.ColorRedDark, Icon: icons.CircleDisabledMajorTwotone, Role: RoleAlert, Class: styles.BannerStatus(string(status))}
	default:
		return Variant{Color: icon.ColorInkLighter, Icon: icons.FlagMajorTwotone, Role: RoleStatus}
	}
}
