package valueobjects

import "fmt"

type Category string

const (
	CategoryNoVideo         Category = "no_video"
	CategoryNoPower         Category = "no_power"
	CategoryDVRNVRIssue     Category = "dvr_nvr_issue"
	CategoryCameraFault     Category = "camera_fault"
	CategoryHDDIssue        Category = "hdd_issue"
	CategoryNetworkIssue    Category = "network_issue"
	CategoryMobileAppRemote Category = "mobile_app_remote_view"
	CategoryCableConnector  Category = "cable_connector"
	CategoryOther           Category = "other"
)

var validCategories = map[Category]bool{
	CategoryNoVideo:         true,
	CategoryNoPower:         true,
	CategoryDVRNVRIssue:     true,
	CategoryCameraFault:     true,
	CategoryHDDIssue:        true,
	CategoryNetworkIssue:    true,
	CategoryMobileAppRemote: true,
	CategoryCableConnector:  true,
	CategoryOther:           true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
