package api

// Side is the edge of the anchor a popup is attached to.
type Side string

const (
	SideTop    Side = "top"
	SideLeft   Side = "left"
	SideBottom Side = "bottom"
	SideRight  Side = "right"
)

// PopupID identifies a popup created by a popup host. Zero means no popup.
type PopupID int

// PopupKind distinguishes the add-tag affordance from the persistent tag tooltip.
type PopupKind string

const (
	PopupAddTag PopupKind = "add-tag"
	PopupTag    PopupKind = "tag"
)

// PopupSpec is the content of a popup.
type PopupSpec struct {
	Kind    PopupKind `json:"kind" yaml:"kind"`
	Element int       `json:"element" yaml:"element"`
	Tag     string    `json:"tag,omitempty" yaml:"tag,omitempty"`
	// Active marks the tooltip of a hovered element
	Active bool `json:"active,omitempty" yaml:"active,omitempty"`
	// Editing is set while the tag editor is open inside the popup
	Editing        bool `json:"editing,omitempty" yaml:"editing,omitempty"`
	HasStateRender bool `json:"hasStateRender,omitempty" yaml:"hasStateRender,omitempty"`
	HasClickAction bool `json:"hasClickAction,omitempty" yaml:"hasClickAction,omitempty"`
}

// Placement positions a popup in container pixels.
type Placement struct {
	Anchor  Point `json:"anchor" yaml:"anchor"`
	Side    Side  `json:"side" yaml:"side"`
	Visible bool  `json:"visible" yaml:"visible"`
}
