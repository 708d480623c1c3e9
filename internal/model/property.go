package model

// Property is a rentable unit owned by a landlord user.
// Field names follow the backend wire format: the image reference is `src`
// and the document id is `_id`.
type Property struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	ImageURL     string `json:"src"`
	Price        int64  `json:"price"` // monthly rent in whole rupees
	Location     string `json:"location"`
	Availability bool   `json:"availability"`
	OwnerID      string `json:"ownerId"`
}

// PropertyDraft is the payload for creating or fully patching a listing.
type PropertyDraft struct {
	Name         string `json:"name"`
	ImageURL     string `json:"src"`
	Price        int64  `json:"price"`
	Location     string `json:"location"`
	Availability bool   `json:"availability"`
}

// OwnedBy reports whether the listing belongs to the given user.
func (p *Property) OwnedBy(userID string) bool {
	return p.OwnerID == userID
}
