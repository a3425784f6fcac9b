package domains

// ListingStatusActive marks a listing as open for contact.
const ListingStatusActive = "active"

// Listing is a seller-submitted harvest announcement. Field names on the
// wire are flat lowercase; this is the backend table contract and must not
// change.
type Listing struct {
	ID          string `json:"id,omitempty"`
	CropType    string `json:"croptype"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Location    string `json:"location"`
	Price       string `json:"price"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	DatePosted  string `json:"dateposted"`
	Status      string `json:"status"`
	UserID      string `json:"user_id,omitempty"`
}
