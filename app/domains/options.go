package domains

// Option is a selectable value with its French display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CropOptions lists the crops a listing can advertise.
var CropOptions = []Option{
	{Value: "maize", Label: "Maïs"},
	{Value: "cassava", Label: "Manioc"},
	{Value: "yam", Label: "Igname"},
	{Value: "cotton", Label: "Coton"},
	{Value: "coffee", Label: "Café"},
	{Value: "cocoa", Label: "Cacao"},
	{Value: "rice", Label: "Riz"},
	{Value: "beans", Label: "Haricots"},
}

// LocationOptions lists the cities a listing or profile can reference.
var LocationOptions = []string{
	"Lomé",
	"Kpalimé",
	"Atakpamé",
	"Sokodé",
	"Kara",
	"Dapaong",
	"Tsévié",
	"Aného",
}

// UnitOptions lists the quantity units a listing can use.
var UnitOptions = []Option{
	{Value: "kg", Label: "Kilogrammes (kg)"},
	{Value: "sac", Label: "Sacs (50kg)"},
	{Value: "tonne", Label: "Tonnes"},
}

// UserTypeOptions lists the roles a profile can declare.
var UserTypeOptions = []Option{
	{Value: UserTypeFarmer, Label: "Agriculteur"},
	{Value: UserTypeBuyer, Label: "Acheteur"},
	{Value: UserTypeBoth, Label: "Les deux"},
}

// CropLabel returns the French label for a crop code, or the code itself
// when unknown.
func CropLabel(code string) string {
	for _, c := range CropOptions {
		if c.Value == code {
			return c.Label
		}
	}
	return code
}

// UserTypeLabel returns the French label for a user type, or the raw value
// when unknown.
func UserTypeLabel(value string) string {
	for _, u := range UserTypeOptions {
		if u.Value == value {
			return u.Label
		}
	}
	return value
}
