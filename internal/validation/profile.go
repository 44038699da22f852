package validation

type ProfileFormValues struct {
	DisplayName       string `json:"displayName" validate:"min=2"`
	Bio               string `json:"bio" validate:"max=500"`
	EntertainmentType string `json:"entertainmentType" validate:"oneof=dancer bartender hostess"`
	HourlyRate        string `json:"hourlyRate" validate:"digits"`
	Experience        string `json:"experience" validate:"digits"`
}

var profileMessages = Messages{
	"displayName.min":         "Display name must be at least 2 characters.",
	"bio.max":                 "Bio must not be longer than 500 characters.",
	"entertainmentType.oneof": "Please select a valid entertainment type.",
	"hourlyRate.digits":       "Hourly rate must be a whole number.",
	"experience.digits":       "Experience must be a whole number of years.",
}

// ValidateProfile checks every field and returns all failures at once.
// A nil result means the submission is valid. No value is coerced.
func ValidateProfile(v ProfileFormValues) FieldErrors {
	errs, err := Struct(v, profileMessages)
	if err != nil {
		// Only reachable on a programming error in the schema itself.
		return FieldErrors{"_": err.Error()}
	}
	return errs
}
