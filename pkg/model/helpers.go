package model

// StringPtr returns a pointer to s, for populating optional text fields.
func StringPtr(s string) *string {
	return &s
}
