package pointer

func FromString(s string) *string {
	return &s
}
