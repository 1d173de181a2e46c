package entities

type Zone struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
}
