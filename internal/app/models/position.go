package models

// Position defines a staff position based on the 'positions' table
type Position struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// AppliedPosition defines a position candidates apply for, based on the 'applied_positions' table
type AppliedPosition struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
