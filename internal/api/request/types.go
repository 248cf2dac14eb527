package request

// SignUpRequest is the request body for registering an account
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest is the request body for signing in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveRosterRequest is the request body for saving a roster. Each field
// holds the chosen player id for that slot; an empty field is an
// unfilled slot.
type SaveRosterRequest struct {
	Setter              string `json:"setter"`
	OutsideHitter       string `json:"outside_hitter"`
	OppositeHitter      string `json:"opposite_hitter"`
	MiddleBlocker       string `json:"middle_blocker"`
	Libero              string `json:"libero"`
	DefensiveSpecialist string `json:"defensive_specialist"`
}
