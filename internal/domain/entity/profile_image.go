package entity

// ProfileImage is a profile picture stored in a side collection. Seed
// directory records are read-only, so their images live here and are
// merged in at read time.
type ProfileImage struct {
	UserID int    `json:"userId"`
	Role   Role   `json:"role"`
	Image  string `json:"image"`
}
