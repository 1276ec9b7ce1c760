package models

// Member represents a member of the choir (singer, musician, or leadership)
type Member struct {
	BaseModel
	FullName    string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	FirstName   string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName    string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PhoneNumber string     `json:"phone_number" gorm:"size:20"`
	Role        MemberRole `json:"role" gorm:"type:varchar(50);not null;default:'singer'" validate:"required"`
	VoicePart   *VoicePart `json:"voice_part,omitempty" gorm:"type:varchar(20)"`
	Instrument  string     `json:"instrument" gorm:"size:100"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	JoinedYear  int        `json:"joined_year"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
