package models

// Song represents an entry in the song library. Performances and rehearsals
// reference songs by ID; library management itself lives outside this service.
type Song struct {
	BaseModel
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Composer    string `json:"composer" gorm:"size:200"`
	Author      string `json:"author" gorm:"size:200"`
	DefaultKey  string `json:"default_key" gorm:"size:10"`
	DurationSec int    `json:"duration_sec"`
	CCLINumber  string `json:"ccli_number" gorm:"size:20"`
	Tags        string `json:"tags" gorm:"size:500"`
}

// TableName returns the table name for Song
func (Song) TableName() string {
	return "songs"
}
