package club

import "time"

// Club is a registered club or committee. The original dataset carried a
// denormalized member_count column that was never kept in sync; it is gone
// here and member counts are always computed from the members table.
type Club struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Category        string `gorm:"not null;index"`
	Description     string
	FullDescription string
	Logo            string
	MeetingTime     string
	MeetingLocation string
	ContactEmail    string
	ContactPhone    string
	PresidentName   string
	FoundedYear     int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Club) TableName() string { return "clubs" }

// Summary is a club annotated with its live member count.
type Summary struct {
	Club
	MemberCount int64
}

// Stats are the overview numbers shown on the home page.
type Stats struct {
	TotalClubs     int64
	TotalMembers   int64
	UpcomingEvents int64
}
