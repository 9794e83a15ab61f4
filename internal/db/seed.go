package db

import (
	"time"

	"campus-clubs-go/internal/domain/club"
	"campus-clubs-go/internal/domain/event"
	"campus-clubs-go/internal/domain/gallery"
	"campus-clubs-go/internal/domain/member"
	"gorm.io/gorm"
)

// Seed provisions the directory's sample dataset on first startup. It is
// idempotent: any existing club row short-circuits the whole thing.
func Seed(gormDB *gorm.DB) error {
	var clubs int64
	if err := gormDB.Model(&club.Club{}).Count(&clubs).Error; err != nil {
		return err
	}
	if clubs > 0 {
		return nil
	}

	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seedClubs()).Error; err != nil {
			return err
		}
		if err := tx.Create(seedMembers()).Error; err != nil {
			return err
		}
		if err := tx.Create(seedEvents()).Error; err != nil {
			return err
		}
		return tx.Create(seedPhotos()).Error
	})
}

func seedClubs() []club.Club {
	return []club.Club{
		{
			ID:              1,
			Name:            "Tech Innovators Club",
			Category:        "Technology",
			Description:     "Explore cutting-edge technology and innovation",
			FullDescription: "The Tech Innovators Club is a vibrant community of students passionate about technology and innovation. We organize hackathons, coding workshops, tech talks with industry experts, and collaborative projects. Members gain hands-on experience with emerging technologies including AI, blockchain, cloud computing, and web development. Join us to build, learn, and innovate together!",
			Logo:            "tech_logo.png",
			MeetingTime:     "Every Friday, 4:00 PM - 6:00 PM",
			MeetingLocation: "Computer Lab A-305",
			ContactEmail:    "tech.innovators@college.edu",
			PresidentName:   "Rahul Sharma",
			FoundedYear:     2018,
		},
		{
			ID:              2,
			Name:            "Lens & Shutter Photography",
			Category:        "Arts & Media",
			Description:     "Capture life through creative lenses",
			FullDescription: "Lens & Shutter is where photography enthusiasts come together to explore visual storytelling. We conduct photo walks, workshops on composition and editing, exhibitions, and inter-college competitions. Whether you're a beginner with a smartphone or an advanced DSLR user, we welcome all who see the world through a creative lens.",
			Logo:            "photo_logo.png",
			MeetingTime:     "Every Wednesday, 3:30 PM - 5:30 PM",
			MeetingLocation: "Art Studio, 2nd Floor",
			ContactEmail:    "lensshutter@college.edu",
			PresidentName:   "Priya Desai",
			FoundedYear:     2015,
		},
		{
			ID:              3,
			Name:            "Drama & Theatre Society",
			Category:        "Performing Arts",
			Description:     "Unleash your theatrical potential",
			FullDescription: "The Drama & Theatre Society is your stage to shine! We produce full-length plays, skits, and performances throughout the year. Develop acting skills, stage management, and production expertise while building confidence and creativity.",
			Logo:            "drama_logo.png",
			MeetingTime:     "Monday & Thursday, 5:00 PM - 7:00 PM",
			MeetingLocation: "Main Auditorium",
			ContactEmail:    "drama.society@college.edu",
			PresidentName:   "Arjun Patel",
			FoundedYear:     2012,
		},
		{
			ID:              4,
			Name:            "Green Earth Environmental Club",
			Category:        "Social & Environment",
			Description:     "Creating a sustainable campus future",
			FullDescription: "Green Earth is dedicated to environmental awareness and sustainable practices. We organize tree plantation drives, campus clean-up campaigns, waste segregation initiatives, workshops on climate change, and eco-friendly competitions.",
			Logo:            "env_logo.png",
			MeetingTime:     "Every Saturday, 9:00 AM - 12:00 PM",
			MeetingLocation: "Campus Garden & Eco Center",
			ContactEmail:    "greenearth@college.edu",
			PresidentName:   "Sneha Kulkarni",
			FoundedYear:     2016,
		},
		{
			ID:              5,
			Name:            "Literary Circle",
			Category:        "Literature & Writing",
			Description:     "Words that inspire and transform",
			FullDescription: "The Literary Circle celebrates the power of words through poetry, prose, creative writing, and literary discussions. We host open mic nights, book club meetings, writing workshops, and publish an annual literary magazine.",
			Logo:            "lit_logo.png",
			MeetingTime:     "Every Tuesday, 4:30 PM - 6:00 PM",
			MeetingLocation: "Library Reading Room",
			ContactEmail:    "litcircle@college.edu",
			PresidentName:   "Kavya Menon",
			FoundedYear:     2017,
		},
		{
			ID:              6,
			Name:            "Robotics & Automation Lab",
			Category:        "Engineering & Innovation",
			Description:     "Building the future with robotics",
			FullDescription: "The Robotics & Automation Lab brings together engineering minds to design, build, and program robots. We participate in national-level robotics competitions, conduct workshops on Arduino, Raspberry Pi, and IoT.",
			Logo:            "robo_logo.png",
			MeetingTime:     "Wednesday & Friday, 3:00 PM - 6:00 PM",
			MeetingLocation: "Engineering Workshop Lab",
			ContactEmail:    "robotics.lab@college.edu",
			PresidentName:   "Vikram Joshi",
			FoundedYear:     2019,
		},
	}
}

func seedMembers() []member.Member {
	return []member.Member{
		{ClubID: 1, Name: "Rahul Sharma", Role: member.RolePresident, Year: "Final Year", Department: "Computer Science", Email: "rahul.s@college.edu", JoinedDate: date(2023, 8, 1)},
		{ClubID: 1, Name: "Amit Kumar", Role: member.RoleVicePresident, Year: "Third Year", Department: "Information Technology", Email: "amit.k@college.edu", JoinedDate: date(2023, 8, 15)},
		{ClubID: 1, Name: "Neha Singh", Role: "Technical Lead", Year: "Third Year", Department: "Computer Science", Email: "neha.s@college.edu", JoinedDate: date(2023, 9, 1)},
		{ClubID: 2, Name: "Priya Desai", Role: member.RolePresident, Year: "Final Year", Department: "Fine Arts", Email: "priya.d@college.edu", JoinedDate: date(2023, 7, 20)},
		{ClubID: 2, Name: "Rohan Mehta", Role: "Photography Head", Year: "Second Year", Department: "Media Studies", Email: "rohan.m@college.edu", JoinedDate: date(2024, 8, 5)},
		{ClubID: 3, Name: "Arjun Patel", Role: member.RolePresident, Year: "Final Year", Department: "English Literature", Email: "arjun.p@college.edu", JoinedDate: date(2022, 8, 1)},
		{ClubID: 3, Name: "Kavya Nair", Role: "Director", Year: "Third Year", Department: "Performing Arts", Email: "kavya.n@college.edu", JoinedDate: date(2023, 8, 1)},
		{ClubID: 4, Name: "Sneha Kulkarni", Role: member.RolePresident, Year: "Final Year", Department: "Environmental Science", Email: "sneha.k@college.edu", JoinedDate: date(2023, 6, 15)},
		{ClubID: 4, Name: "Vikram Joshi", Role: "Event Coordinator", Year: "Second Year", Department: "Biology", Email: "vikram.j@college.edu", JoinedDate: date(2024, 8, 20)},
		{ClubID: 5, Name: "Kavya Menon", Role: member.RolePresident, Year: "Final Year", Department: "English Literature", Email: "kavya.m@college.edu", JoinedDate: date(2023, 7, 1)},
		{ClubID: 6, Name: "Vikram Joshi", Role: member.RolePresident, Year: "Final Year", Department: "Electronics Engineering", Email: "vikram.joshi@college.edu", JoinedDate: date(2023, 8, 10)},
	}
}

func seedEvents() []event.Event {
	return []event.Event{
		{ID: 1, ClubID: 1, Title: "HackFest 2026", Description: "24-hour coding marathon with exciting prizes", StartsAt: at(2026, 2, 15, 9, 0), Location: "Main Auditorium", Status: event.StatusUpcoming},
		{ID: 2, ClubID: 1, Title: "AI/ML Workshop Series", Description: "Introduction to Machine Learning with Python", StartsAt: at(2026, 1, 25, 14, 0), Location: "Computer Lab B-204", Status: event.StatusUpcoming},
		{ID: 3, ClubID: 2, Title: "Moments in Frame Exhibition", Description: "Annual showcase of best student photographs", StartsAt: at(2026, 2, 1, 10, 0), Location: "College Art Gallery", Status: event.StatusUpcoming},
		{ID: 4, ClubID: 3, Title: "Annual Play: Romeo & Juliet", Description: "Classic Shakespearean performance", StartsAt: at(2026, 3, 10, 18, 0), Location: "Main Auditorium", Status: event.StatusUpcoming},
		{ID: 5, ClubID: 4, Title: "Green Campus Drive", Description: "Plant 500 trees across campus", StartsAt: at(2026, 1, 20, 7, 0), Location: "Campus Grounds", Status: event.StatusUpcoming},
		{ID: 6, ClubID: 5, Title: "Open Mic Night", Description: "Poetry, storytelling, and spoken word performances", StartsAt: at(2026, 1, 22, 18, 0), Location: "Library Auditorium", Status: event.StatusUpcoming},
		{ID: 7, ClubID: 6, Title: "Robo Wars Competition", Description: "Battle of the bots - build and compete!", StartsAt: at(2026, 2, 20, 9, 0), Location: "Engineering Workshop", Status: event.StatusUpcoming},
	}
}

func seedPhotos() []gallery.Photo {
	return []gallery.Photo{
		{EventID: 1, ImagePath: "gallery/hackfest_teams.jpg", Caption: "Teams at work during last year's HackFest", UploadedAt: at(2025, 2, 16, 12, 0)},
		{EventID: 1, ImagePath: "gallery/hackfest_winners.jpg", Caption: "HackFest winning team with their prototype", UploadedAt: at(2025, 2, 16, 18, 30)},
		{EventID: 3, ImagePath: "gallery/exhibition_opening.jpg", Caption: "Opening day of the Moments in Frame exhibition", UploadedAt: at(2025, 2, 2, 11, 15)},
		{EventID: 4, ImagePath: "gallery/drama_rehearsal.jpg", Caption: "Dress rehearsal on the main stage", UploadedAt: at(2025, 3, 8, 19, 45)},
		{EventID: 5, ImagePath: "gallery/tree_plantation.jpg", Caption: "Volunteers during the campus plantation drive", UploadedAt: at(2025, 1, 21, 9, 0)},
		{EventID: 6, ImagePath: "gallery/open_mic.jpg", Caption: "Spoken word session at Open Mic Night", UploadedAt: at(2025, 1, 23, 20, 10)},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
