package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"choir-management-backend/internal/config"
	"choir-management-backend/internal/database"
	"choir-management-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type MemberData struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Role        string `yaml:"role"`
	VoicePart   string `yaml:"voice_part,omitempty"`
	Instrument  string `yaml:"instrument,omitempty"`
	JoinedYear  int    `yaml:"joined_year,omitempty"`
}

type SongData struct {
	Title       string `yaml:"title"`
	Composer    string `yaml:"composer,omitempty"`
	Author      string `yaml:"author,omitempty"`
	DefaultKey  string `yaml:"default_key,omitempty"`
	DurationSec int    `yaml:"duration_sec,omitempty"`
	CCLINumber  string `yaml:"ccli_number,omitempty"`
	Tags        string `yaml:"tags,omitempty"`
}

type ShiftData struct {
	LeaderEmail string `yaml:"leader_email"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Status      string `yaml:"status"`
	Notes       string `yaml:"notes,omitempty"`
}

type PerformanceSongData struct {
	Title         string `yaml:"title"`
	Order         int    `yaml:"order"`
	MusicalKey    string `yaml:"musical_key,omitempty"`
	TimeAllocated int    `yaml:"time_allocated,omitempty"`
}

type PerformanceData struct {
	Title          string                `yaml:"title"`
	Date           string                `yaml:"date"`
	Type           string                `yaml:"type"`
	Status         string                `yaml:"status"`
	Location       string                `yaml:"location,omitempty"`
	ShiftLeadEmail string                `yaml:"shift_lead_email,omitempty"`
	Songs          []PerformanceSongData `yaml:"songs,omitempty"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type SongsFile struct {
	Songs []SongData `yaml:"songs"`
}

type ShiftsFile struct {
	LeadershipShifts []ShiftData `yaml:"leadership_shifts"`
}

type PerformancesFile struct {
	Performances []PerformanceData `yaml:"performances"`
}

func main() {
	// Load .env if present; environment variables win otherwise
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	songs, err := loadSongs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load songs: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leadership shifts: %w", err)
	}

	performances, err := loadPerformances(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load performances: %w", err)
	}

	// Create members first; shifts and performances reference them by email
	memberMap := make(map[string]*models.Member)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		memberMap[memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(members))

	songMap := make(map[string]*models.Song)
	songCreated := 0
	for _, songData := range songs {
		song, created, err := createSong(db, songData)
		if err != nil {
			return fmt.Errorf("failed to create song %s: %w", songData.Title, err)
		}
		songMap[songData.Title] = song
		if created {
			songCreated++
		}
	}
	log.Printf("Songs: %d created, %d total", songCreated, len(songs))

	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, memberMap)
		if err != nil {
			log.Printf("Warning: failed to create shift for %s: %v", shiftData.LeaderEmail, err)
			continue
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("Leadership shifts: %d created, %d total", shiftCreated, len(shifts))

	performanceCreated := 0
	for _, performanceData := range performances {
		_, created, err := createPerformance(db, performanceData, memberMap, songMap)
		if err != nil {
			log.Printf("Warning: failed to create performance %s: %v", performanceData.Title, err)
			continue
		}
		if created {
			performanceCreated++
		}
	}
	log.Printf("Performances: %d created, %d total", performanceCreated, len(performances))

	return nil
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var all []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Members...)
		}
		return nil
	})

	return all, err
}

func loadSongs(dataDir string) ([]SongData, error) {
	var all []SongData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "songs") {
			var file SongsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Songs...)
		}
		return nil
	})

	return all, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var all []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.LeadershipShifts...)
		}
		return nil
	})

	return all, err
}

func loadPerformances(dataDir string) ([]PerformanceData, error) {
	var all []PerformanceData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "performances") {
			var file PerformancesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Performances...)
		}
		return nil
	})

	return all, err
}

func createMember(db *gorm.DB, memberData MemberData) (*models.Member, bool, error) {
	var member models.Member
	if err := db.Where("email = ?", memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			member = models.Member{
				FullName:    memberData.FirstName + " " + memberData.LastName,
				FirstName:   memberData.FirstName,
				LastName:    memberData.LastName,
				Email:       memberData.Email,
				PhoneNumber: memberData.PhoneNumber,
				Role:        models.MemberRole(memberData.Role),
				Instrument:  memberData.Instrument,
				IsActive:    true,
				JoinedYear:  memberData.JoinedYear,
			}
			if memberData.VoicePart != "" {
				part := models.VoicePart(memberData.VoicePart)
				member.VoicePart = &part
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil
		}
		return nil, false, fmt.Errorf("failed to query member: %w", err)
	}

	return &member, false, nil
}

func createSong(db *gorm.DB, songData SongData) (*models.Song, bool, error) {
	var song models.Song
	if err := db.Where("title = ? AND composer = ?", songData.Title, songData.Composer).First(&song).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			song = models.Song{
				Title:       songData.Title,
				Composer:    songData.Composer,
				Author:      songData.Author,
				DefaultKey:  songData.DefaultKey,
				DurationSec: songData.DurationSec,
				CCLINumber:  songData.CCLINumber,
				Tags:        songData.Tags,
			}

			if err := db.Create(&song).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create song: %w", err)
			}
			return &song, true, nil
		}
		return nil, false, fmt.Errorf("failed to query song: %w", err)
	}

	return &song, false, nil
}

func createShift(db *gorm.DB, shiftData ShiftData, memberMap map[string]*models.Member) (*models.LeadershipShift, bool, error) {
	leader := memberMap[shiftData.LeaderEmail]
	if leader == nil {
		return nil, false, fmt.Errorf("leader %s not found", shiftData.LeaderEmail)
	}

	startDate, err := time.Parse("2006-01-02", shiftData.StartDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_date %q: %w", shiftData.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", shiftData.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_date %q: %w", shiftData.EndDate, err)
	}

	var shift models.LeadershipShift
	if err := db.Where("leader_id = ? AND start_date = ?", leader.ID, startDate).First(&shift).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			shift = models.LeadershipShift{
				LeaderID:     leader.ID,
				StartDate:    startDate,
				EndDate:      endDate,
				StoredStatus: models.ShiftStatus(shiftData.Status),
				Notes:        shiftData.Notes,
			}

			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}
			return &shift, true, nil
		}
		return nil, false, fmt.Errorf("failed to query shift: %w", err)
	}

	return &shift, false, nil
}

func createPerformance(db *gorm.DB, performanceData PerformanceData, memberMap map[string]*models.Member, songMap map[string]*models.Song) (*models.Performance, bool, error) {
	date, err := time.Parse("2006-01-02", performanceData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q: %w", performanceData.Date, err)
	}

	var shiftLeadID *uuid.UUID
	if performanceData.ShiftLeadEmail != "" {
		if lead := memberMap[performanceData.ShiftLeadEmail]; lead != nil {
			shiftLeadID = &lead.ID
		}
	}

	var performance models.Performance
	if err := db.Where("date = ?", date).First(&performance).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query performance: %w", err)
		}

		performance = models.Performance{
			Title:       performanceData.Title,
			Date:        date,
			Type:        models.PerformanceType(performanceData.Type),
			Status:      models.PerformanceStatus(performanceData.Status),
			ShiftLeadID: shiftLeadID,
			Location:    performanceData.Location,
		}

		if err := db.Create(&performance).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create performance: %w", err)
		}

		for _, entry := range performanceData.Songs {
			song := songMap[entry.Title]
			if song == nil {
				log.Printf("Warning: song %q not found for performance %s", entry.Title, performanceData.Title)
				continue
			}
			performanceSong := models.PerformanceSong{
				PerformanceID: performance.ID,
				SongID:        song.ID,
				Order:         entry.Order,
				MusicalKey:    entry.MusicalKey,
				TimeAllocated: entry.TimeAllocated,
			}
			if err := db.Create(&performanceSong).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create performance song: %w", err)
			}
		}
		return &performance, true, nil
	}

	return &performance, false, nil
}
