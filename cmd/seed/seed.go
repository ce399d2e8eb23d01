package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shareit/internal/database"
	"shareit/internal/models"
	"shareit/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedFile is the YAML layout read by the seed command. Rows reference each
// other by user email, item key and request key.
type SeedFile struct {
	Users    []SeedUser    `yaml:"users"`
	Requests []SeedRequest `yaml:"requests"`
	Items    []SeedItem    `yaml:"items"`
	Bookings []SeedBooking `yaml:"bookings"`
	Comments []SeedComment `yaml:"comments"`
}

type SeedUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type SeedRequest struct {
	Key         string    `yaml:"key"`
	Requestor   string    `yaml:"requestor"`
	Description string    `yaml:"description"`
	Created     time.Time `yaml:"created"`
}

type SeedItem struct {
	Key         string `yaml:"key"`
	Owner       string `yaml:"owner"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Available   bool   `yaml:"available"`
	Request     string `yaml:"request"`
}

type SeedBooking struct {
	Item   string               `yaml:"item"`
	Booker string               `yaml:"booker"`
	Start  time.Time            `yaml:"start"`
	End    time.Time            `yaml:"end"`
	Status models.BookingStatus `yaml:"status"`
}

type SeedComment struct {
	Item    string    `yaml:"item"`
	Author  string    `yaml:"author"`
	Text    string    `yaml:"text"`
	Created time.Time `yaml:"created"`
}

// Summary counts inserted rows.
type Summary struct {
	Users, Requests, Items, Bookings, Comments int
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &file, nil
}

// resetTables removes all rows, children first.
func resetTables(db *gorm.DB) error {
	all := database.Models()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
			return fmt.Errorf("reset %T: %w", all[i], err)
		}
	}
	return nil
}

type seeder struct {
	users    repository.UserRepository
	requests repository.ItemRequestRepository
	items    repository.ItemRepository
	bookings repository.BookingRepository
	comments repository.CommentRepository

	userIDs    map[string]int64
	requestIDs map[string]int64
	itemIDs    map[string]int64
}

func newSeeder(db *gorm.DB) *seeder {
	return &seeder{
		users:      repository.NewUserRepository(db),
		requests:   repository.NewItemRequestRepository(db),
		items:      repository.NewItemRepository(db),
		bookings:   repository.NewBookingRepository(db),
		comments:   repository.NewCommentRepository(db),
		userIDs:    map[string]int64{},
		requestIDs: map[string]int64{},
		itemIDs:    map[string]int64{},
	}
}

func (s *seeder) run(ctx context.Context, file *SeedFile) (Summary, error) {
	var sum Summary

	for _, u := range file.Users {
		user := &models.User{Name: u.Name, Email: u.Email}
		if err := s.users.Create(ctx, user); err != nil {
			return sum, fmt.Errorf("user %s: %w", u.Email, err)
		}
		s.userIDs[u.Email] = user.ID
		sum.Users++
	}

	for _, r := range file.Requests {
		requestorID, err := s.user(r.Requestor)
		if err != nil {
			return sum, err
		}
		created := r.Created
		if created.IsZero() {
			created = time.Now()
		}
		request := &models.ItemRequest{Description: r.Description, RequestorID: requestorID, Created: created.UTC()}
		if err := s.requests.Create(ctx, request); err != nil {
			return sum, fmt.Errorf("request %s: %w", r.Key, err)
		}
		s.requestIDs[r.Key] = request.ID
		sum.Requests++
	}

	for _, it := range file.Items {
		ownerID, err := s.user(it.Owner)
		if err != nil {
			return sum, err
		}
		item := &models.Item{Name: it.Name, Description: it.Description, Available: it.Available, OwnerID: ownerID}
		if it.Request != "" {
			requestID, ok := s.requestIDs[it.Request]
			if !ok {
				return sum, fmt.Errorf("item %s: unknown request %q", it.Key, it.Request)
			}
			item.RequestID = &requestID
		}
		if err := s.items.Create(ctx, item); err != nil {
			return sum, fmt.Errorf("item %s: %w", it.Key, err)
		}
		s.itemIDs[it.Key] = item.ID
		sum.Items++
	}

	for i, b := range file.Bookings {
		itemID, err := s.item(b.Item)
		if err != nil {
			return sum, err
		}
		bookerID, err := s.user(b.Booker)
		if err != nil {
			return sum, err
		}
		if !b.End.After(b.Start) {
			return sum, fmt.Errorf("booking %d: end must be after start", i)
		}
		status := b.Status
		if status == "" {
			status = models.StatusWaiting
		}
		booking := &models.Booking{Start: b.Start.UTC(), End: b.End.UTC(), ItemID: itemID, BookerID: bookerID, Status: status}
		if err := s.bookings.Create(ctx, booking); err != nil {
			return sum, fmt.Errorf("booking %d: %w", i, err)
		}
		sum.Bookings++
	}

	for i, c := range file.Comments {
		itemID, err := s.item(c.Item)
		if err != nil {
			return sum, err
		}
		authorID, err := s.user(c.Author)
		if err != nil {
			return sum, err
		}
		created := c.Created
		if created.IsZero() {
			created = time.Now()
		}
		comment := &models.Comment{Text: c.Text, ItemID: itemID, AuthorID: authorID, Created: created.UTC()}
		if err := s.comments.Create(ctx, comment); err != nil {
			return sum, fmt.Errorf("comment %d: %w", i, err)
		}
		sum.Comments++
	}

	return sum, nil
}

func (s *seeder) user(email string) (int64, error) {
	id, ok := s.userIDs[email]
	if !ok {
		return 0, fmt.Errorf("unknown user %q", email)
	}
	return id, nil
}

func (s *seeder) item(key string) (int64, error) {
	id, ok := s.itemIDs[key]
	if !ok {
		return 0, fmt.Errorf("unknown item %q", key)
	}
	return id, nil
}
