package main

import (
	"context"
	"log"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("shareit.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Wipe old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM items")
	db.Exec("DELETE FROM requests")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	requests := repository.NewRequestRepository(db)
	bookings := repository.NewBookingRepository(db)
	comments := repository.NewCommentRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	alice := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}
	bob := &domain.User{Name: "Bob", Email: "bob@example.com", PasswordHash: string(hash)}
	carol := &domain.User{Name: "Carol", Email: "carol@example.com", PasswordHash: string(hash)}
	for _, u := range []*domain.User{alice, bob, carol} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("seed user:", err)
		}
	}

	now := time.Now().UTC().Truncate(time.Hour)

	ladderWish := &domain.ItemRequest{
		RequestorID: carol.ID,
		Description: "Looking for a sturdy ladder, 3m or taller",
		CreatedAt:   now.Add(-96 * time.Hour),
	}
	if err := requests.Create(ctx, ladderWish); err != nil {
		log.Fatal("seed request:", err)
	}

	drill := &domain.Item{OwnerID: alice.ID, Name: "Cordless drill", Description: "18V, two batteries", Available: true}
	tent := &domain.Item{OwnerID: alice.ID, Name: "Camping tent", Description: "Sleeps four", Available: true}
	bike := &domain.Item{OwnerID: bob.ID, Name: "City bike", Description: "Needs a new bell", Available: false}
	ladder := &domain.Item{OwnerID: bob.ID, Name: "Telescopic ladder", Description: "Extends to 3.8m", Available: true, RequestID: &ladderWish.ID}
	for _, i := range []*domain.Item{drill, tent, bike, ladder} {
		if err := items.Create(ctx, i); err != nil {
			log.Fatal("seed item:", err)
		}
	}
	seedBookings := []*domain.Booking{
		{ItemID: drill.ID, BookerID: bob.ID, Start: now.Add(-72 * time.Hour), End: now.Add(-48 * time.Hour), Status: domain.BookingApproved},
		{ItemID: drill.ID, BookerID: carol.ID, Start: now.Add(48 * time.Hour), End: now.Add(72 * time.Hour), Status: domain.BookingApproved},
		{ItemID: tent.ID, BookerID: carol.ID, Start: now.Add(24 * time.Hour), End: now.Add(96 * time.Hour), Status: domain.BookingWaiting},
		{ItemID: tent.ID, BookerID: bob.ID, Start: now.Add(-24 * time.Hour), End: now.Add(24 * time.Hour), Status: domain.BookingRejected},
	}
	for _, b := range seedBookings {
		if err := bookings.Create(ctx, b); err != nil {
			log.Fatal("seed booking:", err)
		}
	}

	if err := comments.Create(ctx, &domain.Comment{
		ItemID:    drill.ID,
		AuthorID:  bob.ID,
		Text:      "Solid drill, batteries hold a charge.",
		CreatedAt: now.Add(-47 * time.Hour),
	}); err != nil {
		log.Fatal("seed comment:", err)
	}

	log.Println("Seed complete:",
		"3 users, 1 request, 4 items, 4 bookings, 1 comment")
}
